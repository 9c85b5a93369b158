package core

import (
	"errors"
	"fmt"
	"strings"
)

// MaxCells is the largest board whose state fits a packed uint64.
const MaxCells = 64

var (
	// ErrInvalidSize reports a non-positive width or height.
	ErrInvalidSize = errors.New("board dimensions must be positive")
	// ErrStateOverflow reports a board with more cells than a packed state can hold.
	ErrStateOverflow = errors.New("board does not fit the packed state")
	// ErrCapacityMismatch reports storage whose length is not width*height.
	ErrCapacityMismatch = errors.New("board storage does not match width*height")
)

// Board stores a toroidal grid of cells in row-major order. The dimensions
// are fixed at construction and the backing storage is reused for every
// Load and every generation written into it.
type Board struct {
	width, height int
	cells         []CellState
}

// NewBoard allocates a board with every cell dead.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width*height > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d needs %d bits, have %d", ErrStateOverflow, width, height, width*height, MaxCells)
	}
	return NewBoardFromCells(make([]CellState, width*height), width, height)
}

// NewBoardFromCells adopts cells as the board storage. The slice length must
// equal width*height.
func NewBoardFromCells(cells []CellState, width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width*height > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d needs %d bits, have %d", ErrStateOverflow, width, height, width*height, MaxCells)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: capacity %d, %dx%d = %d", ErrCapacityMismatch, len(cells), width, height, width*height)
	}
	return &Board{width: width, height: height, cells: cells}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Len returns the number of cells.
func (b *Board) Len() int { return len(b.cells) }

// Cells exposes the backing slice so callers can read/write values directly.
func (b *Board) Cells() []CellState { return b.cells }

// Index returns the linear slice index for (row, col).
func (b *Board) Index(row, col int) int { return row*b.width + col }

// At returns the cell at (row, col) after toroidal wrapping.
func (b *Board) At(row, col int) CellState {
	return b.cells[b.Index(Wrap(row, b.height), Wrap(col, b.width))]
}

// Set writes the cell at (row, col) after toroidal wrapping.
func (b *Board) Set(row, col int, state CellState) {
	b.cells[b.Index(Wrap(row, b.height), Wrap(col, b.width))] = state
}

// Load overwrites every cell from a packed configuration: cell i is alive
// iff bit i of conf is set.
func (b *Board) Load(conf uint64) {
	for i := range b.cells {
		b.cells[i] = FromBit(conf & (1 << uint(i)))
	}
}

// Packed returns the board state with bit i set iff cell i is alive.
func (b *Board) Packed() uint64 {
	var state uint64
	for i, c := range b.cells {
		state |= c.Bit() << uint(i)
	}
	return state
}

// AliveNeighborCount returns how many of the eight toroidal neighbours of
// (row, col) are alive. On boards narrower than three cells a neighbour slot
// may alias another slot or the cell itself; each slot is counted.
func (b *Board) AliveNeighborCount(row, col int) int {
	w, h := b.width, b.height
	xl, xm, xr := Wrap(col-1, w), Wrap(col, w), Wrap(col+1, w)
	yt, ym, yb := Wrap(row-1, h)*w, Wrap(row, h)*w, Wrap(row+1, h)*w

	c := b.cells
	n := c[yt+xl].Bit() + c[yt+xm].Bit() + c[yt+xr].Bit() +
		c[ym+xl].Bit() + c[ym+xr].Bit() +
		c[yb+xl].Bit() + c[yb+xm].Bit() + c[yb+xr].Bit()
	return int(n)
}

// CopyFrom replaces the cells with those of src. Both boards must share
// dimensions.
func (b *Board) CopyFrom(src *Board) {
	if !b.SameShape(src) {
		panic(fmt.Sprintf("core: copy between %dx%d and %dx%d boards", src.width, src.height, b.width, b.height))
	}
	copy(b.cells, src.cells)
}

// SameShape reports whether o has the same dimensions as b.
func (b *Board) SameShape(o *Board) bool {
	return b.width == o.width && b.height == o.height
}

// Clear marks every cell dead.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Dead
	}
}

// String renders the board as rows of 'O' (alive) and '.' (dead).
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if b.cells[b.Index(row, col)].Alive() {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Wrap maps index onto [0, n) with toroidal wrapping in both directions.
func Wrap(index, n int) int {
	return (index%n + n) % n
}
