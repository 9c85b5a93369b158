package life

import (
	"fmt"

	"life-cycles/pkg/core"
)

// Next applies the B3/S23 rule to a single cell with n live neighbours.
func Next(cell core.CellState, n int) core.CellState {
	return core.FromBool(n == 3 || (n == 2 && cell.Alive()))
}

// Step writes the generation following current into next and returns the
// packed state of next. current is only read; every cell of next is
// overwritten. The boards must be distinct and share dimensions.
func Step(current, next *core.Board) uint64 {
	if current == next {
		panic("life: Step needs distinct current and next boards")
	}
	if !current.SameShape(next) {
		panic(fmt.Sprintf("life: Step between %dx%d and %dx%d boards",
			current.Width(), current.Height(), next.Width(), next.Height()))
	}

	w, h := current.Width(), current.Height()
	src, dst := current.Cells(), next.Cells()
	var state uint64
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			cell := Next(src[idx], current.AliveNeighborCount(row, col))
			dst[idx] = cell
			state |= cell.Bit() << uint(idx)
		}
	}
	return state
}

// Life runs a single trajectory over a ping-pong pair of boards.
type Life struct {
	cur, nxt   *core.Board
	generation int
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) (*Life, error) {
	cur, err := core.NewBoard(w, h)
	if err != nil {
		return nil, err
	}
	nxt, err := core.NewBoard(w, h)
	if err != nil {
		return nil, err
	}
	return &Life{cur: cur, nxt: nxt}, nil
}

// Load resets the simulation to the packed configuration conf.
func (l *Life) Load(conf uint64) {
	l.cur.Load(conf)
	l.generation = 0
}

// Board exposes the current generation.
func (l *Life) Board() *core.Board { return l.cur }

// Generation returns how many steps have been taken since Load.
func (l *Life) Generation() int { return l.generation }

// Step advances the simulation by one generation and returns its packed state.
func (l *Life) Step() uint64 {
	state := Step(l.cur, l.nxt)
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
	return state
}
