package core

// CellState is the two-valued state of a single Life cell.
type CellState uint8

const (
	// Dead cells contribute 0 to neighbour sums and packed states.
	Dead CellState = 0
	// Alive cells contribute 1.
	Alive CellState = 1
)

// FromBool maps true to Alive and false to Dead.
func FromBool(alive bool) CellState {
	if alive {
		return Alive
	}
	return Dead
}

// FromBit maps 0 to Dead and any nonzero value to Alive.
func FromBit(bit uint64) CellState {
	if bit == 0 {
		return Dead
	}
	return Alive
}

// Alive reports whether the cell is alive.
func (c CellState) Alive() bool { return c == Alive }

// Dead reports whether the cell is dead.
func (c CellState) Dead() bool { return c != Alive }

// Bit returns 1 for Alive and 0 for Dead.
func (c CellState) Bit() uint64 {
	if c == Alive {
		return 1
	}
	return 0
}

func (c CellState) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}
