// Package cycle detects when a Life trajectory starts repeating.
package cycle

import (
	"errors"
	"fmt"

	"life-cycles/pkg/core"
	"life-cycles/pkg/life"
)

// ErrStepLimit reports a trajectory that did not repeat within the step limit.
var ErrStepLimit = errors.New("no cycle within step limit")

// Result describes where a trajectory entered its cycle. Frame k is the state
// produced by step k+1, so the first generated state is frame 0.
type Result struct {
	// Start is the frame at which the repeated state was first seen.
	Start int
	// End is the frame at which it was seen again.
	End int
	// Final is the board holding the state at frame End.
	Final *core.Board
}

// Length returns the cycle period. A fixed point has length 1.
func (r Result) Length() int { return r.End - r.Start }

// Detector finds cycles using a table of visited packed states. The table is
// emptied at the start of every Find, so a Detector must not be shared
// between goroutines.
type Detector struct {
	seen     map[uint64]int
	maxSteps int
}

// NewDetector returns a detector that gives up after maxSteps steps. A
// maxSteps of 0 derives the bound from the board size, which always
// suffices because a board of n cells has 2^n states.
func NewDetector(maxSteps int) *Detector {
	return &Detector{seen: make(map[uint64]int), maxSteps: maxSteps}
}

// Limit returns the step bound used for a board of the given number of cells.
func (d *Detector) Limit(cells int) int {
	if d.maxSteps > 0 {
		return d.maxSteps
	}
	return SpaceBound(cells)
}

// Find runs the trajectory that starts with the configuration in a, using b
// as the second buffer. Both boards are overwritten.
func (d *Detector) Find(a, b *core.Board) (Result, error) {
	clear(d.seen)
	limit := d.Limit(a.Len())

	cur, nxt := a, b
	for frame := 0; frame < limit; frame++ {
		state := life.Step(cur, nxt)
		if first, ok := d.seen[state]; ok {
			return Result{Start: first, End: frame, Final: nxt}, nil
		}
		d.seen[state] = frame
		cur, nxt = nxt, cur
	}
	return Result{}, fmt.Errorf("%w: %d steps on %dx%d board", ErrStepLimit, limit, a.Width(), a.Height())
}

// SpaceBound returns 2^cells + 1, clamped to the largest int.
func SpaceBound(cells int) int {
	const maxInt = int(^uint(0) >> 1)
	if cells >= 62 {
		return maxInt
	}
	return 1<<uint(cells) + 1
}
