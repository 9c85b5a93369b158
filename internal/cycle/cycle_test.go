package cycle

import (
	"errors"
	"testing"

	"life-cycles/pkg/core"
	"life-cycles/pkg/life"
)

func boards(t *testing.T, w, h int) (*core.Board, *core.Board) {
	t.Helper()
	a, err := core.NewBoard(w, h)
	if err != nil {
		t.Fatal(err)
	}
	b, err := core.NewBoard(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return a, b
}

// naive walks the trajectory keeping every state in order.
func naive(t *testing.T, w, h int, conf uint64) (int, int) {
	t.Helper()
	sim, err := life.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	sim.Load(conf)
	var states []uint64
	for {
		s := sim.Step()
		for i, prev := range states {
			if prev == s {
				return i, len(states)
			}
		}
		states = append(states, s)
	}
}

func TestAllDeadIsFixedPoint(t *testing.T) {
	a, b := boards(t, 4, 4)
	res, err := NewDetector(0).Find(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if res.Start != 0 || res.End != 1 || res.Length() != 1 {
		t.Fatalf("all-dead board got start=%d end=%d, expected 0, 1", res.Start, res.End)
	}
}

func TestAllAliveCollapsesToFixedPoint(t *testing.T) {
	a, b := boards(t, 4, 4)
	a.Load(0xFFFF)
	res, err := NewDetector(0).Find(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if res.Length() != 1 || res.Start != 0 {
		t.Fatalf("all-alive 4x4 got start=%d length=%d, expected 0, 1", res.Start, res.Length())
	}
	if res.Final.Packed() != 0 {
		t.Fatalf("final board must be empty:\n%s", res.Final)
	}
}

func TestBlinkerPeriodTwo(t *testing.T) {
	a, b := boards(t, 5, 5)
	a.Set(2, 1, core.Alive)
	a.Set(2, 2, core.Alive)
	a.Set(2, 3, core.Alive)
	res, err := NewDetector(0).Find(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if res.Start != 0 || res.Length() != 2 {
		t.Fatalf("blinker got start=%d length=%d, expected 0, 2", res.Start, res.Length())
	}
}

func TestMatchesNaiveTrajectory(t *testing.T) {
	rng := core.NewRNG(5)
	d := NewDetector(0)
	a, b := boards(t, 4, 4)
	for i := 0; i < 200; i++ {
		conf := rng.Configuration(16)
		a.Load(conf)
		res, err := d.Find(a, b)
		if err != nil {
			t.Fatal(err)
		}
		start, end := naive(t, 4, 4, conf)
		if res.Start != start || res.End != end {
			t.Fatalf("conf %016b: got (%d,%d), expected (%d,%d)", conf, res.Start, res.End, start, end)
		}
	}
}

func TestTerminatesWithinSpaceBound(t *testing.T) {
	d := NewDetector(0)
	a, b := boards(t, 3, 3)
	for conf := uint64(0); conf < 1<<9; conf++ {
		a.Load(conf)
		res, err := d.Find(a, b)
		if err != nil {
			t.Fatalf("conf %d: %v", conf, err)
		}
		if res.End > 1<<9 {
			t.Fatalf("conf %d repeated at frame %d, beyond 2^9", conf, res.End)
		}
		if res.Length() < 1 {
			t.Fatalf("conf %d: length %d", conf, res.Length())
		}
	}
}

func TestStepLimit(t *testing.T) {
	a, b := boards(t, 5, 5)
	a.Set(2, 1, core.Alive)
	a.Set(2, 2, core.Alive)
	a.Set(2, 3, core.Alive)
	if _, err := NewDetector(2).Find(a, b); !errors.Is(err, ErrStepLimit) {
		t.Fatalf("expected ErrStepLimit, got %v", err)
	}
}

func TestSpaceBound(t *testing.T) {
	if got := SpaceBound(4); got != 17 {
		t.Fatalf("SpaceBound(4) = %d, expected 17", got)
	}
	if got := SpaceBound(64); got <= 0 {
		t.Fatalf("SpaceBound(64) must stay positive, got %d", got)
	}
}

func BenchmarkFind4x4(b *testing.B) {
	x, _ := core.NewBoard(4, 4)
	y, _ := core.NewBoard(4, 4)
	d := NewDetector(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Load(uint64(i) & 0xFFFF)
		if _, err := d.Find(x, y); err != nil {
			b.Fatal(err)
		}
	}
}
