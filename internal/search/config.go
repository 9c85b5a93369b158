package search

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"life-cycles/internal/core"
	pcore "life-cycles/pkg/core"
)

// MaxCells is the largest board the exhaustive search accepts: the
// configuration count 2^cells must fit a uint64.
const MaxCells = 63

// ErrInvalidConfig reports search settings that can never be valid.
var ErrInvalidConfig = errors.New("invalid search config")

// Config controls one exhaustive search.
type Config struct {
	Width  int
	Height int

	// Workers is the number of shards searched in parallel. Zero means
	// one per CPU.
	Workers int
	// MaxSteps bounds each trajectory. Zero derives the bound from the
	// board size.
	MaxSteps int
	// ProgressInterval is the minimum time between progress logs. Zero
	// disables them.
	ProgressInterval time.Duration
}

// DefaultConfig returns the standard 4x4 search.
func DefaultConfig() Config {
	return Config{Width: 4, Height: 4, ProgressInterval: 5 * time.Second}
}

// Cells returns the number of cells on the board.
func (c Config) Cells() int { return c.Width * c.Height }

// Space returns the number of configurations, 2^cells.
func (c Config) Space() uint64 { return uint64(1) << uint(c.Cells()) }

// Validate checks the config before any search begins.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", pcore.ErrInvalidSize, c.Width, c.Height)
	}
	if c.Cells() > MaxCells {
		return fmt.Errorf("%w: %dx%d board has %d cells, the search handles at most %d",
			pcore.ErrStateOverflow, c.Width, c.Height, c.Cells(), MaxCells)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: max steps %d", ErrInvalidConfig, c.MaxSteps)
	}
	return nil
}

func (c Config) workers() int {
	n := c.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if space := c.Space(); uint64(n) > space {
		n = int(space)
	}
	return n
}

// Parameters describes the search for reports.
func (c Config) Parameters() core.ParameterSnapshot {
	steps := "2^cells+1"
	if c.MaxSteps > 0 {
		steps = fmt.Sprint(c.MaxSteps)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("width", "Width", c.Width),
				core.IntParam("height", "Height", c.Height),
				core.IntParam("cells", "Cells", c.Cells()),
				core.Uint64Param("configurations", "Configurations", c.Space()),
			},
		},
		{
			Name: "Search",
			Params: []core.Parameter{
				core.IntParam("workers", "Workers", c.workers()),
				core.StringParam("max_steps", "Step limit", steps),
			},
		},
	}}
}
