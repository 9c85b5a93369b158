package app

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"life-cycles/internal/cycle"
	"life-cycles/internal/report"
	"life-cycles/internal/search"
	"life-cycles/pkg/core"
	"life-cycles/pkg/life"
)

// App ties a resolved Config to the search and report packages.
type App struct {
	cfg *Config
	log *logrus.Logger
	out io.Writer
}

// New constructs an App writing reports to out.
func New(cfg *Config, log *logrus.Logger, out io.Writer) *App {
	return &App{cfg: cfg, log: log, out: out}
}

// Census runs the exhaustive search and writes the frequency table.
func (a *App) Census(ctx context.Context) error {
	format, err := report.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}
	sum, err := search.Run(ctx, a.cfg.Search(), logrus.NewEntry(a.log))
	if err != nil {
		return err
	}
	return report.Write(a.out, format, sum)
}

// RandomConfiguration draws a configuration for the configured board size.
func (a *App) RandomConfiguration(seed int64) uint64 {
	return core.NewRNG(seed).Configuration(a.cfg.Width * a.cfg.Height)
}

// Probe follows a single configuration until it repeats, printing every
// generation up to the first repeat.
func (a *App) Probe(ctx context.Context, conf uint64) (cycle.Result, error) {
	sim, err := life.New(a.cfg.Width, a.cfg.Height)
	if err != nil {
		return cycle.Result{}, err
	}
	buf, err := core.NewBoard(a.cfg.Width, a.cfg.Height)
	if err != nil {
		return cycle.Result{}, err
	}
	if cells := sim.Board().Len(); cells < 64 && conf >= uint64(1)<<uint(cells) {
		return cycle.Result{}, fmt.Errorf("configuration %d does not fit a %dx%d board", conf, a.cfg.Width, a.cfg.Height)
	}

	probe, err := core.NewBoard(a.cfg.Width, a.cfg.Height)
	if err != nil {
		return cycle.Result{}, err
	}
	probe.Load(conf)
	res, err := cycle.NewDetector(a.cfg.MaxSteps).Find(probe, buf)
	if err != nil {
		return cycle.Result{}, err
	}
	a.log.WithFields(logrus.Fields{
		"configuration": conf,
		"start":         res.Start,
		"length":        res.Length(),
	}).Debug("probe finished")

	sim.Load(conf)
	fmt.Fprintf(a.out, "initial (%d):\n%s", conf, sim.Board())
	for sim.Generation() <= res.End {
		if err := ctx.Err(); err != nil {
			return cycle.Result{}, err
		}
		state := sim.Step()
		fmt.Fprintf(a.out, "\nframe %d (%d):\n%s", sim.Generation()-1, state, sim.Board())
	}
	fmt.Fprintf(a.out, "\ncycle start frame %d, length %d\n", res.Start, res.Length())
	return res, nil
}
