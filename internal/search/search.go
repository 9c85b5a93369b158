// Package search runs the exhaustive cycle census over every initial
// configuration of a toroidal Life board.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"life-cycles/internal/core"
	"life-cycles/internal/cycle"
	pcore "life-cycles/pkg/core"
)

// cancelCheckEvery is how many configurations a worker probes between
// context and progress checks.
const cancelCheckEvery = 1 << 10

// Summary is the outcome of a completed search.
type Summary struct {
	Config  Config
	Table   FrequencyTable
	Elapsed time.Duration
}

// shard is a half-open range [lo, hi) of configurations.
type shard struct {
	lo, hi uint64
}

func (s shard) size() uint64 { return s.hi - s.lo }

// shards splits [0, space) into n contiguous ranges whose sizes differ by at
// most one.
func shards(space uint64, n int) []shard {
	out := make([]shard, 0, n)
	base, extra := space/uint64(n), space%uint64(n)
	var lo uint64
	for i := 0; i < n; i++ {
		size := base
		if uint64(i) < extra {
			size++
		}
		out = append(out, shard{lo: lo, hi: lo + size})
		lo += size
	}
	return out
}

// Run probes every configuration in [0, 2^(width*height)), the all-dead
// configuration included, and tallies cycle lengths. Shards are searched in
// parallel, each with private boards, detector and table, and the partial
// tables are merged once every shard finished.
func Run(ctx context.Context, cfg Config, log *logrus.Entry) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	log = log.WithFields(logrus.Fields{"width": cfg.Width, "height": cfg.Height})

	parts := shards(cfg.Space(), cfg.workers())
	partials := make([]FrequencyTable, len(parts))

	log.WithFields(logrus.Fields{
		"configurations": cfg.Space(),
		"workers":        len(parts),
	}).Info("starting cycle search")

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range parts {
		g.Go(func() error {
			table, err := runShard(ctx, cfg, s, log.WithField("shard", i))
			if err != nil {
				return err
			}
			partials[i] = table
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	table := make(FrequencyTable)
	for _, p := range partials {
		table.Merge(p)
	}
	if total := table.Total(); total != cfg.Space() {
		return Summary{}, fmt.Errorf("search counted %d configurations, expected %d", total, cfg.Space())
	}

	elapsed := time.Since(start)
	log.WithFields(logrus.Fields{
		"lengths": len(table),
		"elapsed": elapsed.Round(time.Millisecond),
	}).Info("cycle search complete")
	return Summary{Config: cfg, Table: table, Elapsed: elapsed}, nil
}

func runShard(ctx context.Context, cfg Config, s shard, log *logrus.Entry) (FrequencyTable, error) {
	a, err := pcore.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	b, err := pcore.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	detector := cycle.NewDetector(cfg.MaxSteps)
	progress := core.NewThrottle(cfg.ProgressInterval)
	table := make(FrequencyTable)

	log.WithFields(logrus.Fields{"from": s.lo, "to": s.hi}).Debug("shard started")
	for conf := s.lo; conf < s.hi; conf++ {
		if (conf-s.lo)%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if progress.Ready() {
				done := conf - s.lo
				log.WithFields(logrus.Fields{
					"done":    done,
					"percent": fmt.Sprintf("%.1f", 100*float64(done)/float64(s.size())),
				}).Info("search progress")
			}
		}

		a.Load(conf)
		res, err := detector.Find(a, b)
		if err != nil {
			return nil, fmt.Errorf("configuration %d: %w", conf, err)
		}
		table.Add(res.Length())
	}
	log.WithField("configurations", s.size()).Debug("shard finished")
	return table, nil
}
