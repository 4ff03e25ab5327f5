package inventory

import (
	"context"
	"fmt"
	"runtime"

	"github.com/henderiw/rangeset/pkg/intervalset"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ids per lookup task; short id lists are checked by a single goroutine
const chunkSize = 1024

type config struct {
	workers int
	logger  *zap.Logger
	setOpts []intervalset.Option
}

type Option func(*config)

// WithWorkers bounds the number of goroutines checking ids. Values < 1 mean
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSetOptions passes options to the interval set built from the ranges.
func WithSetOptions(opts ...intervalset.Option) Option {
	return func(c *config) {
		c.setOpts = append(c.setOpts, opts...)
	}
}

// Evaluate merges the fresh ranges of db and checks every available id
// against them. The set is fully built before any lookup starts and is only
// read afterwards, so lookups run concurrently.
func Evaluate(ctx context.Context, db *Database, opts ...Option) (*Report, error) {
	if db == nil {
		return nil, fmt.Errorf("cannot evaluate a nil database")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := &config{logger: zap.NewNop()}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}

	set := intervalset.FromRanges(db.Ranges, cfg.setOpts...)
	cfg.logger.Debug("built fresh id set",
		zap.Int("ranges", len(db.Ranges)),
		zap.Int("merged", set.Len()),
	)

	fresh := make([]bool, len(db.IDs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for start := 0; start < len(db.IDs); start += chunkSize {
		start := start
		end := min(start+chunkSize, len(db.IDs))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				fresh[i] = set.Contains(db.IDs[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := newReport(set, db.IDs, fresh)
	cfg.logger.Info("evaluated inventory",
		zap.Int("ids", len(db.IDs)),
		zap.Int("fresh", report.Fresh()),
		zap.Uint64("totalFresh", report.TotalFresh()),
	)
	return report, nil
}
