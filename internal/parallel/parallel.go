// Package parallel runs independent units of work on a bounded pool of
// goroutines.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool `mapstructure:"enabled"` // Whether parallel execution is enabled.
	NumWorkers int  `mapstructure:"workers"` // Maximum concurrent goroutines.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
	}
}

// ForEach calls f(ctx, i) for i in [0, n).
//
// With parallelism disabled (or a single worker) the calls run in order on
// the calling goroutine. Otherwise at most NumWorkers calls run at once.
// The first error cancels ctx for the remaining calls and is returned; calls
// that have not started by then are skipped.
func ForEach(ctx context.Context, n int, f func(ctx context.Context, i int) error, cfg Config) error {
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := f(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.NumWorkers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return f(gctx, i)
		})
	}
	return g.Wait()
}
