package perceptron

import (
	"context"
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/born-ml/perceptron/internal/parallel"
)

// Sweep trains one independent run per config, in parallel according to
// pcfg.
//
// Every run gets its own Trainer, random source and copy of data, so runs
// never share mutable state. Results are returned in the order of configs.
// The first failing run cancels the runs not yet started and its error is
// returned with the run index.
func Sweep(ctx context.Context, data []Sample, configs []Config, pcfg parallel.Config, logger *zap.SugaredLogger) ([]*Result, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	// Reject bad configs before any run starts.
	for i, cfg := range configs {
		if err := cfg.Validate(); err != nil {
			return nil, errors.Wrapf(err, "run %d", i)
		}
	}

	results := make([]*Result, len(configs))
	err := parallel.ForEach(ctx, len(configs), func(_ context.Context, i int) error {
		trainer, err := NewTrainer(configs[i], WithLogger(logger.With("run", i)))
		if err != nil {
			return errors.Wrapf(err, "run %d", i)
		}
		res, err := trainer.Fit(slices.Clone(data))
		if err != nil {
			return errors.Wrapf(err, "run %d", i)
		}
		results[i] = res
		return nil
	}, pcfg)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Grid expands base into one Config per (learning rate, seed) pair.
// An empty rates or seeds slice keeps the base value for that axis.
func Grid(base Config, rates []float64, seeds []int64) []Config {
	if len(rates) == 0 {
		rates = []float64{base.LearningRate}
	}
	if len(seeds) == 0 {
		seeds = []int64{base.Seed}
	}

	configs := make([]Config, 0, len(rates)*len(seeds))
	for _, lr := range rates {
		for _, seed := range seeds {
			cfg := base
			cfg.LearningRate = lr
			cfg.Seed = seed
			configs = append(configs, cfg)
		}
	}
	return configs
}
