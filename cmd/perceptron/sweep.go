package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/born-ml/perceptron/internal/config"
	"github.com/born-ml/perceptron/internal/logging"
	"github.com/born-ml/perceptron/internal/perceptron"
	"github.com/born-ml/perceptron/internal/report"
)

func sweep(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.ModuleSweep, cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // Sync on stderr fails on some platforms

	data, err := loadData(cfg.Data)
	if err != nil {
		return err
	}

	configs := perceptron.Grid(cfg.Training, cfg.Sweep.LearningRates, cfg.Sweep.Seeds)
	logger.Infof("sweeping %d runs over %d samples with %d workers",
		len(configs), len(data), cfg.Sweep.Workers)

	results, err := perceptron.Sweep(cmd.Context(), data, configs, cfg.Sweep.Parallel(), logger)
	if err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), cfg.Output, func(w io.Writer) error {
		return report.WriteSummary(w, results)
	})
}

func sweepCMD() *cobra.Command {
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "train independent runs over a learning rate x seed grid",
		Long:  "train one perceptron per (learning rate, seed) pair in parallel and print a summary table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return sweep(cmd)
		},
	}
	attachFlags(sweepCmd, []string{
		"config", "lr", "epochs", "seed-strategy", "seed", "init", "rates", "seeds", "workers",
		"data", "header", "max-samples", "out", "log-level", "log-path",
	})
	return sweepCmd
}
