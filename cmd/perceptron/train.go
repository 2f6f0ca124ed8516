package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/perceptron/internal/config"
	"github.com/born-ml/perceptron/internal/dataset"
	"github.com/born-ml/perceptron/internal/logging"
	"github.com/born-ml/perceptron/internal/perceptron"
	"github.com/born-ml/perceptron/internal/report"
)

func train(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.ModuleTrain, cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // Sync on stderr fails on some platforms

	data, err := loadData(cfg.Data)
	if err != nil {
		return err
	}
	logger.Infof("loaded %d samples from %s", len(data), cfg.Data.Path)

	trainer, err := perceptron.NewTrainer(cfg.Training, perceptron.WithLogger(logger))
	if err != nil {
		return err
	}
	res, err := trainer.Fit(data)
	if err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), cfg.Output, func(w io.Writer) error {
		if cfg.Output.Format == config.FormatCSV {
			return report.WriteCSV(w, res)
		}
		return report.WriteJSON(w, res)
	})
}

func loadData(cfg config.DataConfig) ([]perceptron.Sample, error) {
	if cfg.Path == "" {
		return nil, errors.New("no dataset: set --data or data.path")
	}
	return dataset.Load(cfg.Path, dataset.Options{
		Header:     cfg.Header,
		MaxSamples: cfg.MaxSamples,
	})
}

// writeOutput runs write against the configured file, or stdout when no
// path is set.
func writeOutput(stdout io.Writer, cfg config.OutputConfig, write func(io.Writer) error) error {
	if cfg.Path == "" {
		return write(stdout)
	}

	file, err := os.Create(cfg.Path)
	if err != nil {
		return errors.Wrap(err, "failed to create output")
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "failed to close output")
}

func trainCMD() *cobra.Command {
	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "train a perceptron",
		Long:  "train a perceptron on a CSV dataset and write the final parameters and per-epoch boundaries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return train(cmd)
		},
	}
	attachFlags(trainCmd, []string{
		"config", "lr", "epochs", "seed-strategy", "seed", "init",
		"data", "header", "max-samples", "out", "format", "log-level", "log-path",
	})
	return trainCmd
}
