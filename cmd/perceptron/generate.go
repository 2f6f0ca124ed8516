package main

import (
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/perceptron/internal/config"
	"github.com/born-ml/perceptron/internal/dataset"
	"github.com/born-ml/perceptron/internal/logging"
	"github.com/born-ml/perceptron/internal/perceptron"
)

func generate(cmd *cobra.Command) error {
	if countFlag <= 0 {
		return errors.Errorf("--count must be positive, got %d", countFlag)
	}
	if len(lineFlag) != 3 {
		return errors.New("--line takes w1,w2,b")
	}
	line := perceptron.Params{W1: lineFlag[0], W2: lineFlag[1], B: lineFlag[2]}
	if !line.IsFinite() || (line.W1 == 0 && line.W2 == 0) {
		return errors.Errorf("--line %s does not define a boundary", line)
	}
	if marginFlag < 0 || marginFlag >= math.Abs(line.W1)+math.Abs(line.W2)+math.Abs(line.B) {
		return errors.Errorf("--margin %g leaves no room for samples", marginFlag)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logLevelFlag
	logCfg.Path = logPathFlag
	logger, err := logging.New(logging.ModuleDataset, logCfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // Sync on stderr fails on some platforms

	data, err := dataset.Separable(countFlag, line, marginFlag, perceptron.NewRand(seedFlag))
	if err != nil {
		return err
	}
	logger.Infof("generated %d samples separated by %s", len(data), line)

	return writeOutput(cmd.OutOrStdout(), config.OutputConfig{Path: outFlag}, func(w io.Writer) error {
		return dataset.Write(w, data)
	})
}

func generateCMD() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "write a synthetic linearly separable dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generate(cmd)
		},
	}
	attachFlags(generateCmd, []string{"count", "line", "margin", "seed", "out", "log-level", "log-path"})
	return generateCmd
}

func versionCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "perceptron %s\n", version)
		},
	}
}
