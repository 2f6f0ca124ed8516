// Command perceptron trains single-layer perceptrons on labelled 2-D points.
//
// Usage:
//
//	perceptron generate --count 100 --seed 1 --out points.csv
//	perceptron train --data points.csv --header --lr 0.01 --epochs 25 --seed 7
//	perceptron train --data points.csv --header --init 0,0,0 --format csv
//	perceptron sweep --data points.csv --header --rates 0.1,0.01 --seeds 1,2,3
//	perceptron version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const version = "v0.1.0"

var flags *pflag.FlagSet

var (
	cfgPathFlag      string
	lrFlag           float64
	epochsFlag       int
	seedStrategyFlag string
	seedFlag         int64
	initFlag         []float64
	dataFlag         string
	headerFlag       bool
	maxSamplesFlag   int
	outFlag          string
	formatFlag       string
	logLevelFlag     string
	logPathFlag      string
	ratesFlag        []float64
	seedsFlag        []int64
	workersFlag      int
	countFlag        int
	lineFlag         []float64
	marginFlag       float64
)

func init() {
	resetFlags()
}

// resetFlags rebuilds the shared flag set so tests start from defaults.
func resetFlags() {
	flags = &pflag.FlagSet{}

	flags.StringVarP(&cfgPathFlag, "config", "c", "",
		"config file (default: perceptron_config.* in $PERCEPTRON_CFG_PATH or .)")
	flags.Float64Var(&lrFlag, "lr", 0.01, "learning rate")
	flags.IntVar(&epochsFlag, "epochs", 25, "number of epochs")
	flags.StringVar(&seedStrategyFlag, "seed-strategy", "random", "initialization: random or fixed")
	flags.Int64Var(&seedFlag, "seed", -1, "random seed (-1 = non-reproducible)")
	flags.Float64SliceVar(&initFlag, "init", nil, "fixed initial parameters w1,w2,b (implies --seed-strategy fixed)")
	flags.StringVarP(&dataFlag, "data", "d", "", "dataset CSV file (p,q,label)")
	flags.BoolVar(&headerFlag, "header", false, "dataset has a header row")
	flags.IntVar(&maxSamplesFlag, "max-samples", 0, "load at most this many samples (0 = all)")
	flags.StringVarP(&outFlag, "out", "o", "", "output file (default stdout)")
	flags.StringVar(&formatFlag, "format", "json", "output format: json or csv")
	flags.StringVar(&logLevelFlag, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&logPathFlag, "log-path", "", "rotated log file base path")
	flags.Float64SliceVar(&ratesFlag, "rates", nil, "sweep learning rates")
	flags.Int64SliceVar(&seedsFlag, "seeds", nil, "sweep seeds")
	flags.IntVar(&workersFlag, "workers", 0, "sweep worker count (default NumCPU)")
	flags.IntVarP(&countFlag, "count", "n", 100, "number of samples to generate")
	flags.Float64SliceVar(&lineFlag, "line", []float64{1, 1, 0}, "generating boundary w1,w2,b")
	flags.Float64Var(&marginFlag, "margin", 0.05, "minimum |score| of generated samples")
}

func attachFlags(cmd *cobra.Command, names []string) {
	cmdFlags := cmd.Flags()
	for _, name := range names {
		if flag := flags.Lookup(name); flag != nil {
			cmdFlags.AddFlag(flag)
		} else {
			panic(fmt.Errorf("could not find flag '%s' to attach to command '%s'", name, cmd.Name()))
		}
	}
}

func newRootCmd() *cobra.Command {
	resetFlags()

	root := &cobra.Command{
		Use:           "perceptron",
		Short:         "Train single-layer perceptrons on 2-D points",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(trainCMD(), sweepCMD(), generateCMD(), versionCMD())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "perceptron: %v\n", err)
		os.Exit(1)
	}
}
