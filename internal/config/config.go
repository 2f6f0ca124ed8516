// Package config loads command configuration from a config file, the
// environment and command line flags, in increasing order of precedence.
//
// Environment variables use the PERCEPTRON_ prefix with dots replaced by
// underscores, e.g. PERCEPTRON_TRAINING_LEARNING_RATE=0.05.
package config

import (
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/born-ml/perceptron/internal/logging"
	"github.com/born-ml/perceptron/internal/parallel"
	"github.com/born-ml/perceptron/internal/perceptron"
)

const (
	envPrefix  = "perceptron"
	envCfgPath = "PERCEPTRON_CFG_PATH"
	configName = "perceptron_config"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Config is the full command configuration.
type Config struct {
	Training perceptron.Config `mapstructure:"training"`
	Data     DataConfig        `mapstructure:"data"`
	Output   OutputConfig      `mapstructure:"output"`
	Log      logging.Config    `mapstructure:"log"`
	Sweep    SweepConfig       `mapstructure:"sweep"`
}

// DataConfig locates the training set.
type DataConfig struct {
	Path       string `mapstructure:"path"`
	Header     bool   `mapstructure:"header"`
	MaxSamples int    `mapstructure:"max_samples"`
}

// OutputConfig controls where results are written.
type OutputConfig struct {
	Path   string `mapstructure:"path"`   // Empty writes to stdout
	Format string `mapstructure:"format"` // json or csv
}

// SweepConfig lists the grid axes of a hyperparameter sweep.
type SweepConfig struct {
	Workers       int       `mapstructure:"workers"`
	LearningRates []float64 `mapstructure:"learning_rates"`
	Seeds         []int64   `mapstructure:"seeds"`
}

// Parallel returns the worker pool settings for the sweep.
func (s SweepConfig) Parallel() parallel.Config {
	return parallel.Config{
		Enabled:    s.Workers > 1,
		NumWorkers: s.Workers,
	}
}

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"lr":            "training.learning_rate",
	"epochs":        "training.num_epochs",
	"seed-strategy": "training.seed_strategy",
	"seed":          "training.seed",
	"data":          "data.path",
	"header":        "data.header",
	"max-samples":   "data.max_samples",
	"out":           "output.path",
	"format":        "output.format",
	"log-level":     "log.level",
	"log-path":      "log.path",
	"workers":       "sweep.workers",
}

func setDefaults(v *viper.Viper) {
	t := perceptron.DefaultConfig()
	v.SetDefault("training.learning_rate", t.LearningRate)
	v.SetDefault("training.num_epochs", t.NumEpochs)
	v.SetDefault("training.seed_strategy", string(t.SeedStrategy))
	v.SetDefault("training.seed", t.Seed)
	v.SetDefault("training.init.weight_min", t.Init.WeightMin)
	v.SetDefault("training.init.weight_max", t.Init.WeightMax)
	v.SetDefault("training.init.bias_min", t.Init.BiasMin)
	v.SetDefault("training.init.bias_max", t.Init.BiasMax)

	v.SetDefault("data.path", "")
	v.SetDefault("data.header", false)
	v.SetDefault("data.max_samples", 0)

	v.SetDefault("output.path", "")
	v.SetDefault("output.format", FormatJSON)

	l := logging.DefaultConfig()
	v.SetDefault("log.level", l.Level)
	v.SetDefault("log.path", l.Path)
	v.SetDefault("log.console", l.Console)
	v.SetDefault("log.show_line", l.ShowLine)
	v.SetDefault("log.rotation_hours", l.RotationHours)
	v.SetDefault("log.max_age_days", l.MaxAgeDays)

	v.SetDefault("sweep.workers", runtime.NumCPU())
}

// Load resolves the configuration for a command.
//
// If flags carries a non-empty "config" flag that file must exist.
// Otherwise perceptron_config.{yaml,json,toml} is looked up in
// $PERCEPTRON_CFG_PATH (or the working directory) and is optional.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfgFile string
	if flags != nil {
		if f := flags.Lookup("config"); f != nil {
			cfgFile = f.Value.String()
		}
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		altPath := os.Getenv(envCfgPath)
		if altPath == "" {
			altPath = "."
		}
		v.AddConfigPath(altPath)
		v.SetConfigName(configName)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config")
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "failed to bind flag %s", name)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	if flags != nil {
		if err := applySliceFlags(cfg, flags); err != nil {
			return nil, err
		}
	}

	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	if cfg.Output.Format != FormatJSON && cfg.Output.Format != FormatCSV {
		return nil, &perceptron.ConfigError{Field: "output.format", Details: "must be json or csv"}
	}
	return cfg, nil
}

// applySliceFlags copies list-valued flags, which viper cannot decode from
// pflag's string form.
func applySliceFlags(cfg *Config, flags *pflag.FlagSet) error {
	if flags.Changed("init") {
		vals, err := flags.GetFloat64Slice("init")
		if err != nil {
			return errors.Wrap(err, "invalid --init")
		}
		if len(vals) != 3 {
			return &perceptron.ConfigError{Field: "fixed_initial_params", Details: "--init takes w1,w2,b"}
		}
		cfg.Training.FixedInitialParams = &perceptron.Params{W1: vals[0], W2: vals[1], B: vals[2]}
		if !flags.Changed("seed-strategy") {
			cfg.Training.SeedStrategy = perceptron.SeedFixed
		}
	}
	if flags.Changed("rates") {
		rates, err := flags.GetFloat64Slice("rates")
		if err != nil {
			return errors.Wrap(err, "invalid --rates")
		}
		cfg.Sweep.LearningRates = rates
	}
	if flags.Changed("seeds") {
		seeds, err := flags.GetInt64Slice("seeds")
		if err != nil {
			return errors.Wrap(err, "invalid --seeds")
		}
		cfg.Sweep.Seeds = seeds
	}
	return nil
}
