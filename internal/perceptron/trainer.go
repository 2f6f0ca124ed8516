package perceptron

import (
	"iter"
	"math/rand"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RunEpoch makes one pass over data in order, predicting each sample and
// applying the update before moving to the next.
//
// A learning rate of zero is accepted and leaves the parameters unchanged;
// a negative one is rejected. The pass aborts on the first invalid sample or
// on an update that overflows float64; there is no partial result.
func RunEpoch(w Params, data []Sample, lr float64) (Params, error) {
	if len(data) == 0 {
		return Params{}, ErrEmptyDataset
	}
	if err := checkLearningRate(lr); err != nil {
		return Params{}, err
	}

	for i, s := range data {
		if err := ValidateSample(i, s); err != nil {
			return Params{}, err
		}
		w = ApplyUpdate(w, s, Predict(w, s.P, s.Q), lr)
		if !w.IsFinite() {
			return Params{}, &SampleError{Index: i, Sample: s, Details: "update overflowed"}
		}
	}
	return w, nil
}

// Epochs returns the training trajectory as a lazy sequence.
//
// Each iteration runs one epoch and yields its snapshot. The sequence has
// exactly numEpochs elements unless an error occurs, in which case the error
// is yielded once and the sequence ends. There is no early stopping.
//
// Every range over the sequence restarts from initial, so iterating twice
// reproduces the same trajectory.
func Epochs(initial Params, data []Sample, lr float64, numEpochs int) iter.Seq2[Snapshot, error] {
	return func(yield func(Snapshot, error) bool) {
		if err := checkRun(data, lr, numEpochs); err != nil {
			yield(Snapshot{}, err)
			return
		}

		w := initial
		for epoch := 1; epoch <= numEpochs; epoch++ {
			next, err := RunEpoch(w, data, lr)
			if err != nil {
				yield(Snapshot{Epoch: epoch, Params: w}, errors.Wrapf(err, "epoch %d", epoch))
				return
			}
			w = next

			snap := Snapshot{
				Epoch:         epoch,
				Params:        w,
				Misclassified: Misclassified(w, data),
			}
			if !yield(snap, nil) {
				return
			}
		}
	}
}

// Train runs numEpochs epochs starting from initial and returns the final
// parameters together with one snapshot per epoch.
func Train(initial Params, data []Sample, lr float64, numEpochs int) (Params, []Snapshot, error) {
	if err := checkRun(data, lr, numEpochs); err != nil {
		return Params{}, nil, err
	}

	final := initial
	snapshots := make([]Snapshot, 0, numEpochs)
	for snap, err := range Epochs(initial, data, lr, numEpochs) {
		if err != nil {
			return Params{}, nil, err
		}
		final = snap.Params
		snapshots = append(snapshots, snap)
	}
	return final, snapshots, nil
}

func checkRun(data []Sample, lr float64, numEpochs int) error {
	if numEpochs <= 0 {
		return &ConfigError{Field: "num_epochs", Details: "must be positive"}
	}
	if err := checkLearningRate(lr); err != nil {
		return err
	}
	if len(data) == 0 {
		return ErrEmptyDataset
	}
	return nil
}

func checkLearningRate(lr float64) error {
	if !isFinite(lr) || lr < 0 {
		return &ConfigError{Field: "learning_rate", Details: "must be finite and non-negative"}
	}
	return nil
}

// Config holds the settings of a training run.
type Config struct {
	LearningRate float64      `mapstructure:"learning_rate"` // Required, > 0
	NumEpochs    int          `mapstructure:"num_epochs"`    // Required, > 0
	SeedStrategy SeedStrategy `mapstructure:"seed_strategy"` // Default: SeedRandom
	Seed         int64        `mapstructure:"seed"`          // -1 = non-reproducible

	// FixedInitialParams is required when SeedStrategy is SeedFixed.
	FixedInitialParams *Params `mapstructure:"fixed_initial_params"`

	Init InitRange `mapstructure:"init"`
}

// DefaultConfig returns the tutorial defaults: lr 0.01, 25 epochs, random
// initialization in U[0, 1).
func DefaultConfig() Config {
	return Config{
		LearningRate: 0.01,
		NumEpochs:    25,
		SeedStrategy: SeedRandom,
		Seed:         -1,
		Init:         DefaultInitRange(),
	}
}

// Validate reports the first invalid field as a *ConfigError.
func (c Config) Validate() error {
	if !isFinite(c.LearningRate) || c.LearningRate <= 0 {
		return &ConfigError{Field: "learning_rate", Details: "must be a finite positive number"}
	}
	if c.NumEpochs <= 0 {
		return &ConfigError{Field: "num_epochs", Details: "must be positive"}
	}

	strategy, err := ParseSeedStrategy(string(c.SeedStrategy))
	if err != nil {
		return err
	}
	if strategy == SeedFixed {
		if c.FixedInitialParams == nil {
			return &ConfigError{Field: "fixed_initial_params", Details: "required when seed_strategy is fixed"}
		}
		if !c.FixedInitialParams.IsFinite() {
			return &ConfigError{Field: "fixed_initial_params", Details: "must be finite"}
		}
		return nil
	}

	r := c.Init
	if !isFinite(r.WeightMin) || !isFinite(r.WeightMax) || r.WeightMin > r.WeightMax {
		return &ConfigError{Field: "init.weight_min/weight_max", Details: "must be a finite range"}
	}
	if !isFinite(r.BiasMin) || !isFinite(r.BiasMax) || r.BiasMin > r.BiasMax {
		return &ConfigError{Field: "init.bias_min/bias_max", Details: "must be a finite range"}
	}
	return nil
}

// Result is the outcome of Trainer.Fit.
type Result struct {
	Config    Config     `json:"-"`
	Initial   Params     `json:"initial"`
	Final     Params     `json:"final"`
	Snapshots []Snapshot `json:"snapshots"`
	Accuracy  float64    `json:"accuracy"`
}

// Trainer runs a validated Config against datasets.
//
// A Trainer owns its random source and is not safe for concurrent use; use
// one Trainer per goroutine.
type Trainer struct {
	config Config
	rng    *rand.Rand
	logger *zap.SugaredLogger
}

// Option configures a Trainer.
type Option func(*Trainer)

// WithLogger sets the logger used for per-epoch diagnostics.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(t *Trainer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithRand overrides the random source derived from Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(t *Trainer) {
		if rng != nil {
			t.rng = rng
		}
	}
}

// NewTrainer validates config and returns a Trainer.
//
// Example:
//
//	trainer, err := perceptron.NewTrainer(perceptron.Config{
//	    LearningRate: 0.1,
//	    NumEpochs:    10,
//	    SeedStrategy: perceptron.SeedFixed,
//	    FixedInitialParams: &perceptron.Params{},
//	})
//	res, err := trainer.Fit(data)
func NewTrainer(config Config, opts ...Option) (*Trainer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.SeedStrategy, _ = ParseSeedStrategy(string(config.SeedStrategy))

	t := &Trainer{
		config: config,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.rng == nil {
		t.rng = NewRand(config.Seed)
	}
	return t, nil
}

// Config returns the validated configuration.
func (t *Trainer) Config() Config {
	return t.config
}

// Initialize draws or copies initial parameters according to the config.
func (t *Trainer) Initialize() Params {
	var fixed Params
	if t.config.FixedInitialParams != nil {
		fixed = *t.config.FixedInitialParams
	}
	return Initialize(t.config.SeedStrategy, fixed, t.config.Init, t.rng)
}

// Fit initializes parameters and trains on data for the configured number
// of epochs.
func (t *Trainer) Fit(data []Sample) (*Result, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}

	initial := t.Initialize()
	t.logger.Debugf("initial parameters %s (strategy %s)", initial, t.config.SeedStrategy)

	res := &Result{
		Config:    t.config,
		Initial:   initial,
		Final:     initial,
		Snapshots: make([]Snapshot, 0, t.config.NumEpochs),
	}
	for snap, err := range Epochs(initial, data, t.config.LearningRate, t.config.NumEpochs) {
		if err != nil {
			t.logger.Errorf("training aborted: %v", err)
			return nil, err
		}
		t.logger.Debugf("epoch %d/%d: %s misclassified=%d",
			snap.Epoch, t.config.NumEpochs, snap.Params, snap.Misclassified)
		res.Final = snap.Params
		res.Snapshots = append(res.Snapshots, snap)
	}
	res.Accuracy = Accuracy(res.Final, data)

	t.logger.Infof("trained %d epochs on %d samples: final %s accuracy=%.4f",
		t.config.NumEpochs, len(data), res.Final, res.Accuracy)
	return res, nil
}
