// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package perceptron

import (
	"context"
	"iter"
	"math/rand"

	"go.uber.org/zap"

	"github.com/born-ml/perceptron/internal/parallel"
	"github.com/born-ml/perceptron/internal/perceptron"
)

// Data types

// Sample is a labelled point (P, Q) with Label in {0, 1}.
type Sample = perceptron.Sample

// Params holds the weights (W1, W2) and bias B.
type Params = perceptron.Params

// Snapshot records the parameters at the end of an epoch.
type Snapshot = perceptron.Snapshot

// Line is a decision boundary in plotting form.
type Line = perceptron.Line

// Rule

// Score returns w1*p + w2*q + b.
func Score(w Params, p, q float64) float64 {
	return perceptron.Score(w, p, q)
}

// Predict returns 1 if the score of (p, q) is >= 0, else 0.
func Predict(w Params, p, q float64) int {
	return perceptron.Predict(w, p, q)
}

// ApplyUpdate applies the perceptron rule for one sample.
func ApplyUpdate(w Params, s Sample, predicted int, lr float64) Params {
	return perceptron.ApplyUpdate(w, s, predicted, lr)
}

// Initialization

// SeedStrategy selects how initial parameters are produced.
type SeedStrategy = perceptron.SeedStrategy

// Seed strategies.
const (
	SeedRandom = perceptron.SeedRandom
	SeedFixed  = perceptron.SeedFixed
)

// InitRange bounds random initialization.
type InitRange = perceptron.InitRange

// DefaultInitRange returns U[0, 1) for weights and bias.
func DefaultInitRange() InitRange {
	return perceptron.DefaultInitRange()
}

// NewRand returns a seeded random source; a negative seed is non-reproducible.
func NewRand(seed int64) *rand.Rand {
	return perceptron.NewRand(seed)
}

// Initialize produces initial parameters.
func Initialize(strategy SeedStrategy, fixed Params, r InitRange, rng *rand.Rand) Params {
	return perceptron.Initialize(strategy, fixed, r, rng)
}

// Training

// RunEpoch makes one ordered pass over data.
func RunEpoch(w Params, data []Sample, lr float64) (Params, error) {
	return perceptron.RunEpoch(w, data, lr)
}

// Epochs returns the training trajectory as a lazy, restartable sequence.
func Epochs(initial Params, data []Sample, lr float64, numEpochs int) iter.Seq2[Snapshot, error] {
	return perceptron.Epochs(initial, data, lr, numEpochs)
}

// Train runs numEpochs epochs and returns the final parameters and one
// snapshot per epoch.
func Train(initial Params, data []Sample, lr float64, numEpochs int) (Params, []Snapshot, error) {
	return perceptron.Train(initial, data, lr, numEpochs)
}

// Config holds the settings of a training run.
type Config = perceptron.Config

// DefaultConfig returns lr 0.01, 25 epochs, random initialization.
func DefaultConfig() Config {
	return perceptron.DefaultConfig()
}

// Trainer runs a validated Config against datasets.
type Trainer = perceptron.Trainer

// Option configures a Trainer.
type Option = perceptron.Option

// Result is the outcome of Trainer.Fit.
type Result = perceptron.Result

// NewTrainer validates config and returns a Trainer.
func NewTrainer(config Config, opts ...Option) (*Trainer, error) {
	return perceptron.NewTrainer(config, opts...)
}

// WithLogger sets the logger used for per-epoch diagnostics.
func WithLogger(logger *zap.SugaredLogger) Option {
	return perceptron.WithLogger(logger)
}

// WithRand overrides the random source derived from Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return perceptron.WithRand(rng)
}

// Diagnostics

// Misclassified counts the samples w labels incorrectly.
func Misclassified(w Params, data []Sample) int {
	return perceptron.Misclassified(w, data)
}

// Accuracy returns the fraction of samples w labels correctly.
func Accuracy(w Params, data []Sample) float64 {
	return perceptron.Accuracy(w, data)
}

// ValidateDataset checks that data is non-empty and every sample is valid.
func ValidateDataset(data []Sample) error {
	return perceptron.ValidateDataset(data)
}

// Sweeps

// ParallelConfig controls how many sweep runs execute at once.
type ParallelConfig = parallel.Config

// DefaultParallelConfig uses one worker per CPU.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Grid expands base into one Config per (learning rate, seed) pair.
func Grid(base Config, rates []float64, seeds []int64) []Config {
	return perceptron.Grid(base, rates, seeds)
}

// Sweep trains one independent run per config.
func Sweep(ctx context.Context, data []Sample, configs []Config, pcfg ParallelConfig, logger *zap.SugaredLogger) ([]*Result, error) {
	return perceptron.Sweep(ctx, data, configs, pcfg, logger)
}

// Errors

// Error values and types.
var (
	ErrInvalidConfiguration = perceptron.ErrInvalidConfiguration
	ErrInvalidSample        = perceptron.ErrInvalidSample
	ErrEmptyDataset         = perceptron.ErrEmptyDataset
)

// ConfigError describes a rejected configuration field.
type ConfigError = perceptron.ConfigError

// SampleError describes a sample that cannot be trained on.
type SampleError = perceptron.SampleError
