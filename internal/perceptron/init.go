package perceptron

import (
	"math/rand"
	"strings"
)

// SeedStrategy selects how initial parameters are produced.
type SeedStrategy string

const (
	// SeedRandom draws the weights and bias uniformly from InitRange.
	SeedRandom SeedStrategy = "random"
	// SeedFixed uses caller-supplied parameters.
	SeedFixed SeedStrategy = "fixed"
)

// ParseSeedStrategy converts a configuration string to a SeedStrategy.
// An empty string selects SeedRandom.
func ParseSeedStrategy(s string) (SeedStrategy, error) {
	switch SeedStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", SeedRandom:
		return SeedRandom, nil
	case SeedFixed:
		return SeedFixed, nil
	default:
		return "", &ConfigError{Field: "seed_strategy", Details: "unknown strategy " + s}
	}
}

// InitRange bounds the uniform draws of random initialization.
// Weights are drawn from [WeightMin, WeightMax) and the bias from
// [BiasMin, BiasMax).
type InitRange struct {
	WeightMin float64 `mapstructure:"weight_min"`
	WeightMax float64 `mapstructure:"weight_max"`
	BiasMin   float64 `mapstructure:"bias_min"`
	BiasMax   float64 `mapstructure:"bias_max"`
}

// DefaultInitRange returns U[0, 1) for both weights and bias.
func DefaultInitRange() InitRange {
	return InitRange{
		WeightMin: 0,
		WeightMax: 1,
		BiasMin:   0,
		BiasMax:   1,
	}
}

// NewRand returns a random source for Initialize.
// A negative seed selects a non-reproducible seed.
func NewRand(seed int64) *rand.Rand {
	if seed >= 0 {
		return rand.New(rand.NewSource(seed)) //nolint:gosec // Deterministic seed for reproducible runs
	}
	return rand.New(rand.NewSource(rand.Int63())) //nolint:gosec // Caller requested a random seed
}

// Initialize produces initial parameters.
//
// SeedFixed returns fixed unchanged. Any other strategy draws w1, w2 and
// then b from r using rng, in that order, so a given seed always yields the
// same parameters. Initialize never fails; validate the strategy with
// ParseSeedStrategy or Config.Validate first.
func Initialize(strategy SeedStrategy, fixed Params, r InitRange, rng *rand.Rand) Params {
	if strategy == SeedFixed {
		return fixed
	}
	return Params{
		W1: uniform(rng, r.WeightMin, r.WeightMax),
		W2: uniform(rng, r.WeightMin, r.WeightMax),
		B:  uniform(rng, r.BiasMin, r.BiasMax),
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
