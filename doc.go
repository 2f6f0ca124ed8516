// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package perceptron trains single-layer perceptrons on labelled 2-D points.
//
// # Overview
//
// A perceptron classifies a point (p, q) with weights (w1, w2) and bias b:
//
//	score = w1*p + w2*q + b
//	label = 1 if score >= 0, else 0
//
// Training visits every sample in dataset order and, when the prediction is
// wrong, moves the boundary toward the sample:
//
//	false positive:  w -= lr*(p, q), b -= lr
//	false negative:  w += lr*(p, q), b += lr
//
// Each pass over the dataset is one epoch. Training always runs the
// configured number of epochs and records the parameters after each one.
//
// # Basic Usage
//
//	import "github.com/born-ml/perceptron"
//
//	func main() {
//	    data := []perceptron.Sample{
//	        {P: 1, Q: 1, Label: 0},
//	        {P: 2, Q: 2, Label: 0},
//	        {P: 4, Q: 4, Label: 1},
//	        {P: 5, Q: 5, Label: 1},
//	    }
//
//	    trainer, err := perceptron.NewTrainer(perceptron.Config{
//	        LearningRate: 0.1,
//	        NumEpochs:    10,
//	        SeedStrategy: perceptron.SeedRandom,
//	        Seed:         42,
//	        Init:         perceptron.DefaultInitRange(),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    res, err := trainer.Fit(data)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, s := range res.Snapshots {
//	        fmt.Println(s.Epoch, s.Params, s.Line())
//	    }
//	}
//
// # Lower-level API
//
// Predict, ApplyUpdate, RunEpoch and Train operate on plain values and can
// be composed directly. Epochs exposes the trajectory lazily:
//
//	for snap, err := range perceptron.Epochs(perceptron.Params{}, data, 0.1, 100) {
//	    if err != nil {
//	        return err
//	    }
//	    if snap.Misclassified == 0 {
//	        break
//	    }
//	}
//
// # Errors
//
// Invalid input is reported, never coerced. Use errors.Is with
// ErrInvalidConfiguration, ErrInvalidSample and ErrEmptyDataset, or
// errors.As with *ConfigError and *SampleError for details.
//
// # Randomness
//
// Random initialization draws from an explicit *rand.Rand (see NewRand and
// WithRand). The same seed, dataset order and configuration always produce
// the same trajectory.
package perceptron
