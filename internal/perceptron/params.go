// Package perceptron implements the single-layer perceptron learning rule
// for linearly separating labelled points in the plane.
//
// The package is split into three layers:
//   - Pure numeric primitives: Score, Predict, ApplyUpdate
//   - Epoch driving: RunEpoch, Epochs, Train
//   - A configured Trainer that validates a Config, initializes the
//     parameters and runs Train with logging
//
// Training is online: every misclassified sample immediately moves the
// decision boundary, so samples are processed strictly in dataset order
// and every epoch starts from the previous epoch's parameters.
//
// Example:
//
//	data := []perceptron.Sample{
//	    {P: 1, Q: 1, Label: 0},
//	    {P: 4, Q: 4, Label: 1},
//	}
//	final, snapshots, err := perceptron.Train(perceptron.Params{}, data, 0.1, 10)
package perceptron

import (
	"fmt"
	"math"
)

// Sample is a labelled point (P, Q) with Label in {0, 1}.
type Sample struct {
	P     float64 `json:"p"`
	Q     float64 `json:"q"`
	Label int     `json:"label"`
}

// Params holds the weight vector (W1, W2) and bias B of a perceptron.
type Params struct {
	W1 float64 `json:"w1" mapstructure:"w1"`
	W2 float64 `json:"w2" mapstructure:"w2"`
	B  float64 `json:"b" mapstructure:"b"`
}

// String implements fmt.Stringer.
func (w Params) String() string {
	return fmt.Sprintf("(w1=%g, w2=%g, b=%g)", w.W1, w.W2, w.B)
}

// IsFinite reports whether every component is neither NaN nor ±Inf.
func (w Params) IsFinite() bool {
	return isFinite(w.W1) && isFinite(w.W2) && isFinite(w.B)
}

// Predict classifies (p, q) with these parameters.
func (w Params) Predict(p, q float64) int {
	return Predict(w, p, q)
}

// Line returns the decision boundary w1*p + w2*q + b = 0.
func (w Params) Line() Line {
	if w.W2 == 0 {
		l := Line{Vertical: true}
		if w.W1 != 0 {
			l.X = -w.B / w.W1
		}
		return l
	}
	return Line{
		Slope:     -w.W1 / w.W2,
		Intercept: -w.B / w.W2,
	}
}

// Line describes a decision boundary in plotting form.
//
// For non-vertical boundaries q = Slope*p + Intercept. When Vertical is set
// the boundary is p = X (and X is zero if the weight vector itself is zero).
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	Vertical  bool    `json:"vertical,omitempty"`
	X         float64 `json:"x,omitempty"`
}

// Snapshot records the parameters at the end of an epoch.
//
// Snapshots are plain values; once appended to a trajectory they are never
// modified.
type Snapshot struct {
	Epoch         int    `json:"epoch"` // 1-based
	Params        Params `json:"params"`
	Misclassified int    `json:"misclassified"`
}

// Line returns the decision boundary at this snapshot.
func (s Snapshot) Line() Line {
	return s.Params.Line()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
