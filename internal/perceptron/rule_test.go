package perceptron

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredict_ThresholdInclusive(t *testing.T) {
	points := [][2]float64{{0, 0}, {1, 1}, {-3, 7}, {-1e9, -1e9}, {2.5, -0.25}}
	for _, pt := range points {
		assert.Equal(t, 1, Predict(Params{}, pt[0], pt[1]), "score 0 at (%g, %g) must be positive", pt[0], pt[1])
	}

	// Point exactly on the line p + q - 2 = 0.
	w := Params{W1: 1, W2: 1, B: -2}
	assert.Equal(t, 1, Predict(w, 1, 1))
	assert.Equal(t, 0, Predict(w, 0.5, 1))
	assert.Equal(t, 1, Predict(w, 3, 0))
}

func TestScore(t *testing.T) {
	w := Params{W1: -0.1, W2: -0.1, B: -0.1}
	assert.InDelta(t, -0.5, Score(w, 2, 2), 1e-12)
	assert.InDelta(t, -0.9, Score(w, 4, 4), 1e-12)
}

func TestApplyUpdate(t *testing.T) {
	w := Params{W1: 0.5, W2: -1.5, B: 0.25}

	tests := []struct {
		name      string
		sample    Sample
		predicted int
		want      Params
	}{
		{
			name:      "correct positive",
			sample:    Sample{P: 2, Q: 3, Label: 1},
			predicted: 1,
			want:      w,
		},
		{
			name:      "correct negative",
			sample:    Sample{P: 2, Q: 3, Label: 0},
			predicted: 0,
			want:      w,
		},
		{
			name:      "false positive",
			sample:    Sample{P: 2, Q: 4, Label: 0},
			predicted: 1,
			want:      Params{W1: 0.5 - 0.5*2, W2: -1.5 - 0.5*4, B: 0.25 - 0.5},
		},
		{
			name:      "false negative",
			sample:    Sample{P: 2, Q: 4, Label: 1},
			predicted: 0,
			want:      Params{W1: 0.5 + 0.5*2, W2: -1.5 + 0.5*4, B: 0.25 + 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyUpdate(w, tt.sample, tt.predicted, 0.5)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyUpdate_NoOpIsExact(t *testing.T) {
	// Values that would drift under a "zero delta" update with rounding.
	w := Params{W1: 0.1, W2: 0.2, B: 0.30000000000000004}
	for _, s := range []Sample{
		{P: 1e300, Q: -1e-300, Label: 1},
		{P: 3, Q: 3, Label: 1},
	} {
		pred := Predict(w, s.P, s.Q)
		if pred != s.Label {
			continue
		}
		assert.Equal(t, w, ApplyUpdate(w, s, pred, 0.7))
	}
}

func TestApplyUpdate_ZeroLearningRate(t *testing.T) {
	w := Params{W1: 1, W2: -2, B: 3}
	got := ApplyUpdate(w, Sample{P: 10, Q: 0, Label: 0}, 1, 0)
	assert.Equal(t, w, got)
}

func TestApplyUpdate_DirectionalCorrection(t *testing.T) {
	points := []Sample{
		{P: 1, Q: 1}, {P: -2, Q: 0.5}, {P: 0, Q: 3}, {P: 7, Q: -7}, {P: 0.01, Q: 0},
	}
	w := Params{W1: 0.3, W2: -0.4, B: 0.1}
	lr := 0.05

	for _, pt := range points {
		before := Score(w, pt.P, pt.Q)

		fp := pt
		fp.Label = 0
		after := Score(ApplyUpdate(w, fp, 1, lr), pt.P, pt.Q)
		assert.Less(t, after, before, "false positive at (%g, %g) must lower the score", pt.P, pt.Q)

		fn := pt
		fn.Label = 1
		after = Score(ApplyUpdate(w, fn, 0, lr), pt.P, pt.Q)
		assert.Greater(t, after, before, "false negative at (%g, %g) must raise the score", pt.P, pt.Q)
	}
}

func TestParamsLine(t *testing.T) {
	l := Params{W1: 1, W2: 2, B: -4}.Line()
	assert.False(t, l.Vertical)
	assert.InDelta(t, -0.5, l.Slope, 1e-12)
	assert.InDelta(t, 2.0, l.Intercept, 1e-12)

	l = Params{W1: 2, W2: 0, B: -4}.Line()
	assert.True(t, l.Vertical)
	assert.InDelta(t, 2.0, l.X, 1e-12)

	l = Params{}.Line()
	assert.True(t, l.Vertical)
	assert.Zero(t, l.X)
}
