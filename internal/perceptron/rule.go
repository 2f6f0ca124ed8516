package perceptron

// Score returns the affine score w1*p + w2*q + b.
func Score(w Params, p, q float64) float64 {
	return w.W1*p + w.W2*q + w.B
}

// Predict applies the step function to the score of (p, q).
//
// The threshold is inclusive: a score of exactly zero is labelled 1, so
// points lying on the decision boundary are classified positive.
func Predict(w Params, p, q float64) int {
	if Score(w, p, q) >= 0 {
		return 1
	}
	return 0
}

// ApplyUpdate applies the perceptron rule for one sample.
//
// Update rule:
//
//	predicted == label:          unchanged
//	predicted == 1, label == 0:  w -= lr*(p, q), b -= lr
//	predicted == 0, label == 1:  w += lr*(p, q), b += lr
//
// A correct prediction returns w itself, not a zero-delta update.
func ApplyUpdate(w Params, s Sample, predicted int, lr float64) Params {
	switch {
	case predicted == s.Label:
		return w
	case predicted == 1 && s.Label == 0:
		return Params{
			W1: w.W1 - lr*s.P,
			W2: w.W2 - lr*s.Q,
			B:  w.B - lr,
		}
	case predicted == 0 && s.Label == 1:
		return Params{
			W1: w.W1 + lr*s.P,
			W2: w.W2 + lr*s.Q,
			B:  w.B + lr,
		}
	default:
		// Labels outside {0, 1} are rejected by ValidateSample before
		// reaching the rule.
		return w
	}
}
