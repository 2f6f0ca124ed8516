package perceptron

// ValidateSample checks that s has finite coordinates and a label in {0, 1}.
// index is reported in the returned *SampleError.
func ValidateSample(index int, s Sample) error {
	if !isFinite(s.P) || !isFinite(s.Q) {
		return &SampleError{Index: index, Sample: s, Details: "coordinates must be finite"}
	}
	if s.Label != 0 && s.Label != 1 {
		return &SampleError{Index: index, Sample: s, Details: "label must be 0 or 1"}
	}
	return nil
}

// ValidateDataset checks every sample in order and fails on the first bad one.
func ValidateDataset(data []Sample) error {
	if len(data) == 0 {
		return ErrEmptyDataset
	}
	for i, s := range data {
		if err := ValidateSample(i, s); err != nil {
			return err
		}
	}
	return nil
}

// Misclassified counts the samples w labels incorrectly.
func Misclassified(w Params, data []Sample) int {
	n := 0
	for _, s := range data {
		if Predict(w, s.P, s.Q) != s.Label {
			n++
		}
	}
	return n
}

// Accuracy returns the fraction of samples w labels correctly.
// It is 0 for an empty dataset.
func Accuracy(w Params, data []Sample) float64 {
	if len(data) == 0 {
		return 0
	}
	return float64(len(data)-Misclassified(w, data)) / float64(len(data))
}
