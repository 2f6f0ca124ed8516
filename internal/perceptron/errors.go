package perceptron

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidSample        = errors.New("invalid sample")
	ErrEmptyDataset         = errors.New("empty dataset")
)

// ConfigError describes a rejected configuration field.
type ConfigError struct {
	Field   string // Configuration key (e.g., "learning_rate")
	Details string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfiguration, e.Field, e.Details)
}

// Unwrap returns ErrInvalidConfiguration.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

// SampleError describes a sample that cannot be trained on.
type SampleError struct {
	Index   int // Position of the sample in the dataset
	Sample  Sample
	Details string
}

// Error implements the error interface.
func (e *SampleError) Error() string {
	return fmt.Sprintf("%s at index %d (p=%g, q=%g, label=%d): %s",
		ErrInvalidSample, e.Index, e.Sample.P, e.Sample.Q, e.Sample.Label, e.Details)
}

// Unwrap returns ErrInvalidSample.
func (e *SampleError) Unwrap() error {
	return ErrInvalidSample
}
