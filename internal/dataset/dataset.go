// Package dataset reads, writes and generates labelled 2-D point sets.
//
// CSV format, one sample per row, optional header:
//
//	p,q,label
//	0.78051,-0.063669,1
//	0.28774,0.29139,0
package dataset

import (
	"encoding/csv"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/born-ml/perceptron/internal/perceptron"
)

// Options controls CSV parsing.
type Options struct {
	Header     bool // Skip the first row.
	MaxSamples int  // Maximum number of samples to load (0 = all).
}

// Load reads a dataset from a CSV file.
func Load(filename string, opts Options) ([]perceptron.Sample, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open dataset")
	}
	defer file.Close()

	data, err := Read(file, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", filename)
	}
	return data, nil
}

// Read parses samples from CSV rows of the form p,q,label.
//
// Numbers must parse; range checks on coordinates and labels are left to
// the trainer so that the offending sample is reported by index.
func Read(r io.Reader, opts Options) ([]perceptron.Sample, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var data []perceptron.Sample
	row := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read CSV")
		}
		row++
		if row == 1 && opts.Header {
			continue
		}

		s, err := parseRecord(record)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", row)
		}
		data = append(data, s)

		if opts.MaxSamples > 0 && len(data) == opts.MaxSamples {
			break
		}
	}
	return data, nil
}

func parseRecord(record []string) (perceptron.Sample, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
	if err != nil {
		return perceptron.Sample{}, errors.Wrap(err, "invalid p")
	}
	q, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return perceptron.Sample{}, errors.Wrap(err, "invalid q")
	}
	label, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return perceptron.Sample{}, errors.Wrap(err, "invalid label")
	}
	return perceptron.Sample{P: p, Q: q, Label: label}, nil
}

// Write emits samples as CSV with a p,q,label header.
func Write(w io.Writer, data []perceptron.Sample) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"p", "q", "label"}); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	for _, s := range data {
		record := []string{
			strconv.FormatFloat(s.P, 'g', -1, 64),
			strconv.FormatFloat(s.Q, 'g', -1, 64),
			strconv.Itoa(s.Label),
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "failed to write sample")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush CSV")
}

// maxRedraws bounds consecutive rejected draws in Separable.
const maxRedraws = 10000

// ErrMarginTooWide is returned by Separable when points outside the margin
// are too rare to be found in [-1, 1)².
var ErrMarginTooWide = errors.New("margin leaves no room for samples")

// Separable generates n points uniformly in [-1, 1)² labelled by the line
// w1*p + w2*q + b = 0 (positive side, inclusive, is label 1).
//
// Points closer to the line than margin (in score units) are redrawn, so
// the result is linearly separable with a gap. After maxRedraws consecutive
// rejections Separable gives up with ErrMarginTooWide.
func Separable(n int, line perceptron.Params, margin float64, rng *rand.Rand) ([]perceptron.Sample, error) {
	data := make([]perceptron.Sample, 0, n)
	rejected := 0
	for len(data) < n {
		p := rng.Float64()*2 - 1
		q := rng.Float64()*2 - 1
		score := perceptron.Score(line, p, q)
		if score < margin && score > -margin {
			rejected++
			if rejected >= maxRedraws {
				return nil, errors.Wrapf(ErrMarginTooWide, "margin %g around %s after %d samples", margin, line, len(data))
			}
			continue
		}
		rejected = 0
		data = append(data, perceptron.Sample{P: p, Q: q, Label: perceptron.Predict(line, p, q)})
	}
	return data, nil
}
