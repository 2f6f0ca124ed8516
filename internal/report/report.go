// Package report renders training results for external visualizers.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/born-ml/perceptron/internal/perceptron"
)

// Run is the serialized form of one training run.
type Run struct {
	LearningRate float64 `json:"learning_rate"`
	NumEpochs    int     `json:"num_epochs"`
	SeedStrategy string  `json:"seed_strategy"`
	Seed         int64   `json:"seed"`

	Initial   perceptron.Params `json:"initial"`
	Final     perceptron.Params `json:"final"`
	Accuracy  float64           `json:"accuracy"`
	Snapshots []Epoch           `json:"snapshots"`
}

// Epoch is one boundary snapshot with its plotting line.
type Epoch struct {
	Epoch         int               `json:"epoch"`
	Params        perceptron.Params `json:"params"`
	Misclassified int               `json:"misclassified"`
	Line          perceptron.Line   `json:"line"`
}

// FromResult converts a training result.
func FromResult(res *perceptron.Result) Run {
	run := Run{
		LearningRate: res.Config.LearningRate,
		NumEpochs:    res.Config.NumEpochs,
		SeedStrategy: string(res.Config.SeedStrategy),
		Seed:         res.Config.Seed,
		Initial:      res.Initial,
		Final:        res.Final,
		Accuracy:     res.Accuracy,
		Snapshots:    make([]Epoch, len(res.Snapshots)),
	}
	for i, s := range res.Snapshots {
		run.Snapshots[i] = Epoch{
			Epoch:         s.Epoch,
			Params:        s.Params,
			Misclassified: s.Misclassified,
			Line:          s.Line(),
		}
	}
	return run
}

// WriteJSON writes the run as indented JSON.
func WriteJSON(w io.Writer, res *perceptron.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromResult(res)); err != nil {
		return errors.Wrap(err, "failed to encode result")
	}
	return nil
}

// csvHeader lists the columns written by WriteCSV. Epoch 0 holds the
// initial parameters.
var csvHeader = []string{"epoch", "w1", "w2", "b", "misclassified", "slope", "intercept", "vertical", "x"}

// WriteCSV writes one row per epoch, preceded by the initial parameters as
// epoch 0.
func WriteCSV(w io.Writer, res *perceptron.Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	rows := make([]perceptron.Snapshot, 0, len(res.Snapshots)+1)
	rows = append(rows, perceptron.Snapshot{Epoch: 0, Params: res.Initial, Misclassified: -1})
	rows = append(rows, res.Snapshots...)

	for _, s := range rows {
		l := s.Line()
		record := []string{
			strconv.Itoa(s.Epoch),
			formatFloat(s.Params.W1),
			formatFloat(s.Params.W2),
			formatFloat(s.Params.B),
			strconv.Itoa(s.Misclassified),
			formatFloat(l.Slope),
			formatFloat(l.Intercept),
			strconv.FormatBool(l.Vertical),
			formatFloat(l.X),
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "failed to write snapshot")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush CSV")
}

// WriteSummary prints one aligned line per sweep run.
func WriteSummary(w io.Writer, results []*perceptron.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tLR\tSEED\tFINAL\tMISCLASSIFIED\tACCURACY\tCONVERGED_AT")
	for i, res := range results {
		last := -1
		if n := len(res.Snapshots); n > 0 {
			last = res.Snapshots[n-1].Misclassified
		}
		converged := "-"
		if epoch := ConvergedAt(res.Snapshots); epoch > 0 {
			converged = strconv.Itoa(epoch)
		}
		fmt.Fprintf(tw, "%d\t%g\t%d\t%s\t%d\t%.4f\t%s\n",
			i, res.Config.LearningRate, res.Config.Seed, res.Final, last, res.Accuracy, converged)
	}
	return errors.Wrap(tw.Flush(), "failed to write summary")
}

// ConvergedAt returns the first epoch after which no sample was
// misclassified for the rest of the run, or 0 if the run never settled.
func ConvergedAt(snapshots []perceptron.Snapshot) int {
	epoch := 0
	for _, s := range snapshots {
		switch {
		case s.Misclassified != 0:
			epoch = 0
		case epoch == 0:
			epoch = s.Epoch
		}
	}
	return epoch
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
