package dataset

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/perceptron/internal/perceptron"
)

func TestRead(t *testing.T) {
	input := "0.78051,-0.063669,1\n0.28774, 0.29139,0\n# comment\n-1,2.5e-1,1\n"

	data, err := Read(strings.NewReader(input), Options{})
	require.NoError(t, err)
	assert.Equal(t, []perceptron.Sample{
		{P: 0.78051, Q: -0.063669, Label: 1},
		{P: 0.28774, Q: 0.29139, Label: 0},
		{P: -1, Q: 0.25, Label: 1},
	}, data)
}

func TestRead_HeaderAndLimit(t *testing.T) {
	input := "p,q,label\n1,1,0\n2,2,0\n4,4,1\n"

	data, err := Read(strings.NewReader(input), Options{Header: true, MaxSamples: 2})
	require.NoError(t, err)
	assert.Equal(t, []perceptron.Sample{{P: 1, Q: 1}, {P: 2, Q: 2}}, data)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "header without flag", input: "p,q,label\n1,1,0\n", want: "row 1: invalid p"},
		{name: "bad q", input: "1,1,0\n1,x,0\n", want: "row 2: invalid q"},
		{name: "bad label", input: "1,1,yes\n", want: "row 1: invalid label"},
		{name: "wrong field count", input: "1,1\n", want: "failed to read CSV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), Options{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRead_KeepsOutOfRangeLabels(t *testing.T) {
	// Label validation belongs to the trainer.
	data, err := Read(strings.NewReader("1,1,7\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, 7, data[0].Label)
}

func TestWriteLoadRoundTrip(t *testing.T) {
	data, err := Separable(50, perceptron.Params{W1: 1, W2: -2, B: 0.3}, 0.05, perceptron.NewRand(11))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, data))

	path := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	loaded, err := Load(path, Options{Header: true})
	require.NoError(t, err)
	assert.Equal(t, data, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSeparable(t *testing.T) {
	line := perceptron.Params{W1: 0.5, W2: 1, B: -0.1}
	data, err := Separable(200, line, 0.1, perceptron.NewRand(3))
	require.NoError(t, err)
	require.Len(t, data, 200)
	require.NoError(t, perceptron.ValidateDataset(data))

	var pos int
	for _, s := range data {
		assert.GreaterOrEqual(t, s.P, -1.0)
		assert.Less(t, s.P, 1.0)
		score := perceptron.Score(line, s.P, s.Q)
		assert.False(t, score > -0.1 && score < 0.1, "point inside margin: %v", s)
		pos += s.Label
	}
	assert.Positive(t, pos)
	assert.Less(t, pos, 200)

	// The generating line classifies everything correctly.
	assert.Zero(t, perceptron.Misclassified(line, data))
}

func TestSeparable_MarginTooWide(t *testing.T) {
	// |score| can only approach 3 near the excluded corner (1, 1).
	line := perceptron.Params{W1: 1, W2: 1, B: 1}
	_, err := Separable(10, line, 2.999999, perceptron.NewRand(5))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMarginTooWide)
}
