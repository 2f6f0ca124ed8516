package perceptron

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/perceptron/internal/parallel"
)

func TestGrid(t *testing.T) {
	base := DefaultConfig()
	base.Seed = 5

	configs := Grid(base, []float64{0.1, 0.01}, []int64{1, 2, 3})
	require.Len(t, configs, 6)
	assert.Equal(t, 0.1, configs[0].LearningRate)
	assert.Equal(t, int64(1), configs[0].Seed)
	assert.Equal(t, 0.01, configs[5].LearningRate)
	assert.Equal(t, int64(3), configs[5].Seed)

	configs = Grid(base, nil, nil)
	require.Len(t, configs, 1)
	assert.Equal(t, base, configs[0])
}

func TestSweep_MatchesSequentialRuns(t *testing.T) {
	base := DefaultConfig()
	base.NumEpochs = 20
	configs := Grid(base, []float64{0.1, 0.05, 0.01}, []int64{1, 2, 3, 4})

	for _, pcfg := range []parallel.Config{{Enabled: false}, {Enabled: true, NumWorkers: 4}} {
		results, err := Sweep(context.Background(), clusters(), configs, pcfg, nil)
		require.NoError(t, err)
		require.Len(t, results, len(configs))

		for i, cfg := range configs {
			trainer, err := NewTrainer(cfg)
			require.NoError(t, err)
			want, err := trainer.Fit(clusters())
			require.NoError(t, err)

			assert.Equal(t, want.Initial, results[i].Initial, "run %d", i)
			assert.Equal(t, want.Final, results[i].Final, "run %d", i)
			assert.Equal(t, want.Snapshots, results[i].Snapshots, "run %d", i)
		}
	}
}

func TestSweep_Errors(t *testing.T) {
	configs := []Config{DefaultConfig(), {LearningRate: -1, NumEpochs: 1}}

	_, err := Sweep(context.Background(), clusters(), configs, parallel.DefaultConfig(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	assert.Contains(t, err.Error(), "run 1")

	_, err = Sweep(context.Background(), nil, configs[:1], parallel.DefaultConfig(), nil)
	assert.True(t, errors.Is(err, ErrEmptyDataset))

	bad := append(clusters(), Sample{P: 1, Q: 1, Label: 3})
	_, err = Sweep(context.Background(), bad, configs[:1], parallel.DefaultConfig(), nil)
	assert.True(t, errors.Is(err, ErrInvalidSample))
}
