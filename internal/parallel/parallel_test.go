package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEach(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4}

	var counter int64
	n := 1000
	seen := make([]bool, n)

	err := ForEach(context.Background(), n, func(_ context.Context, i int) error {
		atomic.AddInt64(&counter, 1)
		seen[i] = true
		return nil
	}, cfg)

	require.NoError(t, err)
	assert.Equal(t, int64(n), counter)
	for i, ok := range seen {
		assert.True(t, ok, "missing index %d", i)
	}
}

func TestForEach_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	err := ForEach(context.Background(), 5, func(_ context.Context, i int) error {
		order = append(order, i)
		return nil
	}, cfg)

	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestForEach_Error(t *testing.T) {
	boom := errors.New("boom")

	for _, cfg := range []Config{{Enabled: false}, {Enabled: true, NumWorkers: 3}} {
		err := ForEach(context.Background(), 20, func(_ context.Context, i int) error {
			if i == 7 {
				return boom
			}
			return nil
		}, cfg)
		assert.ErrorIs(t, err, boom)
	}
}

func TestForEach_SequentialStopsAtError(t *testing.T) {
	boom := errors.New("boom")

	var calls int
	err := ForEach(context.Background(), 10, func(_ context.Context, i int) error {
		calls++
		if i == 2 {
			return boom
		}
		return nil
	}, Config{Enabled: false})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestForEach_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int64
	err := ForEach(ctx, 10, func(_ context.Context, _ int) error {
		atomic.AddInt64(&calls, 1)
		return nil
	}, DefaultConfig())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(0), calls)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.GreaterOrEqual(t, cfg.NumWorkers, 1)
}

func BenchmarkForEach(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			_ = ForEach(context.Background(), n, func(_ context.Context, j int) error {
				atomic.AddInt64(&sum, int64(j))
				return nil
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		seqCfg := Config{Enabled: false}
		for i := 0; i < b.N; i++ {
			var sum int64
			_ = ForEach(context.Background(), n, func(_ context.Context, j int) error {
				sum += int64(j)
				return nil
			}, seqCfg)
		}
	})
}
