package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zap.DebugLevel,
		"DEBUG":   zap.DebugLevel,
		"info":    zap.InfoLevel,
		"warn":    zap.WarnLevel,
		"warning": zap.WarnLevel,
		"error":   zap.ErrorLevel,
		"":        zap.InfoLevel,
		"verbose": zap.InfoLevel,
	}
	for name, want := range tests {
		assert.Equal(t, want, ParseLevel(name), name)
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perceptron.log")

	cfg := DefaultConfig()
	cfg.Path = path
	cfg.Console = false
	cfg.Level = "warn"

	logger, err := New(ModuleTrain, cfg)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warnf("epoch %d diverged", 3)
	_ = logger.Sync()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[WARN]")
	assert.Contains(t, string(content), ModuleTrain)
	assert.Contains(t, string(content), "epoch 3 diverged")
	assert.NotContains(t, string(content), "dropped")
}

func TestNew_Console(t *testing.T) {
	logger, err := New(ModuleSweep, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, logger.Desugar().Core().Enabled(zap.InfoLevel))
	assert.False(t, logger.Desugar().Core().Enabled(zap.DebugLevel))
}
