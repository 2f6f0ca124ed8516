// Package logging builds named zap loggers for the command line tools.
package logging

import (
	"os"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Module names.
const (
	ModuleTrain   = "[Train]"
	ModuleSweep   = "[Sweep]"
	ModuleDataset = "[Dataset]"
)

// Config controls log level and destinations.
type Config struct {
	Level         string `mapstructure:"level"`          // debug, info, warn, error
	Path          string `mapstructure:"path"`           // Rotated log file base path; empty disables file output
	Console       bool   `mapstructure:"console"`        // Also write to stderr
	ShowLine      bool   `mapstructure:"show_line"`      // Include caller file:line
	RotationHours int    `mapstructure:"rotation_hours"` // Rotation interval
	MaxAgeDays    int    `mapstructure:"max_age_days"`   // Retention of rotated files
}

// DefaultConfig logs info and above to the console only.
func DefaultConfig() Config {
	return Config{
		Level:         "info",
		Console:       true,
		RotationHours: 24,
		MaxAgeDays:    7,
	}
}

// ParseLevel maps a level name to a zap level. Unknown names yield info.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// New returns a sugared logger named after module.
func New(module string, cfg Config) (*zap.SugaredLogger, error) {
	level := ParseLevel(cfg.Level)
	priority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= level
	})

	var syncers []zapcore.WriteSyncer
	if cfg.Path != "" {
		w, err := newRotation(cfg)
		if err != nil {
			return nil, err
		}
		syncers = append(syncers, zapcore.AddSync(w))
	}
	if cfg.Console || len(syncers) == 0 {
		syncers = append(syncers, zapcore.Lock(os.Stderr))
	}

	core := zapcore.NewCore(NewEncoder(), zapcore.NewMultiWriteSyncer(syncers...), priority)

	var opts []zap.Option
	if cfg.ShowLine {
		opts = append(opts, zap.AddCaller())
	}
	return zap.New(core, opts...).Named(module).Sugar(), nil
}

// NewEncoder returns the console encoder used by every logger:
//
//	2026-01-02 15:04:05.000	[INFO]	[Train]	message	{"key": "value"}
func NewEncoder() zapcore.Encoder {
	levelEncoder := func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + level.CapitalString() + "]")
	}
	timeEncoder := func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
	}
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "line",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	})
}

func newRotation(cfg Config) (*rotatelogs.RotateLogs, error) {
	hours := cfg.RotationHours
	if hours <= 0 {
		hours = 24
	}
	days := cfg.MaxAgeDays
	if days <= 0 {
		days = 7
	}

	w, err := rotatelogs.New(
		cfg.Path+".%Y%m%d%H",
		rotatelogs.WithLinkName(cfg.Path),
		rotatelogs.WithRotationTime(time.Duration(hours)*time.Hour),
		rotatelogs.WithMaxAge(time.Duration(days)*24*time.Hour),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open rotating log")
	}
	return w, nil
}
