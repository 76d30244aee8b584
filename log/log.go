// Package log sets up the zap loggers used by the command line tools.
package log

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encoder defines a log encoder kind.
type Encoder = string

const (
	// ConsoleEncoder represents logging with plain text.
	ConsoleEncoder Encoder = "console"
	// JSONEncoder represents logging with JSON.
	JSONEncoder Encoder = "json"
)

// where logs go by default. stdout is reserved for command output.
var logWriter io.Writer = os.Stderr

// NewWithLevel creates a logger with a fixed level and with a set of (optional) hooks.
func NewWithLevel(module string, level zap.AtomicLevel, encoder Encoder, hooks ...func(zapcore.Entry) error) *zap.Logger {
	consoleSyncer := zapcore.AddSync(logWriter)
	core := zapcore.NewCore(newEncoder(encoder), consoleSyncer, level)
	return zap.New(zapcore.RegisterHooks(core, hooks...)).Named(module)
}

// ParseLevel parses a level name such as "info" or "DEBUG".
func ParseLevel(level string) (zap.AtomicLevel, error) {
	return zap.ParseAtomicLevel(strings.ToLower(level))
}

func newEncoder(encoder Encoder) zapcore.Encoder {
	if encoder == JSONEncoder {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
}
