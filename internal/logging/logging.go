// Package logging builds the zap loggers used by the command-line tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option mutates the logger settings.
type Option func(*settings)

type settings struct {
	out    io.Writer
	fields []zap.Field
}

// WithOutput sends log output to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.out = w
		}
	}
}

// WithFields attaches fields to every entry.
func WithFields(fields ...zap.Field) Option {
	return func(s *settings) {
		s.fields = append(s.fields, fields...)
	}
}

// ParseLevel maps a level name (debug, info, warn, error) to a zap level.
// The empty string is info.
func ParseLevel(name string) (zapcore.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return lvl, nil
}

// New returns a logger at the named level. Development loggers use the
// console encoder with colourless level names; production loggers emit
// JSON with ISO-8601 timestamps.
func New(level string, development bool, opts ...Option) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	s := settings{out: os.Stderr}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	var enc zapcore.Encoder
	if development {
		cfg := zap.NewDevelopmentEncoderConfig()
		enc = zapcore.NewConsoleEncoder(cfg)
	} else {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(s.out), zap.NewAtomicLevelAt(lvl))
	logger := zap.New(core, zap.AddCaller())
	if len(s.fields) > 0 {
		logger = logger.With(s.fields...)
	}
	return logger, nil
}
