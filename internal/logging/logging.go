// Package logging builds the single *zap.Logger used throughout ttconv:
// a colorized console sink (stdout for info/warn, stderr for error and
// above) plus an optional file sink, level driven by general.log_level.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level mirrors the general.log_level config values.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// Options configures New.
type Options struct {
	Level Level
	// File, if non-empty, additionally writes full-debug-level logs to
	// this path (truncated on open).
	File string
}

// New builds a *zap.Logger: stdout carries level..<error, stderr carries
// error and above, both colorized when their stream is a terminal; an
// optional file sink always logs at debug regardless of Level.
func New(opts Options) (*zap.Logger, error) {
	consoleLP := consoleEncoder(os.Stdout)
	consoleHP := consoleEncoder(os.Stderr)

	threshold := opts.Level.zapLevel()

	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= threshold && lvl < zapcore.ErrorLevel
	})
	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	cores := []zapcore.Core{
		zapcore.NewCore(consoleLP, zapcore.Lock(os.Stdout), lowPriority),
		zapcore.NewCore(consoleHP, zapcore.Lock(os.Stderr), highPriority),
	}

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, err
		}
		fileEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.Lock(f), zap.DebugLevel))
	}

	return zap.New(zapcore.NewTee(cores...)).Named("ttconv"), nil
}

func consoleEncoder(stream *os.File) zapcore.Encoder {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if enableColor(stream) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return zapcore.NewConsoleEncoder(ec)
}
