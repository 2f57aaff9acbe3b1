// Package logging writes diagnostics through charmbracelet/log.
package logging

import (
	"io"

	charmlog "github.com/charmbracelet/log"
)

// Level is a diagnostics threshold.
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// LevelFor maps the CLI verbosity flags to a level. Quiet wins.
func LevelFor(quiet, verbose bool) Level {
	switch {
	case quiet:
		return ErrorLevel
	case verbose:
		return DebugLevel
	default:
		return InfoLevel
	}
}

func (l Level) charm() charmlog.Level {
	switch l {
	case DebugLevel:
		return charmlog.DebugLevel
	case WarnLevel:
		return charmlog.WarnLevel
	case ErrorLevel:
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// Options configures a Logger.
type Options struct {
	Level      Level
	JSON       bool
	Timestamps bool
	TimeFormat string // Used when Timestamps is set (default: 15:04:05)
}

// Logger writes leveled messages with key/value pairs.
type Logger struct {
	charm *charmlog.Logger
}

// New creates a Logger writing to w.
func New(w io.Writer, opts Options) *Logger {
	if opts.TimeFormat == "" {
		opts.TimeFormat = "15:04:05"
	}

	charm := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           opts.Level.charm(),
		ReportTimestamp: opts.Timestamps,
		TimeFormat:      opts.TimeFormat,
	})
	if opts.JSON {
		charm.SetFormatter(charmlog.JSONFormatter)
	} else {
		charm.SetFormatter(charmlog.TextFormatter)
	}

	return &Logger{charm: charm}
}

func (l *Logger) Debug(msg string, keyvals ...any) { l.charm.Debug(msg, keyvals...) }
func (l *Logger) Info(msg string, keyvals ...any)  { l.charm.Info(msg, keyvals...) }
func (l *Logger) Warn(msg string, keyvals ...any)  { l.charm.Warn(msg, keyvals...) }
func (l *Logger) Error(msg string, keyvals ...any) { l.charm.Error(msg, keyvals...) }
