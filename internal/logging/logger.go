// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Prefix is printed in front of every mdprefix log line.
const Prefix = "mdprefix"

//nolint:gochecknoglobals // process-wide fallback used when no logger is in context
var defaultLogger atomic.Pointer[log.Logger]

// ParseLevel maps a level name to a log.Level. "warning" is accepted as an
// alias for "warn"; unknown names fall back to info.
func ParseLevel(name string) log.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		name = "warn"
	}
	level, err := log.ParseLevel(name)
	if err != nil || level == log.FatalLevel {
		return log.InfoLevel
	}
	return level
}

// New creates a stderr logger at the named level.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w. Debug loggers report
// timestamps so per-file durations can be lined up.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	parsed := ParseLevel(level)
	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           parsed,
		ReportTimestamp: parsed == log.DebugLevel,
	})
}

// Default returns the process-wide logger, creating it on first use.
func Default() *log.Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	defaultLogger.CompareAndSwap(nil, New("info"))
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger. A nil logger is ignored.
func SetDefault(logger *log.Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// SetLevel changes the level of the process-wide logger.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}
