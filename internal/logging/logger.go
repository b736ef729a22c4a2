// Package logging provides a structured logging wrapper around charmbracelet/log.
//
// The tree packages only log at debug level, through the logger attached to their
// context. Without one they fall back to the package default, which writes warnings
// and errors to stderr.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultLevel is the level of loggers created from an empty level name.
const DefaultLevel = "warn"

// ErrUnknownLevel is returned by ParseLevel for unknown level names.
var ErrUnknownLevel = errors.New("unknown log level")

//nolint:gochecknoglobals // Package-level logger is intentional for convenience
var (
	defaultMu     sync.RWMutex
	defaultLogger *log.Logger
)

// ParseLevel maps a level name to its log level. Names are case insensitive and
// an empty name means DefaultLevel.
func ParseLevel(name string) (log.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "", "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.WarnLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
}

// New creates a stderr logger. Unknown level names fall back to DefaultLevel.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w. Unknown level names fall back to
// DefaultLevel; validate names with ParseLevel first to report them.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	lvl, _ := ParseLevel(level)
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "gotree",
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return NewWithWriter(io.Discard, "error")
}

// Default returns the package-level default logger.
func Default() *log.Logger {
	defaultMu.RLock()
	logger := defaultLogger
	defaultMu.RUnlock()
	if logger != nil {
		return logger
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New(DefaultLevel)
	}
	return defaultLogger
}

// SetDefault replaces the package-level default logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// SetLevel updates the level of the default logger. An unknown level name leaves
// the level unchanged and returns an error wrapping ErrUnknownLevel.
func SetLevel(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	Default().SetLevel(lvl)
	return nil
}
