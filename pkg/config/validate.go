package config

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gotree/internal/logging"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "kmeans.init").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// knownInits lists valid k-means initialization strategies.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownInits = map[string]bool{
	InitFirst:    true,
	InitRandom:   true,
	InitPlusPlus: true,
}

// knownColorModes lists valid printer color modes.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownColorModes = map[string]bool{
	ColorAuto:   true,
	ColorAlways: true,
	ColorNever:  true,
}

// Validate checks the configuration and returns all errors found.
func (c *Config) Validate() []ValidationError {
	if c == nil {
		return nil
	}

	var errs []ValidationError

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Value:   c.LogLevel,
			Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", c.LogLevel),
		})
	}

	if c.Newick.Precision < 0 {
		errs = append(errs, ValidationError{
			Field:   "newick.precision",
			Value:   c.Newick.Precision,
			Message: "precision must be >= 0 (0 means shortest)",
		})
	}

	if c.Kmeans.MaxIterations <= 0 {
		errs = append(errs, ValidationError{
			Field:   "kmeans.max_iterations",
			Value:   c.Kmeans.MaxIterations,
			Message: "max_iterations must be > 0",
		})
	}

	if !knownInits[c.Kmeans.Init] {
		errs = append(errs, ValidationError{
			Field:   "kmeans.init",
			Value:   c.Kmeans.Init,
			Message: fmt.Sprintf("invalid init %q; must be one of: first, random, plusplus", c.Kmeans.Init),
		})
	}

	if c.Kmeans.Jobs < 0 {
		errs = append(errs, ValidationError{
			Field:   "kmeans.jobs",
			Value:   c.Kmeans.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if c.Printer.Color != "" && !knownColorModes[c.Printer.Color] {
		errs = append(errs, ValidationError{
			Field:   "printer.color",
			Value:   c.Printer.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", c.Printer.Color),
		})
	}

	if c.Printer.MaxWidth < 0 {
		errs = append(errs, ValidationError{
			Field:   "printer.max_width",
			Value:   c.Printer.MaxWidth,
			Message: "max_width must be >= 0 (0 means terminal width)",
		})
	}

	return errs
}
