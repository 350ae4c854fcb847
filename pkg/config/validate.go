package config

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// MaxMarkersLimit is the largest accepted max_markers value.
const MaxMarkersLimit = 1024

// FieldError describes one invalid configuration field.
type FieldError struct {
	// Field is the config key, e.g. "ignore[2]".
	Field string

	// Value is the offending value.
	Value any

	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks every field and returns all problems joined together,
// or nil when the configuration is usable.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}

	var errs []error

	if c.Flavor != "" && !c.Flavor.IsValid() {
		errs = append(errs, &FieldError{
			Field:   "flavor",
			Value:   c.Flavor,
			Message: fmt.Sprintf("invalid flavor %q; must be one of: commonmark, gfm", c.Flavor),
		})
	}

	if c.Format != "" && !c.Format.IsValid() {
		errs = append(errs, &FieldError{
			Field:   "format",
			Value:   c.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, table, json, summary", c.Format),
		})
	}

	if c.Jobs < 0 {
		errs = append(errs, &FieldError{
			Field:   "jobs",
			Value:   c.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if c.MaxMarkers < 0 || c.MaxMarkers > MaxMarkersLimit {
		errs = append(errs, &FieldError{
			Field:   "max_markers",
			Value:   c.MaxMarkers,
			Message: fmt.Sprintf("max_markers must be between 0 and %d", MaxMarkersLimit),
		})
	}

	for i, pattern := range c.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, &FieldError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern %q", pattern),
			})
		}
	}

	for i, ext := range c.Extensions {
		if ext == "" || ext[0] != '.' {
			errs = append(errs, &FieldError{
				Field:   fmt.Sprintf("extensions[%d]", i),
				Value:   ext,
				Message: fmt.Sprintf("extension %q must start with a dot", ext),
			})
		}
	}

	return errors.Join(errs...)
}
