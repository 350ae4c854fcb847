package configloader

import (
	"fmt"

	"github.com/yaklabco/mdprefix/pkg/config"
)

// ValidationError reports an invalid configuration, naming the file it
// came from when known.
type ValidationError struct {
	// FilePath is the config file containing the error (if known).
	FilePath string

	// Err holds the joined field errors from config.Validate.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.FilePath == "" {
		return "invalid configuration: " + e.Err.Error()
	}
	return fmt.Sprintf("invalid configuration in %s: %v", e.FilePath, e.Err)
}

// Unwrap exposes the underlying field errors.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidateWithFile validates cfg and attributes any failure to filePath.
func ValidateWithFile(cfg *config.Config, filePath string) error {
	if err := cfg.Validate(); err != nil {
		return &ValidationError{FilePath: filePath, Err: err}
	}
	return nil
}

// Warnings returns non-fatal observations about a resolved configuration.
func Warnings(cfg *config.Config) []string {
	if cfg == nil {
		return nil
	}

	var warnings []string
	if cfg.Verify && cfg.Flavor == config.FlavorCommonMark && cfg.TaskListsEnabled() {
		warnings = append(warnings,
			"task checkboxes are not verified under commonmark; set flavor to gfm or disable task_lists")
	}
	return warnings
}
