package cli

import (
	"errors"
	"strings"
)

// Exit codes for mdprefix.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitMismatches indicates --verify found disagreements with goldmark.
	ExitMismatches = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrMismatchesFound is returned when verification finds mismatches.
var ErrMismatchesFound = errors.New("verification mismatches found")

// ExitError attaches a process exit code to an error.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrMismatchesFound) {
		return ExitMismatches
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// cobra reports unknown commands and argument errors as plain errors.
	msg := err.Error()
	if strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "accepts ") ||
		strings.HasPrefix(msg, "requires ") {
		return ExitInvalidUsage
	}

	return ExitInternalError
}
