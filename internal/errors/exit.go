package errors

import "errors"

// Exit codes returned by the yaml-whisperer binary.
const (
	// ExitSuccess indicates every processed file is valid YAML.
	ExitSuccess = 0

	// ExitFailure indicates a usage error or at least one invalid or unreadable file.
	ExitFailure = 1

	// ExitConfigError indicates the configuration could not be loaded or resolved.
	ExitConfigError = 2
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed reports whether the command layer already wrote the error
	// to the terminal, so the entry point must not print it again.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ExitCodeName(e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitFailure:
		return "Failure"
	case ExitConfigError:
		return "Config Error"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Missing input files are per-file read errors, so the only fatal
	// not-found condition is a missing config file.
	if errors.Is(err, ErrConfig) || errors.Is(err, ErrNotFound) {
		return ExitConfigError
	}
	return ExitFailure
}
