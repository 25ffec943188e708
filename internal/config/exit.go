package config

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes returned by the guess CLI.
const (
	// ExitSuccess indicates the session ended with a correct guess.
	ExitSuccess = 0

	// ExitFailure indicates a fatal runtime failure (input stream, random source).
	ExitFailure = 1

	// ExitConfigError indicates invalid flags, environment or config file.
	ExitConfigError = 2
)

// ExitCode maps an error returned by the command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrInvalid):
		return ExitConfigError
	default:
		return ExitFailure
	}
}

// Exitf writes a formatted error message to stderr and exits with code.
func Exitf(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}
