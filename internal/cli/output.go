package cli

import (
	"errors"
	"fmt"
	"io"
)

// Exit codes for the hello CLI.
const (
	ExitSuccess = 0 // Transcript written
	ExitFailure = 1 // Standard output could not be written
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (ExitFailure)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Execute runs the root command against the given writers and returns the
// process exit code. On failure a single diagnostic line goes to stderr;
// on success stderr is left untouched.
//
// Process arguments are never forwarded: cobra would otherwise route
// "__complete" to its hidden completion command.
func Execute(stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	// cobra falls back to os.Args when args is nil
	cmd.SetArgs([]string{})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "hello: %v\n", err)
	}
	return GetExitCode(err)
}
