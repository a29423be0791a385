package errors

import (
	"context"
	stderrors "errors"
	"fmt"
)

const exitInterrupted = 130

// ExitError ends the command with Code. Err, if set, has not been shown to
// the user yet.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a handler to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}
	if stderrors.Is(err, context.Canceled) {
		return exitInterrupted
	}
	return 1
}

// Message returns the text to print for err, or "" when it was already
// reported.
func Message(err error) string {
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) && exitErr.Err == nil {
		return ""
	}
	return err.Error()
}
