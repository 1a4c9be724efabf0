package commands

import (
	"errors"

	"github.com/petal-labs/aidraw/core"
)

// Exit codes
const (
	ExitSuccess    = 0
	ExitValidation = 1
	ExitProvider   = 2
	ExitNetwork    = 3
	ExitFilesystem = 4
)

// exitError wraps an error with an exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func (e *exitError) ExitCode() int {
	return e.code
}

func exitWithCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

// classify picks the exit code for a pipeline failure.
func classify(err error) error {
	switch {
	case errors.Is(err, core.ErrFilesystem):
		return exitWithCode(ExitFilesystem, err)
	case errors.Is(err, core.ErrNetwork), errors.Is(err, core.ErrDownload):
		return exitWithCode(ExitNetwork, err)
	default:
		return exitWithCode(ExitProvider, err)
	}
}
