package cmd

import (
	"errors"
)

const (
	ExitOK = 0
	// ExitFileErrors means the batch completed but some documents could not be rewritten.
	ExitFileErrors = 1
	// ExitFatal means the batch did not run to completion and no summary is reliable.
	ExitFatal = 2
)

type ErrorWithExitCode struct {
	Err      error
	ExitCode int
}

func (e ErrorWithExitCode) Error() string {
	return e.Err.Error()
}

func (e ErrorWithExitCode) Unwrap() error {
	return e.Err
}

func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var eerr ErrorWithExitCode
	if errors.As(err, &eerr) {
		return eerr.ExitCode
	}

	return ExitFatal
}
