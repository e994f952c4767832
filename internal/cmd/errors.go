package cmd

import (
	"errors"

	"github.com/quantmind-br/wazuh-bootstrap/internal/core"
)

// reportedError marks an error already shown to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported reports whether err was already printed by a command
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// usageError marks bad flags or arguments
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// ExitCode maps a command error to the process exit code
func ExitCode(err error) int {
	var u *usageError
	if errors.As(err, &u) {
		return core.ExitInvalidArgs
	}
	return core.ExitCodeFor(err)
}
