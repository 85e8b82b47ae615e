// Package cli provides the interactive menu and terminal output helpers for libtrack.
package cli

import (
	"errors"

	"github.com/jacksmith/libtrack/internal/ops"
)

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}

// IsSaveFailure reports whether err only means the change could not be
// written to disk. The in-memory operation itself succeeded.
func IsSaveFailure(err error) bool {
	var writeErr *ops.WriteError
	return errors.As(err, &writeErr)
}
