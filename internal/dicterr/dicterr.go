// Package dicterr carries the (message, details, line) shape that the
// host-provided log_error hook expects, wrapped as a normal Go error so it
// composes with github.com/pkg/errors up the call stack.
package dicterr

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// Detail is a structured failure: a short, user-facing Message, a more
// precise Details string, and the source Line the failure was raised from
// (the Go analogue of the original's line!() macro).
type Detail struct {
	Message string
	Details string
	Line    int
}

func (d *Detail) Error() string {
	return fmt.Sprintf("%s: %s (line %d)", d.Message, d.Details, d.Line)
}

// New builds a *Detail, stamped with its caller's source line, and wraps it
// with a stack trace via pkg/errors so callers further up can still log
// %+v while Host.LogError callers can errors.As it back to a Detail.
func New(message, details string) error {
	_, _, line, _ := runtime.Caller(1)
	return errors.WithStack(&Detail{Message: message, Details: details, Line: line})
}

// As extracts a *Detail from err, if any wrapped error is one.
func As(err error) (*Detail, bool) {
	var d *Detail
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}
