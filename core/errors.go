package core

import (
	"errors"
	"fmt"
)

// Process exit statuses, one per startup failure class.
const (
	ExitWindowCreateFailed = 1
	ExitNoMonitors         = 2
	ExitInvalidMonitor     = 3
	ExitLoaderFailed       = 4
)

// StartupError couples a startup failure with the exit status
// documented for its class.
type StartupError struct {
	Code int
	Err  error
}

func (e *StartupError) Error() string {
	return e.Err.Error()
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

func startupErrorf(code int, format string, args ...interface{}) *StartupError {
	return &StartupError{Code: code, Err: fmt.Errorf(format, args...)}
}

// ExitCode returns the documented exit status for err, falling back
// to 1 for failures outside the documented classes.
func ExitCode(err error) int {
	var se *StartupError
	if errors.As(err, &se) {
		return se.Code
	}
	return 1
}
