package logger

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned by the logging methods when Init has not
// completed successfully. It signals a recoverable ordering mistake; the
// caller can initialize and retry. It never terminates the process.
var ErrNotInitialized = errors.New("logger is not initialized")

// Op names the operation an InitError originated from.
type Op string

// InitError reports a failure to build the logger from its configuration,
// such as an invalid config or an unusable log directory. It wraps the
// underlying cause for errors.Is/As.
type InitError struct {
	Op  Op
	Msg string
	Err error
}

func (e *InitError) Error() string {
	switch {
	case e.Err != nil && e.Msg != emptyString:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	}
}

func (e *InitError) Unwrap() error { return e.Err }

func newInitError(op Op, msg string, err error) *InitError {
	return &InitError{Op: op, Msg: msg, Err: err}
}
