package sysexits

import (
	"errors"
	"strconv"
)

// ErrOutOfRange is returned by [FromInt] when the integer is not 0 and not
// in the range 64..78.
var ErrOutOfRange = errors.New("value is out of range")

// StatusError is the error returned when a process completion status cannot
// be represented as a Code.
type StatusError struct {
	// Code is the exit code reported by the process, or -1 if the process
	// did not exit with a numeric code (e.g. it was killed by a signal),
	// following the convention of [os.ProcessState.ExitCode].
	Code int
	// Exited indicates whether the process terminated normally.  If it is
	// false, Code carries no information.
	Exited bool
}

func (se *StatusError) Error() string {
	if !se.Exited {
		return "exit code is unknown"
	}
	return "invalid exit code " + strconv.Itoa(se.Code)
}

// ExitCode returns the exit code reported by the process.  ok is false if
// the process terminated without a numeric code.
func (se *StatusError) ExitCode() (code int, ok bool) {
	if !se.Exited {
		return -1, false
	}
	return se.Code, true
}
