package sysexits

import (
	"os"
	"os/exec"
)

// FromProcessState returns the Code matching the completion status of a
// finished process.  It returns a [StatusError] if the process exited with
// a code outside the sysexits set, or if it produced no numeric exit code
// at all (a nil state, or a process that was killed by a signal).  The two
// cases are distinguishable through [StatusError.ExitCode]: the latter
// usually means abnormal termination and may warrant different handling.
func FromProcessState(state *os.ProcessState) (Code, error) {
	if state == nil || !state.Exited() {
		return OK, &StatusError{Code: -1}
	}
	status := state.ExitCode()
	code, err := FromInt(status)
	if err != nil {
		return OK, &StatusError{Code: status, Exited: true}
	}
	return code, nil
}

// FromExitError returns the Code matching the exit status carried by an
// [exec.ExitError], as returned by [exec.Cmd.Run] and friends for commands
// that finish unsuccessfully.
func FromExitError(err *exec.ExitError) (Code, error) {
	if err == nil {
		return OK, &StatusError{Code: -1}
	}
	return FromProcessState(err.ProcessState)
}
