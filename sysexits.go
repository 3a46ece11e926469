// Package sysexits provides the exit code constants defined by the BSD
// sysexits.h header as a typed, closed set, along with conversions from raw
// integers, operating system errors and process completion statuses.
//
// The legal values are 0 (successful termination) and 64 through 78; see
// sysexits(3) on BSD systems or https://man.openbsd.org/sysexits for the
// original definitions.  Nothing outside that set is representable as a
// [Code], so a value obtained through one of the constructors in this
// package is always safe to hand to the operating system as the process
// exit status.
package sysexits

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Code is a process exit code as defined by sysexits.h.  The zero value is
// OK.  Code values are plain integers, so fmt's integer verbs (%d, %o, %x,
// %b) render the underlying value in the respective base.
type Code int

const (
	OK          Code = 0  // successful termination
	Usage       Code = 64 // command line usage error
	DataErr     Code = 65 // data format error
	NoInput     Code = 66 // cannot open input
	NoUser      Code = 67 // addressee unknown
	NoHost      Code = 68 // host name unknown
	Unavailable Code = 69 // service unavailable
	Software    Code = 70 // internal software error
	OSErr       Code = 71 // system error (e.g., can't fork)
	OSFile      Code = 72 // critical OS file missing
	CantCreat   Code = 73 // can't create (user) output file
	IOErr       Code = 74 // input/output error
	TempFail    Code = 75 // temp failure; user is invited to retry
	Protocol    Code = 76 // remote error in protocol
	NoPerm      Code = 77 // permission denied
	Config      Code = 78 // configuration error
)

const (
	// Base is the lowest non-zero exit code.
	Base = Usage
	// Max is the highest exit code.
	Max = Config
)

var (
	_ error         = OK
	_ fmt.Stringer  = OK
	_ fmt.Formatter = OK
)

// IsSuccess reports whether the code represents successful termination.
func (c Code) IsSuccess() bool {
	return c == OK
}

// IsFailure reports whether the code represents unsuccessful termination.
func (c Code) IsFailure() bool {
	return !c.IsSuccess()
}

// String returns the decimal representation of the code, i.e. "0" for OK
// and "64" for Usage.
func (c Code) String() string {
	return strconv.Itoa(int(c))
}

// Format implements fmt.Formatter.  %v and %s render the decimal form, the
// same as String; the integer verbs (%d, %o, %x, %X, %b) and their flags
// apply to the underlying value.  Without this, fmt would print a Code
// through its Error method, as it does for any value that satisfies the
// error interface.
func (c Code) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		io.WriteString(f, c.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), int(c))
	}
}

// Error implements the error interface, so that a non-zero Code can be
// returned on the error channel of a fallible function and collapsed into
// the final exit code with [Collapse].  The text matches the rendering of
// [os/exec.ExitError].
func (c Code) Error() string {
	return "exit status " + strconv.Itoa(int(c))
}

// Exit terminates the current process with this code as the exit status.
// It does not return.  Deferred functions are not run, same as with
// [os.Exit].
func (c Code) Exit() {
	os.Exit(int(c))
}
