package sysexits

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"syscall"

	"golang.org/x/exp/constraints"
)

// Int converts the code to any integer type.  It never fails: the result is
// always 0 or in 64..78, which fits every integer type including int8.
func Int[T constraints.Integer](c Code) T {
	return T(c)
}

// FromInt returns the Code matching the given integer, which may be of any
// integer type and signedness.  It returns [ErrOutOfRange] if the value is
// not 0 and not in 64..78.  The legal set is not contiguous, so the lookup
// is an explicit match rather than a range check.
func FromInt[T constraints.Integer](code T) (Code, error) {
	switch code {
	case 0:
		return OK, nil
	case 64:
		return Usage, nil
	case 65:
		return DataErr, nil
	case 66:
		return NoInput, nil
	case 67:
		return NoUser, nil
	case 68:
		return NoHost, nil
	case 69:
		return Unavailable, nil
	case 70:
		return Software, nil
	case 71:
		return OSErr, nil
	case 72:
		return OSFile, nil
	case 73:
		return CantCreat, nil
	case 74:
		return IOErr, nil
	case 75:
		return TempFail, nil
	case 76:
		return Protocol, nil
	case 77:
		return NoPerm, nil
	case 78:
		return Config, nil
	default:
		return OK, ErrOutOfRange
	}
}

// FromErrno returns the Code that best approximates the given system error
// number.  The mapping is many-to-one and lossy: the errno taxonomy is
// open-ended while the exit code set is closed, so every errno not listed
// in the table maps to [IOErr].  The table is fixed; do not infer mappings
// from errno semantics.
func FromErrno(errno syscall.Errno) Code {
	switch errno {
	case syscall.ENOENT:
		return NoInput
	case syscall.EACCES, syscall.EPERM:
		return NoPerm
	case syscall.ECONNREFUSED, syscall.EHOSTUNREACH, syscall.ENETUNREACH, syscall.ENOMEM:
		return OSErr
	case syscall.ECONNRESET, syscall.ECONNABORTED, syscall.ENOTCONN, syscall.EPIPE, syscall.ETIMEDOUT, syscall.EINTR:
		return TempFail
	case syscall.EADDRINUSE, syscall.EADDRNOTAVAIL, syscall.ENETDOWN:
		return Unavailable
	case syscall.EEXIST, syscall.EROFS:
		return CantCreat
	case syscall.EAGAIN, syscall.ENOTSUP:
		// EWOULDBLOCK and EOPNOTSUPP alias EAGAIN and ENOTSUP on Linux.
		return Protocol
	case syscall.EINVAL:
		return DataErr
	default:
		return IOErr
	}
}

// FromError returns the Code that best describes the given error.  It is
// total: every error maps to some code, with [IOErr] as the fallback.
//
// An error that is or wraps a Code is returned unchanged: it already
// carries its own classification.  An error that wraps a [syscall.Errno]
// (such as [os.PathError], [os.SyscallError] or [net.OpError]) is
// classified through [FromErrno].  Otherwise the error is matched against
// the standard library sentinels using the same category table.  The
// error's message and context are discarded; only its category matters.
func FromError(err error) Code {
	if err == nil {
		return OK
	}
	var code Code
	if errors.As(err, &code) {
		return code
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return FromErrno(errno)
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NoInput
	case errors.Is(err, fs.ErrPermission):
		return NoPerm
	case errors.Is(err, fs.ErrExist):
		return CantCreat
	case errors.Is(err, fs.ErrInvalid):
		return DataErr
	case errors.Is(err, errors.ErrUnsupported):
		return Protocol
	case errors.Is(err, os.ErrDeadlineExceeded),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return TempFail
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.ErrShortWrite):
		return Software
	default:
		return IOErr
	}
}
