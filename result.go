package sysexits

// Collapse converts the error channel of a fallible call into the final
// exit code.  A nil error collapses to [OK]; an error that is or wraps a
// Code passes through unchanged; anything else goes through [FromError].
// Collapse is total and is meant to be called once, at the very end of the
// program:
//
//	func main() {
//		sysexits.Collapse(run()).Exit()
//	}
func Collapse(err error) Code {
	if err == nil {
		return OK
	}
	return FromError(err)
}
