package debug

import "fmt"

// AssertionError is the panic value raised by a failed Assert.
type AssertionError struct {
	Msg string
}

func (e *AssertionError) Error() string {
	return "hybridvec: assertion failed: " + e.Msg
}

// Assert panics with an *AssertionError when cond is false and debug
// assertions are enabled.
func Assert(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(&AssertionError{Msg: fmt.Sprintf(format, args...)})
	}
}
