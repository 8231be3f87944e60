package cpu

import "fmt"

// debugAssert panics when cond is false in builds tagged kernelsdebug.
// It guards internal invariants only; user-facing failures are returned as
// errors and never pass through here.
func debugAssert(cond bool, format string, args ...any) {
	if debugAssertions && !cond {
		panic("BUG: " + fmt.Sprintf(format, args...))
	}
}
