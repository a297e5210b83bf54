//go:build debug

package cloth

import "fmt"

// assert panics when an internal invariant is broken. It only exists in
// builds tagged debug; release.go compiles it away.
func assert(truth bool, msg ...interface{}) {
	if !truth {
		panic("cloth: invariant violated: " + fmt.Sprint(msg...))
	}
}
