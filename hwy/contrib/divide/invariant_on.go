//go:build fastdiv_debug

package divide

func invariant(cond bool, msg string) {
	if !cond {
		panic("divide: assertion failed: " + msg)
	}
}
