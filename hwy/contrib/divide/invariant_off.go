//go:build !fastdiv_debug

package divide

// invariant is compiled out unless built with -tags fastdiv_debug.
func invariant(bool, string) {}
