//go:build !fastdiv_debug

package divide

import "testing"

func TestInvariantCompiledOut(t *testing.T) {
	// Without the debug tag a false condition is ignored.
	invariant(false, "ignored")
	if got := NewU32(7).Divide(100); got != 14 {
		t.Errorf("NewU32(7).Divide(100) = %d, want 14", got)
	}
}
