package hwy

import "testing"

func TestDispatch(t *testing.T) {
	level := CurrentLevel()
	width := CurrentWidth()
	name := CurrentName()

	t.Logf("Dispatch level: %v (%s), width: %d bytes", level, name, width)

	if width <= 0 {
		t.Error("CurrentWidth should be positive")
	}
	if name != level.String() {
		t.Errorf("CurrentName = %q, want %q", name, level.String())
	}
	if NoSimdEnv() && level != DispatchScalar {
		t.Errorf("HWY_NO_SIMD is set but level is %v", level)
	}
}

func TestMaxLanes(t *testing.T) {
	maxU32 := MaxLanes[uint32]()
	maxI64 := MaxLanes[int64]()

	t.Logf("MaxLanes: uint32=%d, int64=%d", maxU32, maxI64)

	if maxU32 < 4 {
		t.Errorf("MaxLanes[uint32] = %d, want at least 4", maxU32)
	}
	// 64-bit lanes use twice as much space, so there are half as many.
	if maxI64*2 != maxU32 {
		t.Errorf("MaxLanes: int64 lanes (%d) should be half of uint32 lanes (%d)", maxI64, maxU32)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("HWY_NO_SIMD", tt.value)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestDispatchLevelString(t *testing.T) {
	tests := map[DispatchLevel]string{
		DispatchScalar:    "scalar",
		DispatchSSE2:      "sse2",
		DispatchAVX2:      "avx2",
		DispatchAVX512:    "avx512",
		DispatchNEON:      "neon",
		DispatchLevel(99): "unknown",
	}
	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", int(level), got, want)
		}
	}
}

func TestSetScalarMode(t *testing.T) {
	level, width := CurrentLevel(), CurrentWidth()
	t.Cleanup(func() { setLevel(level, width) })

	setScalarMode()
	if CurrentLevel() != DispatchScalar || CurrentWidth() != scalarWidth {
		t.Errorf("setScalarMode: got %v/%d, want scalar/%d", CurrentLevel(), CurrentWidth(), scalarWidth)
	}
	if MaxLanes[uint64]() != scalarWidth/8 {
		t.Errorf("MaxLanes[uint64] in scalar mode = %d, want %d", MaxLanes[uint64](), scalarWidth/8)
	}
}
