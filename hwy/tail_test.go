package hwy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTailMask(t *testing.T) {
	mask := TailMask[int32](3)

	if !mask.GetBit(0) || !mask.GetBit(1) || !mask.GetBit(2) {
		t.Error("TailMask: first 3 bits should be true")
	}
	for i := 3; i < mask.NumLanes(); i++ {
		if mask.GetBit(i) {
			t.Errorf("TailMask: bit %d should be false", i)
		}
	}

	if got := TailMask[uint64](-5).CountTrue(); got != 0 {
		t.Errorf("TailMask(-5): CountTrue = %d, want 0", got)
	}
	if got, want := TailMask[uint64](1000).CountTrue(), MaxLanes[uint64](); got != want {
		t.Errorf("TailMask(1000): CountTrue = %d, want %d", got, want)
	}
}

func TestProcessWithTail(t *testing.T) {
	lanes := MaxLanes[uint32]()
	for _, size := range []int{0, 1, lanes, lanes + 1, 10*lanes + 3} {
		data := make([]uint32, size)
		for i := range data {
			data[i] = uint32(i)
		}
		output := make([]uint32, size)
		fullVectors, tails := 0, 0

		ProcessWithTail[uint32](size,
			func(offset int) {
				fullVectors++
				v := Load(data[offset:])
				Store(Add(v, v), output[offset:])
			},
			func(offset, count int) {
				tails++
				mask := TailMask[uint32](count)
				v := MaskLoad(mask, data[offset:])
				MaskStore(mask, Add(v, v), output[offset:])
			},
		)

		if fullVectors != size/lanes {
			t.Errorf("size %d: %d full vectors, want %d", size, fullVectors, size/lanes)
		}
		wantTails := 0
		if size%lanes != 0 {
			wantTails = 1
		}
		if tails != wantTails {
			t.Errorf("size %d: %d tail calls, want %d", size, tails, wantTails)
		}

		want := make([]uint32, size)
		for i := range want {
			want[i] = uint32(2 * i)
		}
		if diff := cmp.Diff(want, output); diff != "" {
			t.Errorf("size %d (-want +got):\n%s", size, diff)
		}
	}
}
