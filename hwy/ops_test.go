package hwy

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	data := []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}
	v := Load(data)

	if v.NumLanes() != MaxLanes[uint32]() {
		t.Errorf("Load: got %d lanes, want %d", v.NumLanes(), MaxLanes[uint32]())
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}

	short := Load([]int64{7})
	if short.NumLanes() != 1 {
		t.Errorf("Load of 1 element: got %d lanes, want 1", short.NumLanes())
	}
}

func TestStore(t *testing.T) {
	v := Load([]int32{0, 1, 2, 3})
	dst := make([]int32, 2)
	Store(v, dst)
	if diff := cmp.Diff([]int32{0, 1}, dst); diff != "" {
		t.Errorf("Store into short dst (-want +got):\n%s", diff)
	}
}

func TestSet(t *testing.T) {
	v := Set[int64](-42)

	if v.NumLanes() == 0 {
		t.Error("Set created empty vector")
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != -42 {
			t.Errorf("Set: lane %d: got %v, want -42", i, v.data[i])
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32]()

	if v.NumLanes() == 0 {
		t.Error("Zero created empty vector")
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestGetLane(t *testing.T) {
	v := Load([]int32{0, 1, 2, 3})
	if got := GetLane(v, 1); got != 1 {
		t.Errorf("GetLane(1) = %d, want 1", got)
	}
	if got := GetLane(v, -1); got != 0 {
		t.Errorf("GetLane(-1) = %d, want 0", got)
	}
	if got := GetLane(v, v.NumLanes()); got != 0 {
		t.Errorf("GetLane(NumLanes) = %d, want 0", got)
	}
}

func TestArithmetic(t *testing.T) {
	a := Load([]uint32{10, 0, math.MaxUint32, 7})
	b := Load([]uint32{3, 1, 1, 7})

	tests := []struct {
		name string
		got  Vec[uint32]
		want []uint32
	}{
		{"Add", Add(a, b), []uint32{13, 1, 0, 14}},
		{"Sub", Sub(a, b), []uint32{7, math.MaxUint32, math.MaxUint32 - 1, 0}},
		{"Neg", Neg(b), []uint32{math.MaxUint32 - 2, math.MaxUint32, math.MaxUint32, math.MaxUint32 - 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Data()); diff != "" {
				t.Errorf("%s (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestNegWraps(t *testing.T) {
	v := Neg(Load([]int32{math.MinInt32, -1, 0, math.MaxInt32}))
	want := []int32{math.MinInt32, 1, 0, -math.MaxInt32}
	if diff := cmp.Diff(want, v.Data()); diff != "" {
		t.Errorf("Neg (-want +got):\n%s", diff)
	}
}

func TestBitwise(t *testing.T) {
	a := Load([]uint32{0b1100, 0xFFFF0000, 0, 1})
	b := Load([]uint32{0b1010, 0x00FFFF00, 5, 1})

	tests := []struct {
		name string
		got  Vec[uint32]
		want []uint32
	}{
		{"And", And(a, b), []uint32{0b1000, 0x00FF0000, 0, 1}},
		{"Xor", Xor(a, b), []uint32{0b0110, 0xFF00FF00, 5, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Data()); diff != "" {
				t.Errorf("%s (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestShiftRight(t *testing.T) {
	// Unsigned shift (logical)
	a := Load([]uint32{16, 8, 4, 0x80000000})
	result := ShiftRight(a, 2)

	expected := []uint32{4, 2, 1, 0x20000000}
	for i := 0; i < len(expected) && i < result.NumLanes(); i++ {
		if result.data[i] != expected[i] {
			t.Errorf("ShiftRight (unsigned): lane %d: got %d, want %d", i, result.data[i], expected[i])
		}
	}

	// Signed shift (arithmetic)
	b := Load([]int32{-16, -8, 8, math.MinInt32})
	result2 := ShiftRight(b, 2)

	expected2 := []int32{-4, -2, 2, math.MinInt32 / 4}
	for i := 0; i < len(expected2) && i < result2.NumLanes(); i++ {
		if result2.data[i] != expected2[i] {
			t.Errorf("ShiftRight (signed): lane %d: got %d, want %d", i, result2.data[i], expected2[i])
		}
	}

	// Shifting by the lane width minus one broadcasts the sign.
	signs := ShiftRight(Load([]int64{-5, 5}), 63)
	if diff := cmp.Diff([]int64{-1, 0}, signs.Data()); diff != "" {
		t.Errorf("ShiftRight sign broadcast (-want +got):\n%s", diff)
	}
}

func TestLessThan(t *testing.T) {
	a := Load([]int32{-1, 2, 3, 4})
	b := Load([]int32{0, 2, 1, 5})
	mask := LessThan(a, b)

	want := []bool{true, false, false, true}
	for i, w := range want {
		if mask.GetBit(i) != w {
			t.Errorf("LessThan: lane %d: got %v, want %v", i, mask.GetBit(i), w)
		}
	}
	if mask.CountTrue() != 2 {
		t.Errorf("LessThan: CountTrue = %d, want 2", mask.CountTrue())
	}

	// Unsigned lanes compare as unsigned.
	u := LessThan(Load([]uint32{math.MaxUint32, 0}), Load([]uint32{0, math.MaxUint32}))
	if u.GetBit(0) || !u.GetBit(1) {
		t.Errorf("LessThan unsigned: got [%v %v], want [false true]", u.GetBit(0), u.GetBit(1))
	}
}

func TestIfThenElse(t *testing.T) {
	a := Load([]uint64{1, 2})
	b := Load([]uint64{10, 20})
	mask := LessThan(a, Load([]uint64{2, 2}))

	result := IfThenElse(mask, a, b)
	if diff := cmp.Diff([]uint64{1, 20}, result.Data()); diff != "" {
		t.Errorf("IfThenElse (-want +got):\n%s", diff)
	}
}

func TestSelectBySign(t *testing.T) {
	// Adding one to negative lanes, as signed division rounds toward zero.
	q := Load([]int32{-3, -1, 0, 5})
	neg := LessThan(q, Zero[int32]())
	got := IfThenElse(neg, Add(q, Set[int32](1)), q)
	want := []int32{-2, 0, 0, 5}[:q.NumLanes()]
	if diff := cmp.Diff(want, got.Data()); diff != "" {
		t.Errorf("select by sign (-want +got):\n%s", diff)
	}
}

func TestMaskLoad(t *testing.T) {
	data := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	mask := TailMask[int32](3)
	v := MaskLoad(mask, data)

	for i := 0; i < v.NumLanes(); i++ {
		want := int32(0)
		if i < 3 {
			want = data[i]
		}
		if v.data[i] != want {
			t.Errorf("MaskLoad: lane %d: got %d, want %d", i, v.data[i], want)
		}
	}
}

func TestMaskStore(t *testing.T) {
	dst := []int32{-1, -1, -1, -1}
	mask := TailMask[int32](2)
	MaskStore(mask, Set[int32](9), dst)

	if diff := cmp.Diff([]int32{9, 9, -1, -1}, dst); diff != "" {
		t.Errorf("MaskStore (-want +got):\n%s", diff)
	}
}

func TestMaskAllAnyTrue(t *testing.T) {
	all := TailMask[uint32](MaxLanes[uint32]())
	if !all.AllTrue() || !all.AnyTrue() {
		t.Error("full TailMask: AllTrue and AnyTrue should be true")
	}
	none := TailMask[uint32](0)
	if none.AllTrue() || none.AnyTrue() {
		t.Error("empty TailMask: AllTrue and AnyTrue should be false")
	}
}
