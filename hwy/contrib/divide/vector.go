// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package divide

import (
	"unsafe"

	"github.com/ajroetker/go-fastdiv/hwy"
)

// Lane-wise versions of the scalar algorithms. Every lane of the result
// equals the scalar Divide of the matching input lane.

func laneBits[T hwy.Integers]() int {
	var zero T
	return 8 * int(unsafe.Sizeof(zero))
}

// averageStep computes ((n - q) >> 1) + q per lane without overflow.
func averageStep[T hwy.UnsignedInts](n, q hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Add(hwy.ShiftRight(hwy.Sub(n, q), 1), q)
}

// shiftTowardZero divides each lane by 2^shift, rounding toward zero.
func shiftTowardZero[T hwy.SignedInts](n hwy.Vec[T], shift uint8) hwy.Vec[T] {
	bias := hwy.Set(T(1)<<shift - 1)
	signs := hwy.ShiftRight(n, laneBits[T]()-1)
	return hwy.ShiftRight(hwy.Add(n, hwy.And(signs, bias)), int(shift))
}

// negateBy negates lanes when sign is all ones and keeps them when zero.
func negateBy[T hwy.SignedInts](v hwy.Vec[T], sign T) hwy.Vec[T] {
	s := hwy.Set(sign)
	return hwy.Sub(hwy.Xor(v, s), s)
}

// shiftAndRound shifts q right and adds one to negative lanes.
func shiftAndRound[T hwy.SignedInts](q hwy.Vec[T], shift uint8) hwy.Vec[T] {
	q = hwy.ShiftRight(q, int(shift))
	negative := hwy.LessThan(q, hwy.Zero[T]())
	return hwy.IfThenElse(negative, hwy.Add(q, hwy.Set(T(1))), q)
}

// U32

// DivideVec divides every lane of n.
func (d U32) DivideVec(n hwy.Vec[uint32]) hwy.Vec[uint32] {
	more := d.more
	if more&u32ShiftPath != 0 {
		return hwy.ShiftRight(n, int(more&shiftMask32))
	}
	q := hwy.MulHigh(n, hwy.Set(d.magic))
	if more&addMarker != 0 {
		return hwy.ShiftRight(averageStep(n, q), int(more&shiftMask32))
	}
	return hwy.ShiftRight(q, int(more))
}

func (d U32) DivideVecShift(n hwy.Vec[uint32]) hwy.Vec[uint32] {
	return hwy.ShiftRight(n, int(d.more&shiftMask32))
}

func (d U32) DivideVecMul(n hwy.Vec[uint32]) hwy.Vec[uint32] {
	return hwy.ShiftRight(hwy.MulHigh(n, hwy.Set(d.magic)), int(d.more))
}

func (d U32) DivideVecMulAdd(n hwy.Vec[uint32]) hwy.Vec[uint32] {
	q := hwy.MulHigh(n, hwy.Set(d.magic))
	return hwy.ShiftRight(averageStep(n, q), int(d.more&shiftMask32))
}

// VecVariant is the vector counterpart of Variant.
func (d U32) VecVariant(alg Algorithm) func(hwy.Vec[uint32]) hwy.Vec[uint32] {
	switch alg {
	case AlgorithmShift:
		return d.DivideVecShift
	case AlgorithmMul:
		return d.DivideVecMul
	case AlgorithmMulAdd:
		return d.DivideVecMulAdd
	default:
		panic(unknownAlgorithm("U32", alg))
	}
}

// U64

// DivideVec divides every lane of n.
func (d U64) DivideVec(n hwy.Vec[uint64]) hwy.Vec[uint64] {
	more := d.more
	if more&u64ShiftPath != 0 {
		return hwy.ShiftRight(n, int(more&shiftMask64))
	}
	q := hwy.MulHigh(n, hwy.Set(d.magic))
	if more&addMarker != 0 {
		return hwy.ShiftRight(averageStep(n, q), int(more&shiftMask64))
	}
	return hwy.ShiftRight(q, int(more))
}

func (d U64) DivideVecShift(n hwy.Vec[uint64]) hwy.Vec[uint64] {
	return hwy.ShiftRight(n, int(d.more&shiftMask64))
}

func (d U64) DivideVecMul(n hwy.Vec[uint64]) hwy.Vec[uint64] {
	return hwy.ShiftRight(hwy.MulHigh(n, hwy.Set(d.magic)), int(d.more))
}

func (d U64) DivideVecMulAdd(n hwy.Vec[uint64]) hwy.Vec[uint64] {
	q := hwy.MulHigh(n, hwy.Set(d.magic))
	return hwy.ShiftRight(averageStep(n, q), int(d.more&shiftMask64))
}

// VecVariant is the vector counterpart of Variant.
func (d U64) VecVariant(alg Algorithm) func(hwy.Vec[uint64]) hwy.Vec[uint64] {
	switch alg {
	case AlgorithmShift:
		return d.DivideVecShift
	case AlgorithmMul:
		return d.DivideVecMul
	case AlgorithmMulAdd:
		return d.DivideVecMulAdd
	default:
		panic(unknownAlgorithm("U64", alg))
	}
}

// S32

// DivideVec divides every lane of n, truncating toward zero.
func (d S32) DivideVec(n hwy.Vec[int32]) hwy.Vec[int32] {
	more := d.more
	if more&s32ShiftPath != 0 {
		return negateBy(shiftTowardZero(n, more&shiftMask32), int32(signMask(more)))
	}
	q := hwy.MulHigh(n, hwy.Set(d.magic))
	if more&addMarker != 0 {
		q = hwy.Add(q, negateBy(n, int32(signMask(more))))
	}
	return shiftAndRound(q, more&shiftMask32)
}

func (d S32) DivideVecShift(n hwy.Vec[int32]) hwy.Vec[int32] {
	return shiftTowardZero(n, d.more&shiftMask32)
}

func (d S32) DivideVecShiftNeg(n hwy.Vec[int32]) hwy.Vec[int32] {
	return hwy.Neg(shiftTowardZero(n, d.more&shiftMask32))
}

func (d S32) DivideVecMul(n hwy.Vec[int32]) hwy.Vec[int32] {
	return shiftAndRound(hwy.MulHigh(n, hwy.Set(d.magic)), d.more&shiftMask32)
}

func (d S32) DivideVecMulAdd(n hwy.Vec[int32]) hwy.Vec[int32] {
	q := hwy.Add(hwy.MulHigh(n, hwy.Set(d.magic)), n)
	return shiftAndRound(q, d.more&shiftMask32)
}

func (d S32) DivideVecMulSub(n hwy.Vec[int32]) hwy.Vec[int32] {
	q := hwy.Sub(hwy.MulHigh(n, hwy.Set(d.magic)), n)
	return shiftAndRound(q, d.more&shiftMask32)
}

// VecVariant is the vector counterpart of Variant.
func (d S32) VecVariant(alg Algorithm) func(hwy.Vec[int32]) hwy.Vec[int32] {
	switch alg {
	case AlgorithmShift:
		return d.DivideVecShift
	case AlgorithmShiftNeg:
		return d.DivideVecShiftNeg
	case AlgorithmMul:
		return d.DivideVecMul
	case AlgorithmMulAdd:
		return d.DivideVecMulAdd
	case AlgorithmMulSub:
		return d.DivideVecMulSub
	default:
		panic(unknownAlgorithm("S32", alg))
	}
}

// S64

// DivideVec divides every lane of n, truncating toward zero.
func (d S64) DivideVec(n hwy.Vec[int64]) hwy.Vec[int64] {
	more := d.more
	if d.magic == 0 {
		return negateBy(shiftTowardZero(n, more&shiftMask64), int64(signMask(more)))
	}
	q := hwy.MulHigh(n, hwy.Set(d.magic))
	if more&addMarker != 0 {
		q = hwy.Add(q, negateBy(n, int64(signMask(more))))
	}
	return shiftAndRound(q, more&shiftMask64)
}

func (d S64) DivideVecShift(n hwy.Vec[int64]) hwy.Vec[int64] {
	return shiftTowardZero(n, d.more&shiftMask64)
}

func (d S64) DivideVecShiftNeg(n hwy.Vec[int64]) hwy.Vec[int64] {
	return hwy.Neg(shiftTowardZero(n, d.more&shiftMask64))
}

func (d S64) DivideVecMul(n hwy.Vec[int64]) hwy.Vec[int64] {
	return shiftAndRound(hwy.MulHigh(n, hwy.Set(d.magic)), d.more&shiftMask64)
}

func (d S64) DivideVecMulAdd(n hwy.Vec[int64]) hwy.Vec[int64] {
	q := hwy.Add(hwy.MulHigh(n, hwy.Set(d.magic)), n)
	return shiftAndRound(q, d.more&shiftMask64)
}

func (d S64) DivideVecMulSub(n hwy.Vec[int64]) hwy.Vec[int64] {
	q := hwy.Sub(hwy.MulHigh(n, hwy.Set(d.magic)), n)
	return shiftAndRound(q, d.more&shiftMask64)
}

// VecVariant is the vector counterpart of Variant.
func (d S64) VecVariant(alg Algorithm) func(hwy.Vec[int64]) hwy.Vec[int64] {
	switch alg {
	case AlgorithmShift:
		return d.DivideVecShift
	case AlgorithmShiftNeg:
		return d.DivideVecShiftNeg
	case AlgorithmMul:
		return d.DivideVecMul
	case AlgorithmMulAdd:
		return d.DivideVecMulAdd
	case AlgorithmMulSub:
		return d.DivideVecMulSub
	default:
		panic(unknownAlgorithm("S64", alg))
	}
}
