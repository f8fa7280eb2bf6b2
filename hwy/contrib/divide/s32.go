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
	"fmt"

	"github.com/ajroetker/go-fastdiv/hwy/contrib/divide/internal/wide"
)

// S32 divides int32 numerators by a fixed divisor, truncating toward zero.
type S32 struct {
	magic int32
	more  uint8
}

// NewS32 precomputes the descriptor for dividing by d.
// It panics with ErrDivideByZero if d is zero.
func NewS32(d int32) S32 {
	if d == 0 {
		panic(ErrDivideByZero)
	}
	// Unsigned negation so that MinInt32 maps to 2^31.
	absD := uint32(d)
	var neg uint8
	if d < 0 {
		absD = -absD
		neg = negativeDivisor
	}
	if absD&(absD-1) == 0 {
		return S32{more: uint8(wide.Ctz32(absD)) | neg | s32ShiftPath}
	}

	k := wide.FloorLog2U32(absD)
	invariant(k >= 1, "s32 divisor must have log2 >= 1")
	proposed, rem := wide.DivModU64By32(uint32(1)<<(k-1), 0, absD)
	e := absD - rem

	var more uint8
	if e < uint32(1)<<k {
		// The negative bit stays clear here; the sign goes into magic.
		more = uint8(k - 1)
	} else {
		proposed += proposed
		twiceRem := rem + rem
		if twiceRem >= absD || twiceRem < rem {
			proposed++
		}
		more = uint8(k) | addMarker | neg
	}
	proposed++

	magic := int32(proposed)
	if d < 0 {
		magic = -magic
	}
	return S32{magic: magic, more: more}
}

// Magic returns the multiplier. It is zero on the shift path.
func (d S32) Magic() int32 { return d.magic }

// More returns the packed shift and flag byte.
func (d S32) More() uint8 { return d.more }

// Shift returns the shift amount.
func (d S32) Shift() uint { return uint(d.more & shiftMask32) }

// IsShiftPath reports whether |divisor| is a power of two.
func (d S32) IsShiftPath() bool { return d.more&s32ShiftPath != 0 }

// HasAddCorrection reports whether the multiply needs the add step.
func (d S32) HasAddCorrection() bool { return d.more&addMarker != 0 }

// IsNegativeDivisor reports whether the negative-divisor flag is set.
// The flag is only set on the shift and add paths; on the plain multiply
// path the sign is carried by the magic number.
func (d S32) IsNegativeDivisor() bool { return d.more&negativeDivisor != 0 }

// Algorithm classifies the descriptor.
func (d S32) Algorithm() Algorithm {
	neg := d.more&negativeDivisor != 0
	switch {
	case d.more&s32ShiftPath != 0:
		if neg {
			return AlgorithmShiftNeg
		}
		return AlgorithmShift
	case d.more&addMarker != 0:
		if neg {
			return AlgorithmMulSub
		}
		return AlgorithmMulAdd
	default:
		return AlgorithmMul
	}
}

func (d S32) String() string {
	return fmt.Sprintf("S32{magic: %#x, shift: %d, alg: %v}", uint32(d.magic), d.Shift(), d.Algorithm())
}

// Divide returns n / divisor, truncated toward zero.
func (d S32) Divide(n int32) int32 {
	more := d.more
	if more&s32ShiftPath != 0 {
		q := shiftS32(n, more&shiftMask32)
		sign := int32(signMask(more))
		return (q ^ sign) - sign
	}
	q := wide.MulHiS32(d.magic, n)
	if more&addMarker != 0 {
		sign := int32(signMask(more))
		q += (n ^ sign) - sign
	}
	q >>= more & shiftMask32
	q -= q >> 31
	return q
}

// shiftS32 divides n by 2^shift rounding toward zero: negative numerators
// get 2^shift - 1 added before the arithmetic shift.
func shiftS32(n int32, shift uint8) int32 {
	mask := int32(uint32(1)<<shift - 1)
	q := n + (n>>31)&mask
	return q >> shift
}

// DivideShift divides by a positive power-of-two descriptor.
func (d S32) DivideShift(n int32) int32 {
	return shiftS32(n, d.more&shiftMask32)
}

// DivideShiftNeg divides by a negative power-of-two descriptor.
func (d S32) DivideShiftNeg(n int32) int32 {
	return -shiftS32(n, d.more&shiftMask32)
}

// DivideMul divides by a descriptor whose Algorithm is AlgorithmMul.
func (d S32) DivideMul(n int32) int32 {
	q := wide.MulHiS32(d.magic, n)
	q >>= d.more & shiftMask32
	return q - q>>31
}

// DivideMulAdd divides by a descriptor whose Algorithm is AlgorithmMulAdd.
func (d S32) DivideMulAdd(n int32) int32 {
	q := wide.MulHiS32(d.magic, n) + n
	q >>= d.more & shiftMask32
	return q - q>>31
}

// DivideMulSub divides by a descriptor whose Algorithm is AlgorithmMulSub.
func (d S32) DivideMulSub(n int32) int32 {
	q := wide.MulHiS32(d.magic, n) - n
	q >>= d.more & shiftMask32
	return q - q>>31
}

// Variant returns the specialized divide function for alg. The result is
// only correct for descriptors whose Algorithm is alg.
func (d S32) Variant(alg Algorithm) func(int32) int32 {
	switch alg {
	case AlgorithmShift:
		return d.DivideShift
	case AlgorithmShiftNeg:
		return d.DivideShiftNeg
	case AlgorithmMul:
		return d.DivideMul
	case AlgorithmMulAdd:
		return d.DivideMulAdd
	case AlgorithmMulSub:
		return d.DivideMulSub
	default:
		panic(unknownAlgorithm("S32", alg))
	}
}

// Unswitched classifies d once and returns its specialized divide function.
func (d S32) Unswitched() func(int32) int32 {
	return d.Variant(d.Algorithm())
}
