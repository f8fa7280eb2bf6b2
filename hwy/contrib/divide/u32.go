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

// U32 divides uint32 numerators by a fixed divisor.
type U32 struct {
	magic uint32
	more  uint8
}

// NewU32 precomputes the descriptor for dividing by d.
// It panics with ErrDivideByZero if d is zero.
func NewU32(d uint32) U32 {
	if d == 0 {
		panic(ErrDivideByZero)
	}
	if d&(d-1) == 0 {
		return U32{more: uint8(wide.Ctz32(d)) | u32ShiftPath}
	}

	k := wide.FloorLog2U32(d)
	proposed, rem := wide.DivModU64By32(uint32(1)<<k, 0, d)
	invariant(rem > 0 && rem < d, "u32 remainder out of range")
	e := d - rem

	var more uint8
	if e < uint32(1)<<k {
		// 2^k is close enough to the next multiple of d.
		more = uint8(k)
	} else {
		// Use a 33-bit magic: double it and fix up with the add step.
		proposed += proposed
		twiceRem := rem + rem
		if twiceRem >= d || twiceRem < rem {
			proposed++
		}
		more = uint8(k) | addMarker
	}
	return U32{magic: proposed + 1, more: more}
}

// Magic returns the multiplier. It is zero on the shift path.
func (d U32) Magic() uint32 { return d.magic }

// More returns the packed shift and flag byte.
func (d U32) More() uint8 { return d.more }

// Shift returns the shift amount.
func (d U32) Shift() uint { return uint(d.more & shiftMask32) }

// IsShiftPath reports whether the divisor is a power of two.
func (d U32) IsShiftPath() bool { return d.more&u32ShiftPath != 0 }

// HasAddCorrection reports whether the multiply needs the add step.
func (d U32) HasAddCorrection() bool { return d.more&addMarker != 0 }

// Algorithm classifies the descriptor.
func (d U32) Algorithm() Algorithm {
	switch {
	case d.more&u32ShiftPath != 0:
		return AlgorithmShift
	case d.more&addMarker == 0:
		return AlgorithmMul
	default:
		return AlgorithmMulAdd
	}
}

func (d U32) String() string {
	return fmt.Sprintf("U32{magic: %#x, shift: %d, alg: %v}", d.magic, d.Shift(), d.Algorithm())
}

// Divide returns n / divisor.
func (d U32) Divide(n uint32) uint32 {
	more := d.more
	if more&u32ShiftPath != 0 {
		return n >> (more & shiftMask32)
	}
	q := wide.MulHiU32(d.magic, n)
	if more&addMarker != 0 {
		t := (n-q)>>1 + q
		return t >> (more & shiftMask32)
	}
	// No flag bits are set, so more is the shift.
	return q >> more
}

// DivideShift divides by a power-of-two descriptor.
func (d U32) DivideShift(n uint32) uint32 {
	return n >> (d.more & shiftMask32)
}

// DivideMul divides by a descriptor whose Algorithm is AlgorithmMul.
func (d U32) DivideMul(n uint32) uint32 {
	return wide.MulHiU32(d.magic, n) >> d.more
}

// DivideMulAdd divides by a descriptor whose Algorithm is AlgorithmMulAdd.
func (d U32) DivideMulAdd(n uint32) uint32 {
	q := wide.MulHiU32(d.magic, n)
	t := (n-q)>>1 + q
	return t >> (d.more & shiftMask32)
}

// Variant returns the specialized divide function for alg. The result is
// only correct for descriptors whose Algorithm is alg. It panics if the
// domain has no such algorithm.
func (d U32) Variant(alg Algorithm) func(uint32) uint32 {
	switch alg {
	case AlgorithmShift:
		return d.DivideShift
	case AlgorithmMul:
		return d.DivideMul
	case AlgorithmMulAdd:
		return d.DivideMulAdd
	default:
		panic(unknownAlgorithm("U32", alg))
	}
}

// Unswitched classifies d once and returns its specialized divide function.
func (d U32) Unswitched() func(uint32) uint32 {
	return d.Variant(d.Algorithm())
}
