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

// U64 divides uint64 numerators by a fixed divisor.
type U64 struct {
	magic uint64
	more  uint8
}

// NewU64 precomputes the descriptor for dividing by d.
// It panics with ErrDivideByZero if d is zero.
func NewU64(d uint64) U64 {
	if d == 0 {
		panic(ErrDivideByZero)
	}
	if d&(d-1) == 0 {
		return U64{more: uint8(wide.Ctz64(d)) | u64ShiftPath}
	}

	k := wide.FloorLog2U64(d)
	proposed, rem := wide.DivModU128By64(uint64(1)<<k, 0, d)
	invariant(rem > 0 && rem < d, "u64 remainder out of range")
	e := d - rem

	var more uint8
	if e < uint64(1)<<k {
		more = uint8(k)
	} else {
		proposed += proposed
		twiceRem := rem + rem
		if twiceRem >= d || twiceRem < rem {
			proposed++
		}
		more = uint8(k) | addMarker
	}
	return U64{magic: proposed + 1, more: more}
}

// Magic returns the multiplier. It is zero on the shift path.
func (d U64) Magic() uint64 { return d.magic }

// More returns the packed shift and flag byte.
func (d U64) More() uint8 { return d.more }

// Shift returns the shift amount.
func (d U64) Shift() uint { return uint(d.more & shiftMask64) }

// IsShiftPath reports whether the divisor is a power of two.
func (d U64) IsShiftPath() bool { return d.more&u64ShiftPath != 0 }

// HasAddCorrection reports whether the multiply needs the add step.
func (d U64) HasAddCorrection() bool { return d.more&addMarker != 0 }

// Algorithm classifies the descriptor.
func (d U64) Algorithm() Algorithm {
	switch {
	case d.more&u64ShiftPath != 0:
		return AlgorithmShift
	case d.more&addMarker == 0:
		return AlgorithmMul
	default:
		return AlgorithmMulAdd
	}
}

func (d U64) String() string {
	return fmt.Sprintf("U64{magic: %#x, shift: %d, alg: %v}", d.magic, d.Shift(), d.Algorithm())
}

// Divide returns n / divisor.
func (d U64) Divide(n uint64) uint64 {
	more := d.more
	if more&u64ShiftPath != 0 {
		return n >> (more & shiftMask64)
	}
	q := wide.MulHiU64(d.magic, n)
	if more&addMarker != 0 {
		t := (n-q)>>1 + q
		return t >> (more & shiftMask64)
	}
	return q >> more
}

// DivideShift divides by a power-of-two descriptor.
func (d U64) DivideShift(n uint64) uint64 {
	return n >> (d.more & shiftMask64)
}

// DivideMul divides by a descriptor whose Algorithm is AlgorithmMul.
func (d U64) DivideMul(n uint64) uint64 {
	return wide.MulHiU64(d.magic, n) >> d.more
}

// DivideMulAdd divides by a descriptor whose Algorithm is AlgorithmMulAdd.
func (d U64) DivideMulAdd(n uint64) uint64 {
	q := wide.MulHiU64(d.magic, n)
	t := (n-q)>>1 + q
	return t >> (d.more & shiftMask64)
}

// Variant returns the specialized divide function for alg. The result is
// only correct for descriptors whose Algorithm is alg.
func (d U64) Variant(alg Algorithm) func(uint64) uint64 {
	switch alg {
	case AlgorithmShift:
		return d.DivideShift
	case AlgorithmMul:
		return d.DivideMul
	case AlgorithmMulAdd:
		return d.DivideMulAdd
	default:
		panic(unknownAlgorithm("U64", alg))
	}
}

// Unswitched classifies d once and returns its specialized divide function.
func (d U64) Unswitched() func(uint64) uint64 {
	return d.Variant(d.Algorithm())
}
