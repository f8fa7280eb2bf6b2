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

// S64 divides int64 numerators by a fixed divisor, truncating toward zero.
// A zero magic marks the shift path.
type S64 struct {
	magic int64
	more  uint8
}

// NewS64 precomputes the descriptor for dividing by d.
// It panics with ErrDivideByZero if d is zero.
func NewS64(d int64) S64 {
	if d == 0 {
		panic(ErrDivideByZero)
	}
	absD := uint64(d)
	var neg uint8
	if d < 0 {
		absD = -absD
		neg = negativeDivisor
	}
	if absD&(absD-1) == 0 {
		return S64{more: uint8(wide.Ctz64(absD)) | neg}
	}

	k := wide.FloorLog2U64(absD)
	invariant(k >= 1, "s64 divisor must have log2 >= 1")
	proposed, rem := wide.DivModU128By64(uint64(1)<<(k-1), 0, absD)
	e := absD - rem

	var more uint8
	if e < uint64(1)<<k {
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

	magic := int64(proposed)
	if d < 0 {
		magic = -magic
	}
	invariant(magic != 0, "s64 magic must be nonzero off the shift path")
	return S64{magic: magic, more: more}
}

// Magic returns the multiplier. It is zero on the shift path.
func (d S64) Magic() int64 { return d.magic }

// More returns the packed shift and flag byte.
func (d S64) More() uint8 { return d.more }

// Shift returns the shift amount.
func (d S64) Shift() uint { return uint(d.more & shiftMask64) }

// IsShiftPath reports whether |divisor| is a power of two.
func (d S64) IsShiftPath() bool { return d.magic == 0 }

// HasAddCorrection reports whether the multiply needs the add step.
func (d S64) HasAddCorrection() bool { return d.more&addMarker != 0 }

// IsNegativeDivisor reports whether the negative-divisor flag is set.
func (d S64) IsNegativeDivisor() bool { return d.more&negativeDivisor != 0 }

// Algorithm classifies the descriptor.
func (d S64) Algorithm() Algorithm {
	neg := d.more&negativeDivisor != 0
	switch {
	case d.magic == 0:
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

func (d S64) String() string {
	return fmt.Sprintf("S64{magic: %#x, shift: %d, alg: %v}", uint64(d.magic), d.Shift(), d.Algorithm())
}

// Divide returns n / divisor, truncated toward zero.
func (d S64) Divide(n int64) int64 {
	more := d.more
	if d.magic == 0 {
		q := shiftS64(n, more&shiftMask64)
		sign := int64(signMask(more))
		return (q ^ sign) - sign
	}
	q := wide.MulHiS64(d.magic, n)
	if more&addMarker != 0 {
		sign := int64(signMask(more))
		q += (n ^ sign) - sign
	}
	q >>= more & shiftMask64
	q -= q >> 63
	return q
}

func shiftS64(n int64, shift uint8) int64 {
	mask := int64(uint64(1)<<shift - 1)
	q := n + (n>>63)&mask
	return q >> shift
}

// DivideShift divides by a positive power-of-two descriptor.
func (d S64) DivideShift(n int64) int64 {
	return shiftS64(n, d.more&shiftMask64)
}

// DivideShiftNeg divides by a negative power-of-two descriptor.
func (d S64) DivideShiftNeg(n int64) int64 {
	return -shiftS64(n, d.more&shiftMask64)
}

// DivideMul divides by a descriptor whose Algorithm is AlgorithmMul.
func (d S64) DivideMul(n int64) int64 {
	q := wide.MulHiS64(d.magic, n)
	q >>= d.more & shiftMask64
	return q - q>>63
}

// DivideMulAdd divides by a descriptor whose Algorithm is AlgorithmMulAdd.
func (d S64) DivideMulAdd(n int64) int64 {
	q := wide.MulHiS64(d.magic, n) + n
	q >>= d.more & shiftMask64
	return q - q>>63
}

// DivideMulSub divides by a descriptor whose Algorithm is AlgorithmMulSub.
func (d S64) DivideMulSub(n int64) int64 {
	q := wide.MulHiS64(d.magic, n) - n
	q >>= d.more & shiftMask64
	return q - q>>63
}

// Variant returns the specialized divide function for alg. The result is
// only correct for descriptors whose Algorithm is alg.
func (d S64) Variant(alg Algorithm) func(int64) int64 {
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
		panic(unknownAlgorithm("S64", alg))
	}
}

// Unswitched classifies d once and returns its specialized divide function.
func (d S64) Unswitched() func(int64) int64 {
	return d.Variant(d.Algorithm())
}
