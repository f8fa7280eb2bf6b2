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

// Package wide provides the double-width arithmetic the divide kernels are
// built on: the high half of a widening multiply, long division of a
// double-width dividend by a single-width divisor, and bit counts.
package wide

import (
	"math"
	"math/bits"
)

// MulHiU32 returns the high 32 bits of the 64-bit product x*y.
func MulHiU32(x, y uint32) uint32 {
	return uint32((uint64(x) * uint64(y)) >> 32)
}

// MulHiS32 returns the high 32 bits of the signed 64-bit product x*y.
func MulHiS32(x, y int32) int32 {
	return int32((int64(x) * int64(y)) >> 32)
}

// MulHiU64 returns the high 64 bits of the 128-bit product x*y.
func MulHiU64(x, y uint64) uint64 {
	hi, _ := bits.Mul64(x, y)
	return hi
}

// MulHiS64 returns the high 64 bits of the signed 128-bit product x*y.
func MulHiS64(x, y int64) int64 {
	hi, _ := bits.Mul64(uint64(x), uint64(y))
	// A negative operand read as unsigned is off by 2^64; that adds the
	// other operand to the high word.
	return int64(hi) - ((x >> 63) & y) - ((y >> 63) & x)
}

// DivModU64By32 divides the 64-bit value hi:lo by v and returns the
// quotient and remainder. If the quotient does not fit in 32 bits
// (hi >= v, including v == 0) it returns q = r = MaxUint32.
func DivModU64By32(hi, lo, v uint32) (q, r uint32) {
	if hi >= v {
		return math.MaxUint32, math.MaxUint32
	}
	return bits.Div32(hi, lo, v)
}

// DivModU128By64 divides the 128-bit value hi:lo by v and returns the
// quotient and remainder. If the quotient does not fit in 64 bits
// (hi >= v, including v == 0) it returns q = r = MaxUint64.
func DivModU128By64(hi, lo, v uint64) (q, r uint64) {
	if hi >= v {
		return math.MaxUint64, math.MaxUint64
	}
	return bits.Div64(hi, lo, v)
}

// Clz32 counts leading zeros; Clz32(0) == 32.
func Clz32(x uint32) int { return bits.LeadingZeros32(x) }

// Clz64 counts leading zeros; Clz64(0) == 64.
func Clz64(x uint64) int { return bits.LeadingZeros64(x) }

// Ctz32 counts trailing zeros; Ctz32(0) == 32.
func Ctz32(x uint32) int { return bits.TrailingZeros32(x) }

// Ctz64 counts trailing zeros; Ctz64(0) == 64.
func Ctz64(x uint64) int { return bits.TrailingZeros64(x) }

// FloorLog2U32 returns floor(log2(x)) for x > 0.
func FloorLog2U32(x uint32) int { return 31 - Clz32(x) }

// FloorLog2U64 returns floor(log2(x)) for x > 0.
func FloorLog2U64(x uint64) int { return 63 - Clz64(x) }
