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

package hwy

import (
	"math/bits"
	"unsafe"
)

// MulHigh returns the high half of the widening multiplication a * b.
// For n-bit lanes the full product has 2n bits; this returns the upper n.
// Signed lanes use the signed product.
func MulHigh[T Integers](a, b Vec[T]) Vec[T] {
	return zip(a, b, mulHigh[T])
}

func mulHigh[T Integers](a, b T) T {
	switch x := any(a).(type) {
	case int8:
		return any(int8((int16(x) * int16(any(b).(int8))) >> 8)).(T)
	case int16:
		return any(int16((int32(x) * int32(any(b).(int16))) >> 16)).(T)
	case int32:
		return any(int32((int64(x) * int64(any(b).(int32))) >> 32)).(T)
	case int64:
		return any(mulHighS64(x, any(b).(int64))).(T)
	case uint8:
		return any(uint8((uint16(x) * uint16(any(b).(uint8))) >> 8)).(T)
	case uint16:
		return any(uint16((uint32(x) * uint32(any(b).(uint16))) >> 16)).(T)
	case uint32:
		return any(uint32((uint64(x) * uint64(any(b).(uint32))) >> 32)).(T)
	case uint64:
		hi, _ := bits.Mul64(x, any(b).(uint64))
		return any(hi).(T)
	default:
		// Named integer types (~int32 etc) take the slow path through
		// their underlying kind.
		return mulHighNamed(a, b)
	}
}

// mulHighS64 derives the signed high word from the unsigned product:
// reinterpreting a negative operand as unsigned adds 2^64 times the other
// operand to the product, which is subtracted back out of the high word.
func mulHighS64(a, b int64) int64 {
	hi, _ := bits.Mul64(uint64(a), uint64(b))
	t1 := (a >> 63) & b
	t2 := (b >> 63) & a
	return int64(hi) - t1 - t2
}

func mulHighNamed[T Integers](a, b T) T {
	var zero T
	signed := ^zero < 0
	switch sizeOf[T]() {
	case 1, 2, 4:
		width := 8 * sizeOf[T]()
		if signed {
			return T((int64(a) * int64(b)) >> width)
		}
		return T((uint64(a) * uint64(b)) >> width)
	default:
		if signed {
			return T(mulHighS64(int64(a), int64(b)))
		}
		hi, _ := bits.Mul64(uint64(a), uint64(b))
		return T(hi)
	}
}

func sizeOf[T Integers]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
