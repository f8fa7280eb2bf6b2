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
	"errors"
	"fmt"
)

// ErrDivideByZero is the panic value of the New functions when the divisor
// is zero.
var ErrDivideByZero = errors.New("divide: integer divide by zero")

// Algorithm identifies which of the mutually exclusive division paths a
// descriptor uses. It is derived from the descriptor on demand.
type Algorithm int

const (
	// AlgorithmShift: the divisor is a power of two; the quotient is a
	// shift (with a rounding bias for signed numerators).
	AlgorithmShift Algorithm = iota

	// AlgorithmShiftNeg: the divisor is minus a power of two (signed only).
	AlgorithmShiftNeg

	// AlgorithmMul: multiply-high by the magic number, then shift.
	AlgorithmMul

	// AlgorithmMulAdd: multiply-high with a correction step. For unsigned
	// domains the numerator is averaged in; for signed domains it is added.
	AlgorithmMulAdd

	// AlgorithmMulSub: multiply-high with the numerator subtracted, for
	// negative divisors (signed only).
	AlgorithmMulSub
)

// String returns a short name for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmShift:
		return "shift"
	case AlgorithmShiftNeg:
		return "shift-neg"
	case AlgorithmMul:
		return "mul"
	case AlgorithmMulAdd:
		return "mul-add"
	case AlgorithmMulSub:
		return "mul-sub"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Layout of the packed "more" byte.
//
//	u32: [0-4] shift, [6] add marker, [7] shift path
//	s32: [0-4] shift, [5] shift path, [6] add marker, [7] negative divisor
//	u64: [0-5] shift, [6] add marker, [7] shift path
//	s64: [0-5] shift, [6] add marker, [7] negative divisor;
//	     s64 has no bit left for the shift path, so magic == 0 marks it.
const (
	shiftMask32     = 0x1F
	shiftMask64     = 0x3F
	addMarker       = 0x40
	u32ShiftPath    = 0x80
	u64ShiftPath    = 0x80
	s32ShiftPath    = 0x20
	negativeDivisor = 0x80
)

// signMask expands the negative-divisor bit of more into all ones or all
// zeros. The arithmetic shift of the signed byte does the broadcast.
func signMask(more uint8) int8 {
	return int8(more) >> 7
}

func unknownAlgorithm(domain string, alg Algorithm) string {
	return fmt.Sprintf("divide: %s has no %v algorithm", domain, alg)
}
