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

// Package divide replaces integer division by a divisor that is only known
// at run time with a precomputed multiply-high and shift.
//
// A divisor is turned into a descriptor once; dividing by the descriptor
// gives exactly the result of Go's truncating / operator for every
// numerator of the descriptor's width, without a hardware divide.
// Descriptors exist for four domains: U32, S32, U64 and S64.
//
//	d := divide.NewU32(7)
//	q := d.Divide(100) // 14
//
// # Algorithms
//
// Each descriptor uses one of a few mutually exclusive algorithms
// (see Algorithm): a plain shift for powers of two, a multiply-high and
// shift, or a multiply-high with a correction step when the ideal magic
// number does not fit in the word. Divide tests the descriptor's flag bits
// on every call. Hot loops can classify once and call the specialized
// method instead ("unswitching"):
//
//	div := d.Unswitched()
//	for i, n := range numers {
//	    out[i] = div(n)
//	}
//
// # Vectors and slices
//
// DivideVec applies the same algorithm to every lane of an hwy.Vec, and
// DivideSlice runs it over a whole slice, falling back to a scalar loop
// when the hwy dispatch level is scalar (for example with HWY_NO_SIMD=1).
// ParallelDivide spreads a large slice over a workerpool.Pool.
//
// # Preconditions
//
// Dividing by zero is a caller error: the New functions panic with
// ErrDivideByZero, like the / operator. Descriptors must come from the New
// function of their own domain; the zero value is not a valid descriptor.
// For signed domains, MinInt / -1 wraps to MinInt, as Go's / does.
//
// Build with -tags fastdiv_debug to check internal invariants while
// generating descriptors.
package divide

//go:generate go run ../../../cmd/divgen -o zz_lanes_gen.go -p divide
