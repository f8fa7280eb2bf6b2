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
	"math"
	"unsafe"
)

// lcg is the linear congruential generator used to pick test values. The
// fixed seed keeps failures reproducible.
type lcg struct{ seed uint32 }

func newLCG() *lcg { return &lcg{seed: 2147483563} }

func (g *lcg) next() uint32 {
	g.seed = g.seed*1664525 + 1013904223
	return g.seed
}

func widthOf[T Integer]() int {
	var zero T
	return 8 * int(unsafe.Sizeof(zero))
}

func isSigned[T Integer]() bool {
	var zero T
	return ^zero < 0
}

func limits[T Integer]() (lo, hi T) {
	var zero T
	hi = ^zero
	if isSigned[T]() {
		hi = T(uint64(1)<<(widthOf[T]()-1) - 1)
		lo = ^hi
	}
	return lo, hi
}

func randomValue[T Integer](g *lcg) T {
	if widthOf[T]() == 32 {
		return T(g.next())
	}
	little, big := g.next(), g.next()
	return T(uint64(little) | uint64(big)<<32)
}

func randomDivisor[T Integer](g *lcg) T {
	for {
		if d := randomValue[T](g); d != 0 {
			return d
		}
	}
}

// boundaryNumerators returns the extremes of T, small values, and every
// power of two (and its negation).
func boundaryNumerators[T Integer]() []T {
	lo, hi := limits[T]()
	vals := []T{
		0, hi, hi - 1, hi / 2, hi/2 - 1, lo, lo / 2, lo / 4,
		1, 2, 3, 4, 5, 6, 7, 8, 10, 36847, 50683, math.MaxInt16,
	}
	for i := range widthOf[T]() {
		p := T(1) << i
		vals = append(vals, p, p-1, p+1, -p)
	}
	return vals
}

// testNumerators returns the boundary numerators followed by count random
// ones.
func testNumerators[T Integer](g *lcg, count int) []T {
	vals := boundaryNumerators[T]()
	for range count {
		vals = append(vals, randomValue[T](g))
	}
	return vals
}

// powersOfTwo returns 2^i for every i that fits in T, and their negations
// for signed T.
func powersOfTwo[T Integer]() []T {
	var out []T
	for i := range widthOf[T]() {
		p := T(1) << i
		out = append(out, p)
		if isSigned[T]() {
			out = append(out, -p)
		}
	}
	return out
}

// verifyDivisor checks Divide and the unswitched variant against the
// native / operator for every numerator.
func verifyDivisor[T Integer](d T, numers []T) error {
	div := New(d)
	if again := New(d); again != div {
		return fmt.Errorf("New(%d) is not deterministic: %v != %v", d, div, again)
	}
	unswitched := div.Unswitched()
	for _, n := range numers {
		want := n / d
		if got := div.Divide(n); got != want {
			return fmt.Errorf("%d / %d: Divide = %d, want %d (%v)", n, d, got, want, div)
		}
		if got := unswitched(n); got != want {
			return fmt.Errorf("%d / %d: unswitched %v = %d, want %d (%v)", n, d, div.Algorithm(), got, want, div)
		}
	}
	return nil
}
