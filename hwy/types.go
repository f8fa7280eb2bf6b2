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

// Package hwy provides the portable integer lane layer used by the fastdiv
// kernels.
//
// It follows the Highway C++ library's model: an algorithm is written once
// against Vec and its lane-wise operations, and the number of lanes per
// vector follows the register width detected for the running CPU. The
// operations here are the pure Go (base) implementations; every lane is
// computed independently, so results never depend on the detected width.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-fastdiv/hwy"
//
//	a := hwy.Load(numers)
//	q := hwy.ShiftRight(hwy.MulHigh(a, hwy.Set(magic)), shift)
//	hwy.Store(q, out)
package hwy

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Integers
}

// Vec is a portable vector handle.
// In base mode it wraps a slice holding one element per lane.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the lanes as a slice.
// This is primarily for testing and should not be used in hot loops.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst. It is the method form of Store.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask is the result of a lane-wise comparison.
// Use it with IfThenElse, MaskLoad and MaskStore.
type Mask[T Lanes] struct {
	// bits[i] is true when lane i is active.
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue reports whether every lane is active.
func (m Mask[T]) AllTrue() bool {
	for _, b := range m.bits {
		if !b {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one lane is active.
func (m Mask[T]) AnyTrue() bool {
	for _, b := range m.bits {
		if b {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes.
func (m Mask[T]) CountTrue() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// GetBit reports whether lane i is active. Out of range lanes are inactive.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
