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

// TailMask creates a mask with the first count lanes active.
// count is clamped to [0, MaxLanes[T]()].
func TailMask[T Lanes](count int) Mask[T] {
	maxLanes := MaxLanes[T]()
	count = max(0, min(count, maxLanes))
	bits := make([]bool, maxLanes)
	for i := range count {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// ProcessWithTail drives a vector loop over size elements.
//
// It calls fullFn(offset) for each full vector and, if size is not a
// multiple of the vector width, tailFn(offset, count) once for the rest.
//
// Example:
//
//	hwy.ProcessWithTail[uint32](len(src),
//	    func(offset int) {
//	        hwy.Store(div(hwy.Load(src[offset:])), dst[offset:])
//	    },
//	    func(offset, count int) {
//	        mask := hwy.TailMask[uint32](count)
//	        v := hwy.MaskLoad(mask, src[offset:])
//	        hwy.MaskStore(mask, div(v), dst[offset:])
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := MaxLanes[T]()
	full := size / lanes
	for i := range full {
		fullFn(i * lanes)
	}
	if rem := size - full*lanes; rem > 0 {
		tailFn(full*lanes, rem)
	}
}
