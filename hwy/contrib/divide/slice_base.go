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

import "github.com/ajroetker/go-fastdiv/hwy"

// divideLanes runs div over src one vector at a time, handling the tail
// with a masked load and store.
func divideLanes[T hwy.Lanes](dst, src []T, div func(hwy.Vec[T]) hwy.Vec[T]) {
	if len(dst) < len(src) {
		panic("divide: dst is shorter than src")
	}
	hwy.ProcessWithTail[T](len(src),
		func(offset int) {
			hwy.Store(div(hwy.Load(src[offset:])), dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, src[offset:])
			hwy.MaskStore(mask, div(v), dst[offset:])
		},
	)
}

func divideScalar[T Integer](dst, src []T, div func(T) T) {
	if len(dst) < len(src) {
		panic("divide: dst is shorter than src")
	}
	dst = dst[:len(src)]
	for i, n := range src {
		dst[i] = div(n)
	}
}

// BaseDivideSliceU32 stores src[i] / d in dst[i] using vector lanes.
// The algorithm is classified once per call.
func BaseDivideSliceU32(dst, src []uint32, d U32) {
	divideLanes(dst, src, d.VecVariant(d.Algorithm()))
}

// BaseDivideSliceU32Scalar is the one-lane-at-a-time fallback.
func BaseDivideSliceU32Scalar(dst, src []uint32, d U32) {
	divideScalar(dst, src, d.Unswitched())
}

// BaseDivideSliceS32 stores src[i] / d in dst[i] using vector lanes.
func BaseDivideSliceS32(dst, src []int32, d S32) {
	divideLanes(dst, src, d.VecVariant(d.Algorithm()))
}

// BaseDivideSliceS32Scalar is the one-lane-at-a-time fallback.
func BaseDivideSliceS32Scalar(dst, src []int32, d S32) {
	divideScalar(dst, src, d.Unswitched())
}

// BaseDivideSliceU64 stores src[i] / d in dst[i] using vector lanes.
func BaseDivideSliceU64(dst, src []uint64, d U64) {
	divideLanes(dst, src, d.VecVariant(d.Algorithm()))
}

// BaseDivideSliceU64Scalar is the one-lane-at-a-time fallback.
func BaseDivideSliceU64Scalar(dst, src []uint64, d U64) {
	divideScalar(dst, src, d.Unswitched())
}

// BaseDivideSliceS64 stores src[i] / d in dst[i] using vector lanes.
func BaseDivideSliceS64(dst, src []int64, d S64) {
	divideLanes(dst, src, d.VecVariant(d.Algorithm()))
}

// BaseDivideSliceS64Scalar is the one-lane-at-a-time fallback.
func BaseDivideSliceS64Scalar(dst, src []int64, d S64) {
	divideScalar(dst, src, d.Unswitched())
}

// DivideSlice stores src[i] / d in dst[i]. It panics if dst is shorter
// than src.
func (d U32) DivideSlice(dst, src []uint32) { DivideSliceU32(dst, src, d) }

// DivideSlice stores src[i] / d in dst[i]. It panics if dst is shorter
// than src.
func (d S32) DivideSlice(dst, src []int32) { DivideSliceS32(dst, src, d) }

// DivideSlice stores src[i] / d in dst[i]. It panics if dst is shorter
// than src.
func (d U64) DivideSlice(dst, src []uint64) { DivideSliceU64(dst, src, d) }

// DivideSlice stores src[i] / d in dst[i]. It panics if dst is shorter
// than src.
func (d S64) DivideSlice(dst, src []int64) { DivideSliceS64(dst, src, d) }
