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

// Dispatch function variables.
// They point at the vector implementations, or at the scalar loops when
// hwy runs in scalar mode (no SIMD detected, or HWY_NO_SIMD set).
var (
	// DivideSliceU32 stores src[i] / d in dst[i].
	DivideSliceU32 func(dst, src []uint32, d U32)

	// DivideSliceS32 stores src[i] / d in dst[i].
	DivideSliceS32 func(dst, src []int32, d S32)

	// DivideSliceU64 stores src[i] / d in dst[i].
	DivideSliceU64 func(dst, src []uint64, d U64)

	// DivideSliceS64 stores src[i] / d in dst[i].
	DivideSliceS64 func(dst, src []int64, d S64)
)

func init() {
	if hwy.CurrentLevel() == hwy.DispatchScalar {
		DivideSliceU32 = BaseDivideSliceU32Scalar
		DivideSliceS32 = BaseDivideSliceS32Scalar
		DivideSliceU64 = BaseDivideSliceU64Scalar
		DivideSliceS64 = BaseDivideSliceS64Scalar
		return
	}
	DivideSliceU32 = BaseDivideSliceU32
	DivideSliceS32 = BaseDivideSliceS32
	DivideSliceU64 = BaseDivideSliceU64
	DivideSliceS64 = BaseDivideSliceS64
}
