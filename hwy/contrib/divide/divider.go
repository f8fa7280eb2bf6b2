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
	"github.com/ajroetker/go-fastdiv/hwy"
	"github.com/ajroetker/go-fastdiv/hwy/contrib/workerpool"
)

// Integer is the set of numerator types with a descriptor.
type Integer interface {
	uint32 | int32 | uint64 | int64
}

// Divider is the domain-independent view of a descriptor. U32, S32, U64
// and S64 implement it for their element type.
type Divider[T Integer] interface {
	Divide(n T) T
	Algorithm() Algorithm
	Variant(alg Algorithm) func(T) T
	Unswitched() func(T) T
	DivideVec(n hwy.Vec[T]) hwy.Vec[T]
	VecVariant(alg Algorithm) func(hwy.Vec[T]) hwy.Vec[T]
	DivideSlice(dst, src []T)
}

var (
	_ Divider[uint32] = U32{}
	_ Divider[int32]  = S32{}
	_ Divider[uint64] = U64{}
	_ Divider[int64]  = S64{}
)

// New returns the descriptor for dividing T values by d.
// It panics with ErrDivideByZero if d is zero.
func New[T Integer](d T) Divider[T] {
	var div any
	switch v := any(d).(type) {
	case uint32:
		div = NewU32(v)
	case int32:
		div = NewS32(v)
	case uint64:
		div = NewU64(v)
	case int64:
		div = NewS64(v)
	}
	return div.(Divider[T])
}

// parallelThreshold is the slice length below which ParallelDivide stays
// on the calling goroutine.
const parallelThreshold = 1 << 14

// ParallelDivide stores src[i] / d in dst[i], splitting large slices across
// pool. Work is handed out in batches that are a multiple of the vector
// width, so only the final batch has a tail. A nil pool runs inline.
func ParallelDivide[T Integer](pool *workerpool.Pool, d Divider[T], dst, src []T) {
	if len(dst) < len(src) {
		panic("divide: dst is shorter than src")
	}
	if pool == nil || len(src) < parallelThreshold {
		d.DivideSlice(dst, src)
		return
	}
	batch := 1024 * hwy.MaxLanes[T]()
	pool.ParallelForBatched(len(src), batch, func(start, end int) {
		d.DivideSlice(dst[start:end], src[start:end])
	})
}
