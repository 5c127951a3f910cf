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

package algo

import "github.com/ajroetker/go-vsimd/hwy"

// Fill sets every element of dst to value.
func Fill[T hwy.Lanes](p Policy, dst []T, value T) {
	Generate(p, dst, func(d hwy.Tag[T], _ int) hwy.Vec[T] {
		return d.Set(value)
	})
}

// Copy copies min(len(src), len(dst)) elements and returns the count.
func Copy[T hwy.Lanes](p Policy, src, dst []T) int {
	n := min(len(src), len(dst))
	Transform(p, src[:n], dst[:n], func(v hwy.Vec[T]) hwy.Vec[T] { return v })
	return n
}

// CopyIf packs the elements of src for which pred is true into dst, keeping
// their order (stream compaction). It stops when dst is full and returns
// the number of elements written.
func CopyIf[T hwy.Lanes](p Policy, src, dst []T, pred MaskFunc[T]) int {
	written := 0
	if len(dst) == 0 {
		return 0
	}
	walk(p, src, len(src), func(d hwy.Tag[T], i int) bool {
		v := d.Load(src[i : i+d.Lanes()])
		written += hwy.CompressStore(v, chunkMask(d, pred(v)), dst[written:])
		return written < len(dst)
	})
	return written
}

// CopyIfPred is CopyIf for a Predicate.
func CopyIfPred[T hwy.Lanes](p Policy, src, dst []T, pred Predicate[T]) int {
	return CopyIf(p, src, dst, pred.Apply)
}
