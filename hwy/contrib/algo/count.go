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

// MaskFunc tests every lane of a chunk.
type MaskFunc[T hwy.Lanes] func(hwy.Vec[T]) hwy.Mask[T]

// CountIf returns the number of elements for which pred is true.
//
//	positives := algo.CountIf(algo.Simd, data, func(v hwy.Vec[int32]) hwy.Mask[int32] {
//	    return hwy.Greater(v, hwy.DFromV(v).Zero())
//	})
func CountIf[T hwy.Lanes](p Policy, data []T, pred MaskFunc[T]) int {
	count := 0
	walk(p, data, len(data), func(d hwy.Tag[T], i int) bool {
		v := d.Load(data[i : i+d.Lanes()])
		count += hwy.CountTrue(chunkMask(d, pred(v)))
		return true
	})
	return count
}

// Count returns the number of elements equal to value.
func Count[T hwy.Lanes](p Policy, data []T, value T) int {
	return CountIf(p, data, equalTo(value))
}

// CountIfPred is CountIf for a Predicate.
func CountIfPred[T hwy.Lanes](p Policy, data []T, pred Predicate[T]) int {
	return CountIf(p, data, pred.Apply)
}

// chunkMask drops mask lanes beyond the chunk width.
func chunkMask[T hwy.Lanes](d hwy.Tag[T], m hwy.Mask[T]) hwy.Mask[T] {
	return hwy.MaskAnd(m, d.FirstN(d.Lanes()))
}

func equalTo[T hwy.Lanes](value T) MaskFunc[T] {
	return func(v hwy.Vec[T]) hwy.Mask[T] {
		return hwy.Equal(v, hwy.DFromV(v).Set(value))
	}
}
