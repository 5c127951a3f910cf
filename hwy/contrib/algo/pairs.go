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

import (
	"unsafe"

	"github.com/ajroetker/go-vsimd/hwy"
)

// Pair is a record of two fields of the same lane type, such as a 2-D
// point. The pair algorithms walk a []Pair[T] in chunks of records and hand
// each chunk over as a PairVec: one vector of X fields and one of Y fields.
type Pair[T hwy.Lanes] struct {
	X, Y T
}

// PairVec is a chunk of Pair records split by field. Lane i of X and Y
// belong to the same record.
type PairVec[T hwy.Lanes] struct {
	X, Y hwy.Vec[T]
}

// pairLanes views pairs as the flat sequence x0, y0, x1, y1, ...
// Both fields have type T, so the struct has no padding.
func pairLanes[T hwy.Lanes](pairs []Pair[T]) []T {
	if len(pairs) == 0 {
		return nil
	}
	return unsafe.Slice(&pairs[0].X, 2*len(pairs))
}

func loadPairs[T hwy.Lanes](d hwy.Tag[T], flat []T, i int) PairVec[T] {
	x, y := hwy.LoadInterleaved2(d, flat[2*i:2*(i+d.Lanes())])
	return PairVec[T]{X: x, Y: y}
}

// ForEachPair calls fn with consecutive chunks of data in range order.
func ForEachPair[T hwy.Lanes](p Policy, data []Pair[T], fn func(PairVec[T])) {
	flat := pairLanes(data)
	walkSpan(p, spanOf(data), len(data), func(d hwy.Tag[T], i int) bool {
		fn(loadPairs(d, flat, i))
		return true
	})
}

// ForEachPairMut calls fn with consecutive chunks of data and stores the
// returned fields back into the records.
//
//	// swap axes
//	algo.ForEachPairMut(algo.Simd, points, func(v algo.PairVec[float32]) algo.PairVec[float32] {
//	    return algo.PairVec[float32]{X: v.Y, Y: v.X}
//	})
func ForEachPairMut[T hwy.Lanes](p Policy, data []Pair[T], fn func(PairVec[T]) PairVec[T]) {
	flat := pairLanes(data)
	walkSpan(p, spanOf(data), len(data), func(d hwy.Tag[T], i int) bool {
		r := fn(loadPairs(d, flat, i))
		hwy.StoreInterleaved2(r.X, r.Y, flat[2*i:2*(i+d.Lanes())])
		return true
	})
}

// TransformPairs writes fn(chunk of in) to the matching positions of out
// for the first min(len(in), len(out)) records.
func TransformPairs[T, U hwy.Lanes](p Policy, in []Pair[T], out []U, fn func(PairVec[T]) hwy.Vec[U]) {
	n := min(len(in), len(out))
	flat := pairLanes(in)
	walkSpan(p, spanOf(in), n, func(d hwy.Tag[T], i int) bool {
		hwy.Store(fn(loadPairs(d, flat, i)), out[i:i+d.Lanes()])
		return true
	})
}

// TransformReducePairs reduces transform(chunk) over data in the same order
// as Reduce, one lane per record.
//
//	normSq := algo.TransformReducePairs(algo.Simd, points, 0, hwy.Add[float64],
//	    func(v algo.PairVec[float64]) hwy.Vec[float64] {
//	        return hwy.MulAdd(v.X, v.X, hwy.Mul(v.Y, v.Y))
//	    })
func TransformReducePairs[T hwy.Lanes](p Policy, data []Pair[T], init T, reduce Op[T], transform func(PairVec[T]) hwy.Vec[T]) T {
	flat := pairLanes(data)
	return reduceChunks(p, len(data), init, reduce, func(d hwy.Tag[T], i int) hwy.Vec[T] {
		return transform(loadPairs(d, flat, i))
	})
}

// TransformReducePairs2 is the binary form of TransformReducePairs over the
// first min(len(a), len(b)) records, e.g. the sum of per-record dot
// products of two point sets.
func TransformReducePairs2[T hwy.Lanes](p Policy, a, b []Pair[T], init T, reduce Op[T], transform func(a, b PairVec[T]) hwy.Vec[T]) T {
	n := min(len(a), len(b))
	fa, fb := pairLanes(a), pairLanes(b)
	return reduceChunks(p, n, init, reduce, func(d hwy.Tag[T], i int) hwy.Vec[T] {
		return transform(loadPairs(d, fa, i), loadPairs(d, fb, i))
	})
}
