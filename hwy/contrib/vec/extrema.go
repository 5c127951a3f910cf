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

package vec

import (
	"github.com/ajroetker/go-vsimd/hwy"
	"github.com/ajroetker/go-vsimd/hwy/contrib/algo"
)

// NaN lanes are the only ones not equal to themselves; integer lanes never
// match. The extrema below skip them, so NaN compares below every number.

func maxSkipNaN[T hwy.Lanes](a, b hwy.Vec[T]) hwy.Vec[T] {
	return hwy.IfThenElse(hwy.NotEqual(b, b), a,
		hwy.IfThenElse(hwy.NotEqual(a, a), b, hwy.Max(a, b)))
}

func minSkipNaN[T hwy.Lanes](a, b hwy.Vec[T]) hwy.Vec[T] {
	return hwy.IfThenElse(hwy.NotEqual(b, b), a,
		hwy.IfThenElse(hwy.NotEqual(a, a), b, hwy.Min(a, b)))
}

// Max returns the largest element of v, ignoring NaNs. ok is false for an
// empty slice. If every element is NaN the result is NaN.
func Max[T hwy.Lanes](v []T) (m T, ok bool) {
	if len(v) == 0 {
		return m, false
	}
	return algo.Reduce(algo.Simd, v[1:], v[0], maxSkipNaN[T]), true
}

// Min returns the smallest element of v, ignoring NaNs. ok is false for an
// empty slice.
func Min[T hwy.Lanes](v []T) (m T, ok bool) {
	if len(v) == 0 {
		return m, false
	}
	return algo.Reduce(algo.Simd, v[1:], v[0], minSkipNaN[T]), true
}

// MinMax returns both extrema of v.
func MinMax[T hwy.Lanes](v []T) (lo, hi T, ok bool) {
	lo, ok = Min(v)
	hi, _ = Max(v)
	return lo, hi, ok
}

// Argmax returns the index of the first maximum of v, or -1 for an empty
// slice. NaN values are treated as less than all other values; an all-NaN
// slice yields 0.
//
//	vec.Argmax([]float32{3, 1, 4, 1, 5})  // 4
func Argmax[T hwy.Lanes](v []T) int {
	m, ok := Max(v)
	return indexOf(v, m, ok)
}

// Argmin returns the index of the first minimum of v, or -1 for an empty
// slice. NaN handling matches Argmax.
func Argmin[T hwy.Lanes](v []T) int {
	m, ok := Min(v)
	return indexOf(v, m, ok)
}

func indexOf[T hwy.Lanes](v []T, m T, ok bool) int {
	if !ok {
		return -1
	}
	if idx := algo.Find(algo.Simd, v, m); idx >= 0 {
		return idx
	}
	// Only an all-NaN slice has no element equal to its extremum.
	return 0
}
