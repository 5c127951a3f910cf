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
	stdmath "math"

	"github.com/ajroetker/go-vsimd/hwy"
	"github.com/ajroetker/go-vsimd/hwy/contrib/algo"
)

// Sum returns the sum of all elements, 0 for an empty slice.
func Sum[T hwy.Lanes](v []T) T {
	return algo.Reduce(algo.Simd, v, 0, hwy.Add[T])
}

// Dot returns the dot product of a and b.
func Dot[T hwy.Lanes](a, b []T) T {
	return algo.TransformReduce2(algo.Simd, a, b, 0, hwy.Add[T], hwy.Mul[T])
}

// SquaredNorm returns the sum of squares of v.
func SquaredNorm[T hwy.Lanes](v []T) T {
	return algo.TransformReduce(algo.Simd, v, 0, hwy.Add[T], square[T])
}

// Norm returns the Euclidean norm of v.
func Norm[T hwy.Floats](v []T) T {
	return T(stdmath.Sqrt(float64(SquaredNorm(v))))
}

// L2SquaredDistance returns the squared Euclidean distance between a and b.
func L2SquaredDistance[T hwy.Lanes](a, b []T) T {
	return algo.TransformReduce2(algo.Simd, a, b, 0, hwy.Add[T], func(x, y hwy.Vec[T]) hwy.Vec[T] {
		return square(hwy.Sub(x, y))
	})
}

// L2Distance returns the Euclidean distance between a and b.
func L2Distance[T hwy.Floats](a, b []T) T {
	return T(stdmath.Sqrt(float64(L2SquaredDistance(a, b))))
}

// Normalize scales dst in place to unit norm. A zero vector is left
// unchanged.
//
//	v := []float32{3, 0, 4}
//	vec.Normalize(v)  // {0.6, 0, 0.8}
func Normalize[T hwy.Floats](dst []T) {
	NormalizeTo(dst, dst)
}

// NormalizeTo writes src scaled to unit norm into dst. A zero src is copied
// unchanged.
func NormalizeTo[T hwy.Floats](dst, src []T) {
	n := Norm(src)
	if n == 0 {
		algo.Copy(algo.Simd, src, dst)
		return
	}
	ScaleTo(dst, 1/n, src)
}

func square[T hwy.Lanes](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Mul(v, v)
}
