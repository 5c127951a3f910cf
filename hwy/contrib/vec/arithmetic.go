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

// Add performs in-place element-wise addition: dst[i] += s[i].
//
//	dst := []float32{10, 20, 30, 40}
//	vec.Add(dst, []float32{1, 2, 3, 4})  // {11, 22, 33, 44}
func Add[T hwy.Lanes](dst, s []T) {
	algo.Transform2(algo.Simd, dst, s, dst, hwy.Add[T])
}

// AddTo performs element-wise addition: dst[i] = a[i] + b[i].
func AddTo[T hwy.Lanes](dst, a, b []T) {
	algo.Transform2(algo.Simd, a, b, dst, hwy.Add[T])
}

// Sub performs in-place element-wise subtraction: dst[i] -= s[i].
func Sub[T hwy.Lanes](dst, s []T) {
	algo.Transform2(algo.Simd, dst, s, dst, hwy.Sub[T])
}

// SubTo performs element-wise subtraction: dst[i] = a[i] - b[i].
func SubTo[T hwy.Lanes](dst, a, b []T) {
	algo.Transform2(algo.Simd, a, b, dst, hwy.Sub[T])
}

// Mul performs in-place element-wise multiplication: dst[i] *= s[i].
func Mul[T hwy.Lanes](dst, s []T) {
	algo.Transform2(algo.Simd, dst, s, dst, hwy.Mul[T])
}

// MulTo performs element-wise multiplication: dst[i] = a[i] * b[i].
func MulTo[T hwy.Lanes](dst, a, b []T) {
	algo.Transform2(algo.Simd, a, b, dst, hwy.Mul[T])
}

// DivTo performs element-wise division: dst[i] = a[i] / b[i].
func DivTo[T hwy.Floats](dst, a, b []T) {
	algo.Transform2(algo.Simd, a, b, dst, hwy.Div[T])
}

// Scale multiplies every element of dst by c in place.
func Scale[T hwy.Lanes](c T, dst []T) {
	ScaleTo(dst, c, dst)
}

// ScaleTo writes dst[i] = c * s[i].
func ScaleTo[T hwy.Lanes](dst []T, c T, s []T) {
	algo.Transform(algo.Simd, s, dst, func(v hwy.Vec[T]) hwy.Vec[T] {
		return hwy.Mul(hwy.DFromV(v).Set(c), v)
	})
}

// AddConst adds c to every element of dst in place.
func AddConst[T hwy.Lanes](c T, dst []T) {
	algo.ForEachMut(algo.Simd, dst, func(v hwy.Vec[T]) hwy.Vec[T] {
		return hwy.Add(v, hwy.DFromV(v).Set(c))
	})
}

// MulConstAddTo accumulates a scaled slice: dst[i] += a * x[i].
// The multiply and add are rounded separately.
func MulConstAddTo[T hwy.Lanes](dst []T, a T, x []T) {
	algo.Transform2(algo.Simd, dst, x, dst, func(d, v hwy.Vec[T]) hwy.Vec[T] {
		return hwy.MulAdd(hwy.DFromV(v).Set(a), v, d)
	})
}
