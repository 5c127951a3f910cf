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

// Generate fills out chunk by chunk with fn(d, offset), where d is the
// chunk's tag and offset the index of its first element.
//
//	algo.Generate(algo.Simd, out, func(d hwy.Tag[float32], off int) hwy.Vec[float32] {
//	    return hwy.Mul(d.Iota(float32(off)), d.Set(0.5))
//	})
func Generate[T hwy.Lanes](p Policy, out []T, fn func(d hwy.Tag[T], offset int) hwy.Vec[T]) {
	walk(p, out, len(out), func(d hwy.Tag[T], i int) bool {
		hwy.Store(fn(d, i), out[i:i+d.Lanes()])
		return true
	})
}

// Iota fills out with start, start+1, start+2, ...
func Iota[T hwy.Lanes](p Policy, out []T, start T) {
	Generate(p, out, func(d hwy.Tag[T], offset int) hwy.Vec[T] {
		return d.Iota(start + T(offset))
	})
}
