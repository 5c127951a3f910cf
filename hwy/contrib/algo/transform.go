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

// ForEach calls fn with consecutive chunks of data in range order. Chunks
// are read-only copies; use ForEachMut to write results back.
func ForEach[T hwy.Lanes](p Policy, data []T, fn func(hwy.Vec[T])) {
	walk(p, data, len(data), func(d hwy.Tag[T], i int) bool {
		fn(d.Load(data[i : i+d.Lanes()]))
		return true
	})
}

// ForEachMut calls fn with consecutive chunks of data and stores the
// returned vector back in place.
//
//	algo.ForEachMut(algo.Simd, data, func(v hwy.Vec[float32]) hwy.Vec[float32] {
//	    return hwy.Mul(v, v)
//	})
func ForEachMut[T hwy.Lanes](p Policy, data []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	walk(p, data, len(data), func(d hwy.Tag[T], i int) bool {
		chunk := data[i : i+d.Lanes()]
		hwy.Store(fn(d.Load(chunk)), chunk)
		return true
	})
}

// Transform writes fn(chunk of in) to the matching positions of out for the
// first min(len(in), len(out)) elements. The lane type may change, e.g.
// with hwy.ConvertTo.
func Transform[T, U hwy.Lanes](p Policy, in []T, out []U, fn func(hwy.Vec[T]) hwy.Vec[U]) {
	n := min(len(in), len(out))
	walk(p, in, n, func(d hwy.Tag[T], i int) bool {
		w := d.Lanes()
		hwy.Store(fn(d.Load(in[i:i+w])), out[i:i+w])
		return true
	})
}

// Transform2 is the binary form of Transform. It processes the first
// min(len(a), len(b), len(out)) elements.
func Transform2[T, U hwy.Lanes](p Policy, a, b []T, out []U, fn func(a, b hwy.Vec[T]) hwy.Vec[U]) {
	n := min(len(a), len(b), len(out))
	walk(p, a, n, func(d hwy.Tag[T], i int) bool {
		w := d.Lanes()
		hwy.Store(fn(d.Load(a[i:i+w]), d.Load(b[i:i+w])), out[i:i+w])
		return true
	})
}
