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

// Op combines two vectors lane-wise. It is used for both the vector
// accumulator and, on single-lane vectors, the scalar folds, so one function
// such as hwy.Add[float32] describes the whole reduction.
type Op[T hwy.Lanes] func(a, b hwy.Vec[T]) hwy.Vec[T]

// Reduce folds data into init with op in the order documented on the
// package. An empty range returns init.
func Reduce[T hwy.Lanes](p Policy, data []T, init T, op Op[T]) T {
	return reduceChunks(p, len(data), init, op, func(d hwy.Tag[T], i int) hwy.Vec[T] {
		return d.Load(data[i : i+d.Lanes()])
	})
}

// TransformReduce reduces transform(chunk) instead of the raw elements.
//
//	sumSq := algo.TransformReduce(algo.Simd, data, 0, hwy.Add[float64],
//	    func(v hwy.Vec[float64]) hwy.Vec[float64] { return hwy.Mul(v, v) })
func TransformReduce[T hwy.Lanes](p Policy, data []T, init T, reduce Op[T], transform func(hwy.Vec[T]) hwy.Vec[T]) T {
	return reduceChunks(p, len(data), init, reduce, func(d hwy.Tag[T], i int) hwy.Vec[T] {
		return transform(d.Load(data[i : i+d.Lanes()]))
	})
}

// TransformReduce2 reduces transform(a chunk, b chunk) over the first
// min(len(a), len(b)) elements.
func TransformReduce2[T hwy.Lanes](p Policy, a, b []T, init T, reduce Op[T], transform func(a, b hwy.Vec[T]) hwy.Vec[T]) T {
	n := min(len(a), len(b))
	return reduceChunks(p, n, init, reduce, func(d hwy.Tag[T], i int) hwy.Vec[T] {
		w := d.Lanes()
		return transform(d.Load(a[i:i+w]), d.Load(b[i:i+w]))
	})
}

func reduceChunks[T hwy.Lanes](p Policy, n int, init T, op Op[T], load func(d hwy.Tag[T], i int) hwy.Vec[T]) T {
	d := Tag[T](p)
	lanes := d.Lanes()
	one := hwy.ScalarTag[T]()
	fold := func(acc, x T) T {
		return op(one.Set(acc), one.Set(x)).Lane(0)
	}

	r := init
	if n < lanes {
		for i := range n {
			r = fold(r, load(one, i).Lane(0))
		}
		return r
	}

	acc := load(d, 0)
	i := lanes
	if k := p.unroll; k > 1 {
		step := k * lanes
		for ; i+step <= n; i += step {
			for j := range k {
				acc = op(acc, load(d, i+j*lanes))
			}
		}
	}
	for ; i+lanes <= n; i += lanes {
		acc = op(acc, load(d, i))
	}

	for j := range lanes {
		r = fold(r, acc.Lane(j))
	}
	for ; i < n; i++ {
		r = fold(r, load(one, i).Lane(0))
	}
	return r
}

// ReferenceReduce computes what Reduce returns for vectors of the given
// lane count, using only scalar arithmetic. op must be the scalar
// counterpart of the vector operation. lanes < 1 is treated as 1.
func ReferenceReduce[T hwy.Lanes](data []T, lanes int, init T, op func(a, b T) T) T {
	lanes = max(lanes, 1)
	n := len(data)
	r := init
	if n < lanes {
		for _, x := range data {
			r = op(r, x)
		}
		return r
	}

	acc := make([]T, lanes)
	copy(acc, data[:lanes])
	i := lanes
	for ; i+lanes <= n; i += lanes {
		for j := range lanes {
			acc[j] = op(acc[j], data[i+j])
		}
	}
	for _, x := range acc {
		r = op(r, x)
	}
	for ; i < n; i++ {
		r = op(r, data[i])
	}
	return r
}
