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

// Package contrib groups slice-level building blocks on top of hwy.
//
// # Subpackages
//
//   - algo: execution policies and the standard algorithms (transform,
//     reduce, count, find, copy, fill, generate) over slices
//   - vec: element-wise arithmetic, norms and extrema on slices
//   - workerpool: a persistent goroutine pool for running independent
//     slice jobs side by side (the algorithms themselves stay on the
//     calling goroutine)
//
// # Example
//
//	import "github.com/ajroetker/go-vsimd/hwy/contrib/algo"
//
//	// x² + x, two vectors per loop iteration
//	algo.Transform(algo.Simd.UnrollBy(2), input, output,
//	    func(v hwy.Vec[float32]) hwy.Vec[float32] {
//	        return hwy.Add(hwy.Mul(v, v), v)
//	    })
//
//	sum := algo.Reduce(algo.Simd, input, 0, hwy.Add[float32])
package contrib
