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

// Package algo runs range algorithms over slices in vector-width strides.
//
// Every algorithm takes a Policy that picks the vector width and how the
// parts of the range that do not fill a whole vector are handled:
//
//	sum := algo.Reduce(algo.Simd, data, 0, hwy.Add[float32])
//
//	n := algo.CountIf(algo.Simd.UnrollBy(4), data, func(v hwy.Vec[float32]) hwy.Mask[float32] {
//	    return hwy.Greater(v, hwy.DFromV(v).Set(0.5))
//	})
//
// A range of length L with vector width N is split into
//
//   - an optional prologue (PreferAligned) of partial vectors that brings the
//     data pointer to an N*sizeof(T) boundary,
//   - full chunks of N lanes, optionally unrolled,
//   - an epilogue for the last L mod N elements, either element by element
//     (ScalarEpilogue, the default) or with halving widths N/2, N/4, ..., 1
//     (HalvingEpilogue).
//
// The user function always sees each element exactly once and in range
// order. Chunks passed to it may be narrower than N; use hwy.DFromV to build
// constants of the matching width.
//
// # Reductions
//
// Reduce, TransformReduce and TransformReduce2 fix their combination order so
// floating-point results are reproducible for a given input and width:
//
//   - if L < N, the result is init ⊕ x0 ⊕ x1 ⊕ ... from left to right;
//   - otherwise the first full chunk seeds an N-lane accumulator and every
//     later full chunk is folded into it lane-wise in range order;
//   - the accumulator lanes are folded into init from lane 0 upwards;
//   - the remaining L mod N elements are folded in range order.
//
// Reductions ignore PreferAligned and HalvingEpilogue, whose chunking depends
// on the data address. ReferenceReduce evaluates the same order without
// vectors.
//
// # Records
//
// A []Pair[T] of two-field records, such as 2-D points, is walked with the
// same chunking, measured in records. Each chunk reaches the user function
// as a PairVec holding one vector of X fields and one of Y fields:
//
//	dot := algo.TransformReducePairs2(algo.Simd, a, b, 0, hwy.Add[float32],
//	    func(a, b algo.PairVec[float32]) hwy.Vec[float32] {
//	        return hwy.MulAdd(a.X, b.X, hwy.Mul(a.Y, b.Y))
//	    })
//
// TransformReducePairs and TransformReducePairs2 follow the reduction order
// above with one lane per record.
//
// All functions are single-threaded and never allocate on the hot path.
// Length mismatches between inputs and outputs process the common prefix.
package algo
