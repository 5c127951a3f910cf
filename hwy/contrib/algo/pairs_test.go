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
	"math"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-vsimd/hwy"
)

// points returns integer-valued points x = i%4, y = (i+2)%5 for i from 1.
func points[T hwy.Lanes](n int) []Pair[T] {
	out := make([]Pair[T], n)
	for i := range out {
		out[i] = Pair[T]{X: T((i + 1) % 4), Y: T((i + 3) % 5)}
	}
	return out
}

func randomPoints(n int, seed uint64) []Pair[float32] {
	xs := randomFloat32s(2*n, seed)
	out := make([]Pair[float32], n)
	for i := range out {
		out[i] = Pair[float32]{X: xs[2*i], Y: xs[2*i+1]}
	}
	return out
}

func dotPair(a, b PairVec[float32]) hwy.Vec[float32] {
	return hwy.Add(hwy.Mul(a.X, b.X), hwy.Mul(a.Y, b.Y))
}

// scalarDots is the per-record dot product with each product rounded to
// float32, as the lane operations do.
func scalarDots(a, b []Pair[float32]) []float32 {
	out := make([]float32, min(len(a), len(b)))
	for i := range out {
		out[i] = float32(a[i].X*b[i].X) + float32(a[i].Y*b[i].Y)
	}
	return out
}

func TestPairLayout(t *testing.T) {
	assert.Equal(t, 2*unsafe.Sizeof(float32(0)), unsafe.Sizeof(Pair[float32]{}))
	assert.Equal(t, 2*unsafe.Sizeof(int8(0)), unsafe.Sizeof(Pair[int8]{}))

	ps := []Pair[int16]{{1, 2}, {3, 4}}
	assert.Equal(t, []int16{1, 2, 3, 4}, pairLanes(ps))
	assert.Nil(t, pairLanes([]Pair[int16]{}))
}

func TestForEachPairVisitsInOrder(t *testing.T) {
	for _, p := range testPolicies() {
		n := Tag[int32](p).Lanes()
		for _, length := range boundaryLengths(n) {
			buf := points[int32](length + 8)
			for off := range 8 {
				data := buf[off : off+length]
				var seen []Pair[int32]
				ForEachPair(p, data, func(v PairVec[int32]) {
					for j := range v.X.NumLanes() {
						seen = append(seen, Pair[int32]{X: v.X.Lane(j), Y: v.Y.Lane(j)})
					}
				})
				if diff := cmp.Diff(data, seen, cmpopts.EquateEmpty()); diff != "" {
					t.Fatalf("%v len=%d off=%d: visit mismatch (-want +got):\n%s", p, length, off, diff)
				}
			}
		}
	}
}

func TestForEachPairPrologue(t *testing.T) {
	p := Simd.PreferSize(4).PreferAligned()
	buf := make([]Pair[float32], 32)

	// Records are 8 bytes, so chunks of 4 align to 32 bytes. Start three
	// records short of a boundary.
	off := -1
	for k := range 4 {
		if uintptr(unsafe.Pointer(&buf[k]))%32 == 8 {
			off = k
			break
		}
	}
	require.NotEqual(t, -1, off, "no start with the wanted misalignment")

	var widths []int
	ForEachPair(p, buf[off:off+11], func(v PairVec[float32]) {
		widths = append(widths, v.X.NumLanes())
	})
	assert.Equal(t, []int{1, 2, 4, 4}, widths)
}

func TestForEachPairMut(t *testing.T) {
	for _, p := range testPolicies() {
		n := Tag[int32](p).Lanes()
		for _, length := range boundaryLengths(n) {
			data := points[int32](length)
			want := make([]Pair[int32], length)
			for i, pt := range data {
				want[i] = Pair[int32]{X: pt.Y, Y: pt.X + pt.Y}
			}
			ForEachPairMut(p, data, func(v PairVec[int32]) PairVec[int32] {
				return PairVec[int32]{X: v.Y, Y: hwy.Add(v.X, v.Y)}
			})
			if diff := cmp.Diff(want, data, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("%v len=%d (-want +got):\n%s", p, length, diff)
			}
		}
	}
}

func TestTransformPairs(t *testing.T) {
	for _, p := range testPolicies() {
		n := Tag[float32](p).Lanes()
		for _, length := range boundaryLengths(n) {
			in := randomPoints(length, uint64(length))
			got := make([]float32, length)
			TransformPairs(p, in, got, func(v PairVec[float32]) hwy.Vec[float32] {
				return dotPair(v, v)
			})
			require.Equal(t, scalarDots(in, in), got, "%v len=%d", p, length)
		}
	}

	// Common prefix, with a lane type change.
	in := points[int32](5)
	out := make([]float64, 3)
	TransformPairs(Simd, in, out, func(v PairVec[int32]) hwy.Vec[float64] {
		return hwy.ConvertTo[float64](hwy.Sub(v.X, v.Y))
	})
	assert.Equal(t, []float64{-2, -2, 3}, out)
}

func TestTransformReducePairs2MatchesReference(t *testing.T) {
	for _, p := range testPolicies() {
		n := Tag[float32](p).Lanes()
		for _, length := range boundaryLengths(n) {
			a := randomPoints(length, uint64(2*length+1))
			b := randomPoints(length, uint64(2*length+2))
			got := TransformReducePairs2(p, a, b, 0.5, hwy.Add[float32], dotPair)
			want := ReferenceReduce(scalarDots(a, b), n, 0.5, addF32)
			require.Equal(t, math.Float32bits(want), math.Float32bits(got),
				"%v len=%d: got %v, want %v", p, length, got, want)
		}
	}
}

func TestTransformReducePairsDot(t *testing.T) {
	// Integer-valued points reduce exactly, so any order matches the
	// sequential sum.
	for _, p := range testPolicies() {
		n := Tag[float64](p).Lanes()
		for _, length := range []int{0, 1, max(n-1, 0), n, n + 1, 16*n - 1} {
			data := points[float64](length)
			var want float64
			for _, pt := range data {
				want += pt.X*pt.X + pt.Y*pt.Y
			}
			got := TransformReducePairs(p, data, 0, hwy.Add[float64], func(v PairVec[float64]) hwy.Vec[float64] {
				return hwy.Add(hwy.Mul(v.X, v.X), hwy.Mul(v.Y, v.Y))
			})
			assert.Equal(t, want, got, "%v len=%d", p, length)

			both := TransformReducePairs2(p, data, data, 0, hwy.Add[float64], func(a, b PairVec[float64]) hwy.Vec[float64] {
				return hwy.Add(hwy.Mul(a.X, b.X), hwy.Mul(a.Y, b.Y))
			})
			assert.Equal(t, want, both, "%v len=%d", p, length)
		}
	}
}

func TestTransformReducePairs2CommonPrefix(t *testing.T) {
	a := points[int32](7)
	b := points[int32](3)
	got := TransformReducePairs2(Simd.PreferSize(2), a, b, 0, hwy.Add[int32], func(a, b PairVec[int32]) hwy.Vec[int32] {
		return hwy.Add(hwy.Mul(a.X, b.X), hwy.Mul(a.Y, b.Y))
	})
	// Records (1,3), (2,4), (3,0).
	assert.Equal(t, int32(1+9+4+16+9), got)
}
