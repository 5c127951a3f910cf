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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-vsimd/hwy"
)

func TestCountIfBoundaryLengths(t *testing.T) {
	odd := func(v hwy.Vec[int32]) hwy.Mask[int32] {
		return hwy.TestBit(v, 0)
	}
	for _, p := range testPolicies() {
		n := Tag[int32](p).Lanes()
		for _, length := range boundaryLengths(n) {
			data := iotaInt32(length)
			want := 0
			for _, x := range data {
				if x%2 == 1 {
					want++
				}
			}
			require.Equal(t, want, CountIf(p, data, odd), "%v len=%d", p, length)
		}
	}
}

func TestCountIfFloats(t *testing.T) {
	for _, p := range testPolicies() {
		n := Tag[float32](p).Lanes()
		for _, length := range boundaryLengths(n) {
			data := randomFloat32s(length, uint64(length)+5)
			want := 0
			for _, x := range data {
				if x > 100 {
					want++
				}
			}
			got := CountIf(p, data, func(v hwy.Vec[float32]) hwy.Mask[float32] {
				return hwy.Greater(v, hwy.DFromV(v).Set(100))
			})
			require.Equal(t, want, got, "%v len=%d", p, length)
		}
	}
}

func TestCountIfIgnoresWideMasks(t *testing.T) {
	// A predicate that ignores its argument must not count past the chunk.
	all := func(hwy.Vec[uint8]) hwy.Mask[uint8] {
		return hwy.SelectTag[uint8](hwy.MaxFixedLanes).FirstN(hwy.MaxFixedLanes)
	}
	for _, p := range testPolicies() {
		assert.Equal(t, 13, CountIf(p, make([]uint8, 13), all), "%v", p)
	}
}

func TestCount(t *testing.T) {
	data := []int16{1, 2, 3, 2, 2, 5, 2, 7, 8, 2, 2}
	assert.Equal(t, 6, Count(Simd, data, 2))
	assert.Equal(t, 0, Count(Simd, data, 4))
	assert.Equal(t, 0, Count(Simd, []int16{}, 4))
	assert.Equal(t, 6, Count(Simd.PreferSize(4).HalvingEpilogue(), data, 2))
}

func TestCountIfPred(t *testing.T) {
	data := []float64{-2, -1, 0, 1, 2, 3, math.NaN(), 4, 5}
	assert.Equal(t, 5, CountIfPred(Simd, data, Predicate[float64](GreaterThan[float64]{Threshold: 0})))
	assert.Equal(t, 4, CountIfPred(Simd, data, Predicate[float64](InRange[float64]{Min: -1, Max: 2})))
	assert.Equal(t, 1, CountIfPred(Simd.PreferSize(4), data, Predicate[float64](IsNaN[float64]{})))
}
