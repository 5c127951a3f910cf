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
	"context"
	"fmt"
	"log/slog"

	"github.com/ajroetker/go-vsimd/hwy"
)

// Epilogue selects how elements after the last full chunk are processed.
type Epilogue uint8

const (
	// EpilogueScalar processes leftover elements one at a time.
	EpilogueScalar Epilogue = iota
	// EpilogueHalving processes leftover elements with vectors of N/2, N/4,
	// ..., 1 lanes.
	EpilogueHalving
)

func (e Epilogue) String() string {
	if e == EpilogueHalving {
		return "halving"
	}
	return "scalar"
}

// Policy is an execution policy for the algorithms in this package. It is a
// small value; the builder methods return modified copies.
//
//	p := algo.Simd.PreferSize(8).UnrollBy(2).HalvingEpilogue()
type Policy struct {
	size     int
	unroll   int
	aligned  bool
	epilogue Epilogue
}

// Simd is the default policy: native vector width, no unrolling, no
// alignment prologue and a scalar epilogue.
var Simd = Policy{}

// PreferAligned enables the alignment prologue.
func (p Policy) PreferAligned() Policy {
	p.aligned = true
	return p
}

// UnrollBy processes k full chunks per loop iteration. Values below 2
// disable unrolling. Unrolling never changes results.
func (p Policy) UnrollBy(k int) Policy {
	if k < 2 {
		if l := hwy.Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
			l.Debug("algo: unroll factor ignored", "requested", k)
		}
		k = 0
	}
	p.unroll = k
	return p
}

// PreferSize requests vectors of n lanes. The request is resolved per lane
// type by hwy.SelectTag, so unsupported counts degrade to a single lane and
// n <= 0 restores the native width.
func (p Policy) PreferSize(n int) Policy {
	p.size = max(n, 0)
	return p
}

// ScalarEpilogue processes leftover elements one at a time.
func (p Policy) ScalarEpilogue() Policy {
	p.epilogue = EpilogueScalar
	return p
}

// HalvingEpilogue processes leftover elements with halving widths.
func (p Policy) HalvingEpilogue() Policy {
	p.epilogue = EpilogueHalving
	return p
}

// Size returns the requested lane count, 0 for native.
func (p Policy) Size() int { return p.size }

// Unroll returns the unroll factor, 0 when disabled.
func (p Policy) Unroll() int { return p.unroll }

// Aligned reports whether the alignment prologue is enabled.
func (p Policy) Aligned() bool { return p.aligned }

// Epilogue returns the epilogue strategy.
func (p Policy) Epilogue() Epilogue { return p.epilogue }

func (p Policy) String() string {
	size := "native"
	if p.size > 0 {
		size = fmt.Sprint(p.size)
	}
	return fmt.Sprintf("simd(size=%s unroll=%d aligned=%t epilogue=%s)",
		size, p.unroll, p.aligned, p.epilogue)
}

// Tag resolves the policy's vector width for lane type T.
func Tag[T hwy.Lanes](p Policy) hwy.Tag[T] {
	return hwy.SelectTag[T](p.size)
}
