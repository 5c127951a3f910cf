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

package hwy

import (
	"context"
	"fmt"
	"log/slog"
)

// ABI identifies how the lanes of a Tag map onto the hardware.
type ABI uint8

const (
	// ABIScalar is a single lane processed with scalar instructions.
	ABIScalar ABI = iota

	// ABINative fills exactly one register of the current dispatch level.
	ABINative

	// ABIFixed is an emulated fixed lane count that does not match the
	// register width.
	ABIFixed
)

// String returns the ABI name.
func (a ABI) String() string {
	switch a {
	case ABIScalar:
		return "scalar"
	case ABINative:
		return "native"
	case ABIFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Tag is a resolved vector shape for lane type T: a lane count and the ABI
// it maps to. Every vector created through a Tag has Lanes() lanes.
//
// The zero Tag is not valid; use ScalableTag, ScalarTag or SelectTag.
type Tag[T Lanes] struct {
	lanes int
	abi   ABI
}

// ScalableTag adapts to the widest SIMD available at runtime.
// This is the recommended tag for most use cases. With the scalar dispatch
// level it resolves to a single lane.
//
// Usage:
//
//	d := hwy.ScalableTag[float32]()
//	lanes := d.Lanes()
func ScalableTag[T Lanes]() Tag[T] {
	if currentLevel == DispatchScalar {
		return ScalarTag[T]()
	}
	n := currentWidth / sizeOf[T]()
	if n <= 1 {
		return ScalarTag[T]()
	}
	return Tag[T]{lanes: min(n, MaxFixedLanes), abi: ABINative}
}

// ScalarTag returns the single-lane tag.
func ScalarTag[T Lanes]() Tag[T] {
	return Tag[T]{lanes: 1, abi: ABIScalar}
}

// SelectTag resolves a requested lane count for T to a supported shape.
//
//   - n <= 0 selects the native width (ScalableTag).
//   - n equal to the native lane count selects the native width.
//   - 1 <= n <= MaxFixedLanes is supported through emulation (n == 1 is scalar).
//   - anything larger degrades to the scalar tag.
//
// SelectTag never fails.
func SelectTag[T Lanes](n int) Tag[T] {
	if n <= 0 {
		return ScalableTag[T]()
	}
	if native := ScalableTag[T](); native.lanes == n {
		return native
	}
	switch {
	case n == 1:
		return ScalarTag[T]()
	case n <= MaxFixedLanes:
		return Tag[T]{lanes: n, abi: ABIFixed}
	}
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		var zero T
		l.Debug("hwy: unsupported lane count, using scalar",
			"type", fmt.Sprintf("%T", zero),
			"requested", n,
			"max", MaxFixedLanes,
		)
	}
	return ScalarTag[T]()
}

// DFromV returns a tag with v's lane count, for building constants that
// match an existing vector. A zero-lane vector, such as one half of
// Split(v, 0), yields a zero-lane tag rather than the native one.
//
//	hwy.Mul(v, hwy.DFromV(v).Set(2))
func DFromV[T Lanes](v Vec[T]) Tag[T] {
	if v.n == 0 {
		return Tag[T]{abi: ABIFixed}
	}
	return SelectTag[T](v.n)
}

// FixedTag128 returns the tag for as many T as fit in 128 bits.
func FixedTag128[T Lanes]() Tag[T] {
	return SelectTag[T](16 / sizeOf[T]())
}

// FixedTag256 returns the tag for as many T as fit in 256 bits.
func FixedTag256[T Lanes]() Tag[T] {
	return SelectTag[T](32 / sizeOf[T]())
}

// FixedTag512 returns the tag for as many T as fit in 512 bits.
func FixedTag512[T Lanes]() Tag[T] {
	return SelectTag[T](64 / sizeOf[T]())
}

// Lanes returns the number of lanes of vectors created by this tag.
func (d Tag[T]) Lanes() int {
	return d.lanes
}

// ABI returns how the tag maps onto the hardware.
func (d Tag[T]) ABI() ABI {
	return d.abi
}

// Width returns the vector size in bytes.
func (d Tag[T]) Width() int {
	return d.lanes * sizeOf[T]()
}

// Name returns a human-readable name such as "avx2x8", "fixedx3" or "scalar".
func (d Tag[T]) Name() string {
	switch d.abi {
	case ABIScalar:
		return "scalar"
	case ABINative:
		return fmt.Sprintf("%sx%d", currentName, d.lanes)
	default:
		return fmt.Sprintf("fixedx%d", d.lanes)
	}
}

// Half returns the tag with half as many lanes, at least one.
func (d Tag[T]) Half() Tag[T] {
	return SelectTag[T](max(d.lanes/2, 1))
}

// Double returns the tag with twice as many lanes, capped at MaxFixedLanes.
func (d Tag[T]) Double() Tag[T] {
	return SelectTag[T](min(d.lanes*2, MaxFixedLanes))
}

// Load creates a vector from the first Lanes() elements of src.
// If src is shorter, the missing lanes are zero.
func (d Tag[T]) Load(src []T) Vec[T] {
	v := Vec[T]{n: d.lanes}
	copy(v.data[:d.lanes], src)
	return v
}

// Set creates a vector with all lanes set to value.
func (d Tag[T]) Set(value T) Vec[T] {
	v := Vec[T]{n: d.lanes}
	for i := range d.lanes {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func (d Tag[T]) Zero() Vec[T] {
	return Vec[T]{n: d.lanes}
}

// Iota creates a vector whose lane i holds start + i.
func (d Tag[T]) Iota(start T) Vec[T] {
	v := Vec[T]{n: d.lanes}
	for i := range d.lanes {
		v.data[i] = start + T(i)
	}
	return v
}

// Generate creates a vector whose lane i holds fn(i).
func (d Tag[T]) Generate(fn func(i int) T) Vec[T] {
	v := Vec[T]{n: d.lanes}
	for i := range d.lanes {
		v.data[i] = fn(i)
	}
	return v
}

// FirstN creates a mask with the first n lanes active.
func (d Tag[T]) FirstN(n int) Mask[T] {
	n = max(0, min(n, d.lanes))
	return Mask[T]{n: d.lanes, bits: laneBits(n)}
}

// MaskFromBits creates a mask from an integer, bit i for lane i.
// Bits beyond Lanes() are ignored.
func (d Tag[T]) MaskFromBits(bits uint64) Mask[T] {
	return Mask[T]{n: d.lanes, bits: bits & laneBits(d.lanes)}
}

// Load creates a native-width vector by loading data from a slice.
func Load[T Lanes](src []T) Vec[T] {
	return ScalableTag[T]().Load(src)
}

// Set creates a native-width vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	return ScalableTag[T]().Set(value)
}

// Zero creates a native-width vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return ScalableTag[T]().Zero()
}

// Iota creates a native-width vector [0, 1, 2, ...].
func Iota[T Lanes]() Vec[T] {
	return ScalableTag[T]().Iota(0)
}

// FirstN creates a native-width mask with the first n lanes set to true.
func FirstN[T Lanes](n int) Mask[T] {
	return ScalableTag[T]().FirstN(n)
}

// MaskFromBits creates a native-width mask from a bitmask integer.
func MaskFromBits[T Lanes](bits uint64) Mask[T] {
	return ScalableTag[T]().MaskFromBits(bits)
}
