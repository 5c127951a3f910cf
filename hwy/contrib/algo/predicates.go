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

// Predicate tests individual values or whole chunks. Apply must agree with
// Test on every lane and return a mask as wide as its argument.
type Predicate[T hwy.Lanes] interface {
	// Test reports whether a single value satisfies the predicate.
	Test(value T) bool

	// Apply returns a mask of the lanes that satisfy the predicate.
	Apply(v hwy.Vec[T]) hwy.Mask[T]
}

// splat broadcasts x to v's width.
func splat[T hwy.Lanes](v hwy.Vec[T], x T) hwy.Vec[T] {
	return hwy.DFromV(v).Set(x)
}

// GreaterThan returns true for values where v > threshold.
type GreaterThan[T hwy.Lanes] struct {
	Threshold T
}

func (p GreaterThan[T]) Test(value T) bool {
	return value > p.Threshold
}

func (p GreaterThan[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.Greater(v, splat(v, p.Threshold))
}

// LessThan returns true for values where v < threshold.
type LessThan[T hwy.Lanes] struct {
	Threshold T
}

func (p LessThan[T]) Test(value T) bool {
	return value < p.Threshold
}

func (p LessThan[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.Less(v, splat(v, p.Threshold))
}

// GreaterEqual returns true for values where v >= threshold.
type GreaterEqual[T hwy.Lanes] struct {
	Threshold T
}

func (p GreaterEqual[T]) Test(value T) bool {
	return value >= p.Threshold
}

func (p GreaterEqual[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.GreaterEqual(v, splat(v, p.Threshold))
}

// LessEqual returns true for values where v <= threshold.
type LessEqual[T hwy.Lanes] struct {
	Threshold T
}

func (p LessEqual[T]) Test(value T) bool {
	return value <= p.Threshold
}

func (p LessEqual[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.LessEqual(v, splat(v, p.Threshold))
}

// Equal returns true for values where v == value.
type Equal[T hwy.Lanes] struct {
	Value T
}

func (p Equal[T]) Test(value T) bool {
	return value == p.Value
}

func (p Equal[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.Equal(v, splat(v, p.Value))
}

// NotEqual returns true for values where v != value.
type NotEqual[T hwy.Lanes] struct {
	Value T
}

func (p NotEqual[T]) Test(value T) bool {
	return value != p.Value
}

func (p NotEqual[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.NotEqual(v, splat(v, p.Value))
}

// InRange returns true for values where min <= v <= max.
type InRange[T hwy.Lanes] struct {
	Min T
	Max T
}

func (p InRange[T]) Test(value T) bool {
	return value >= p.Min && value <= p.Max
}

func (p InRange[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.MaskAnd(
		hwy.GreaterEqual(v, splat(v, p.Min)),
		hwy.LessEqual(v, splat(v, p.Max)),
	)
}

// OutOfRange returns true for values where v < min or v > max.
type OutOfRange[T hwy.Lanes] struct {
	Min T
	Max T
}

func (p OutOfRange[T]) Test(value T) bool {
	return value < p.Min || value > p.Max
}

func (p OutOfRange[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.MaskOr(
		hwy.Less(v, splat(v, p.Min)),
		hwy.Greater(v, splat(v, p.Max)),
	)
}

// IsZero returns true for values where v == 0.
type IsZero[T hwy.Lanes] struct{}

func (IsZero[T]) Test(value T) bool {
	return value == 0
}

func (IsZero[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.Equal(v, hwy.DFromV(v).Zero())
}

// IsNonZero returns true for values where v != 0.
type IsNonZero[T hwy.Lanes] struct{}

func (IsNonZero[T]) Test(value T) bool {
	return value != 0
}

func (IsNonZero[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.NotEqual(v, hwy.DFromV(v).Zero())
}

// IsPositive returns true for values where v > 0.
type IsPositive[T hwy.Lanes] struct{}

func (IsPositive[T]) Test(value T) bool {
	return value > 0
}

func (IsPositive[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.Greater(v, hwy.DFromV(v).Zero())
}

// IsNegative returns true for values where v < 0.
type IsNegative[T hwy.Lanes] struct{}

func (IsNegative[T]) Test(value T) bool {
	return value < 0
}

func (IsNegative[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.Less(v, hwy.DFromV(v).Zero())
}

// IsNaN returns true for NaN values.
type IsNaN[T hwy.Floats] struct{}

func (IsNaN[T]) Test(value T) bool {
	return value != value
}

func (IsNaN[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.IsNaN(v)
}

// Not negates a predicate.
type Not[T hwy.Lanes] struct {
	P Predicate[T]
}

func (p Not[T]) Test(value T) bool {
	return !p.P.Test(value)
}

func (p Not[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return hwy.MaskNot(p.P.Apply(v))
}
