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

import "math/bits"

// This file provides saturated arithmetic and related operations.
// Saturated operations clamp results to the type's valid range instead of wrapping.

func isSigned[T Integers]() bool {
	var zero T
	return zero-1 < 0
}

func minOf[T Integers]() T {
	if !isSigned[T]() {
		return 0
	}
	return T(1) << (8*sizeOf[T]() - 1)
}

func maxOf[T Integers]() T {
	return ^minOf[T]()
}

// SaturatedAdd performs element-wise addition with saturation.
// For example, uint8: 250 + 10 = 255 (not 4)
func SaturatedAdd[T Integers](a, b Vec[T]) Vec[T] {
	return binary(a, b, saturatedAdd[T])
}

// SaturatedSub performs element-wise subtraction with saturation.
// For example, uint8: 10 - 20 = 0 (not 246)
func SaturatedSub[T Integers](a, b Vec[T]) Vec[T] {
	return binary(a, b, saturatedSub[T])
}

// Clamp clamps each element to the range [lo, hi].
func Clamp[T Lanes](v, lo, hi Vec[T]) Vec[T] {
	return Min(Max(v, lo), hi)
}

// AbsDiff computes |a - b| for each element without overflow for unsigned
// lanes.
func AbsDiff[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T {
		if x > y {
			return x - y
		}
		return y - x
	})
}

// Avg computes the rounded-up average (a + b + 1) / 2 without overflow.
func Avg[T Integers](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T {
		return (x | y) - ((x ^ y) >> 1)
	})
}

// MulHigh returns the upper half of the double-width product a * b.
func MulHigh[T Integers](a, b Vec[T]) Vec[T] {
	return binary(a, b, mulHigh[T])
}

func saturatedAdd[T Integers](a, b T) T {
	s := a + b
	if isSigned[T]() {
		if (a < 0) == (b < 0) && (s < 0) != (a < 0) {
			if a < 0 {
				return minOf[T]()
			}
			return maxOf[T]()
		}
		return s
	}
	if s < a {
		return maxOf[T]()
	}
	return s
}

func saturatedSub[T Integers](a, b T) T {
	d := a - b
	if isSigned[T]() {
		if (a < 0) != (b < 0) && (d < 0) != (a < 0) {
			if a < 0 {
				return minOf[T]()
			}
			return maxOf[T]()
		}
		return d
	}
	if b > a {
		return 0
	}
	return d
}

func mulHigh[T Integers](a, b T) T {
	width := 8 * sizeOf[T]()
	if width < 64 {
		if isSigned[T]() {
			return T((int64(a) * int64(b)) >> width)
		}
		return T((uint64(a) * uint64(b)) >> width)
	}
	hi, _ := bits.Mul64(uint64(a), uint64(b))
	if isSigned[T]() {
		if a < 0 {
			hi -= uint64(b)
		}
		if b < 0 {
			hi -= uint64(a)
		}
	}
	return T(hi)
}
