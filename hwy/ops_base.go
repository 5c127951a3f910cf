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

import "math"

// This file provides the lane-wise arithmetic, comparison and selection
// operations. Binary operations on vectors of different lane counts work on
// the shorter of the two.

func binary[T Lanes](a, b Vec[T], fn func(x, y T) T) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.data[i] = fn(a.data[i], b.data[i])
	}
	return r
}

func unary[T Lanes](v Vec[T], fn func(x T) T) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = fn(v.data[i])
	}
	return r
}

func compare[T Lanes](a, b Vec[T], fn func(x, y T) bool) Mask[T] {
	n := min(a.n, b.n)
	m := Mask[T]{n: n}
	for i := range n {
		if fn(a.data[i], b.data[i]) {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

func test[T Lanes](v Vec[T], fn func(x T) bool) Mask[T] {
	m := Mask[T]{n: v.n}
	for i := range v.n {
		if fn(v.data[i]) {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x * y })
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x / y })
}

// Neg negates all lanes. Unsigned lanes wrap around.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return -x })
}

// Abs computes absolute value. The most negative signed integer stays
// unchanged, as with two's complement hardware.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

// Min returns element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T {
		if x < y {
			return x
		}
		return y
	})
}

// Max returns element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T {
		if x > y {
			return x
		}
		return y
	})
}

// Sqrt computes the square root of each lane.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return T(math.Sqrt(float64(x))) })
}

// RoundToEven rounds each lane to the nearest integer, ties to even.
func RoundToEven[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return T(math.RoundToEven(float64(x))) })
}

// MulAdd computes a*b + c with separate rounding of the product.
func MulAdd[T Lanes](a, b, c Vec[T]) Vec[T] {
	n := min(a.n, b.n, c.n)
	r := Vec[T]{n: n}
	for i := range n {
		p := T(a.data[i] * b.data[i])
		r.data[i] = p + c.data[i]
	}
	return r
}

// FMA computes a*b + c with a single rounding.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(a.n, b.n, c.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.data[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return r
}

// ReduceSum returns the sum of all lanes, added left to right starting at
// lane 0. Lane 0 seeds the sum, so a single -0 lane stays -0.
// It returns the zero value for an empty vector.
func ReduceSum[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	sum := v.data[0]
	for i := 1; i < v.n; i++ {
		sum += v.data[i]
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes.
// It returns the zero value for an empty vector.
func ReduceMin[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	r := v.data[0]
	for i := 1; i < v.n; i++ {
		if v.data[i] < r {
			r = v.data[i]
		}
	}
	return r
}

// ReduceMax returns the maximum value across all lanes.
// It returns the zero value for an empty vector.
func ReduceMax[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	r := v.data[0]
	for i := 1; i < v.n; i++ {
		if v.data[i] > r {
			r = v.data[i]
		}
	}
	return r
}

// Equal returns a mask of lanes where a == b.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// NotEqual returns a mask of lanes where a != b.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x != y })
}

// Less returns a mask of lanes where a < b.
func Less[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// LessEqual returns a mask of lanes where a <= b.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// Greater returns a mask of lanes where a > b.
func Greater[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// GreaterEqual returns a mask of lanes where a >= b.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x >= y })
}

// IsNaN returns a mask of lanes holding NaN.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	return test(v, func(x T) bool { return x != x })
}

// IsInf returns a mask of infinite lanes. sign > 0 matches +Inf only,
// sign < 0 matches -Inf only, sign == 0 matches both.
func IsInf[T Floats](v Vec[T], sign int) Mask[T] {
	return test(v, func(x T) bool { return math.IsInf(float64(x), sign) })
}

// IsFinite returns a mask of lanes that are neither NaN nor infinite.
func IsFinite[T Floats](v Vec[T]) Mask[T] {
	return test(v, func(x T) bool {
		f := float64(x)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
}

// TestBit returns a mask of lanes where the given bit is set.
func TestBit[T Integers](v Vec[T], bit int) Mask[T] {
	return test(v, func(x T) bool {
		if bit < 0 || bit >= 8*sizeOf[T]() {
			return false
		}
		return (x>>uint(bit))&1 != 0
	})
}

// IfThenElse selects a[i] where mask lane i is active and b[i] otherwise.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(mask.n, a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		if mask.bits&(1<<uint(i)) != 0 {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// IfThenElseZero returns a where mask is active and zero elsewhere.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	return IfThenElse(mask, a, Vec[T]{n: a.n})
}

// IfThenZeroElse returns zero where mask is active and b elsewhere.
func IfThenZeroElse[T Lanes](mask Mask[T], b Vec[T]) Vec[T] {
	return IfThenElse(mask, Vec[T]{n: b.n}, b)
}

// ZeroIfNegative sets negative lanes to zero.
func ZeroIfNegative[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T {
		if x < 0 {
			return 0
		}
		return x
	})
}
