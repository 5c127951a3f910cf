package hwy

import "math"

// ConvertTo converts each lane of v to U with Go conversion semantics
// (floats truncate toward zero when converted to integers; out-of-range
// results are implementation-defined). The lane count is preserved.
func ConvertTo[U, T Lanes](v Vec[T]) Vec[U] {
	r := Vec[U]{n: v.n}
	for i := range v.n {
		r.data[i] = U(v.data[i])
	}
	return r
}

// MaskCast reinterprets a mask for lanes of type U with the same lane count.
func MaskCast[U, T Lanes](m Mask[T]) Mask[U] {
	return Mask[U]{n: m.n, bits: m.bits}
}

// Round rounds each lane to the nearest integer, ties away from zero.
func Round[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return T(math.Round(float64(x))) })
}

// Trunc truncates each lane toward zero.
func Trunc[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return T(math.Trunc(float64(x))) })
}

// Floor rounds each lane toward negative infinity.
func Floor[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return T(math.Floor(float64(x))) })
}

// Ceil rounds each lane toward positive infinity.
func Ceil[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return T(math.Ceil(float64(x))) })
}

// PromoteLower converts the lower half of v's lanes (the first n/2) to U.
// With U wider than T this is Highway's PromoteLowerTo.
func PromoteLower[U, T Lanes](v Vec[T]) Vec[U] {
	lo, _ := Split(v, v.n/2)
	return ConvertTo[U](lo)
}

// PromoteUpper converts the remaining upper lanes of v to U.
func PromoteUpper[U, T Lanes](v Vec[T]) Vec[U] {
	_, hi := Split(v, v.n/2)
	return ConvertTo[U](hi)
}

// DemoteTo converts integer lanes to U, saturating values outside U's
// range instead of wrapping.
//
//	hwy.DemoteTo[uint8](d.Load([]int16{-5, 100, 300}))  // [0 100 255]
func DemoteTo[U, T Integers](v Vec[T]) Vec[U] {
	r := Vec[U]{n: v.n}
	for i := range v.n {
		r.data[i] = saturateTo[U](v.data[i])
	}
	return r
}

// DemoteTwoTo demotes lo followed by hi into a single vector, as when
// narrowing two full vectors into one of half-width lanes.
func DemoteTwoTo[U, T Integers](lo, hi Vec[T]) Vec[U] {
	return DemoteTo[U](Concat(lo, hi))
}

func saturateTo[U, T Integers](x T) U {
	if x < 0 {
		if !isSigned[U]() {
			return 0
		}
		if sizeOf[U]() < sizeOf[T]() && x < T(minOf[U]()) {
			return minOf[U]()
		}
		return U(x)
	}
	if uint64(x) > uint64(maxOf[U]()) {
		return maxOf[U]()
	}
	return U(x)
}
