package hwy

import "math/bits"

// Compress packs the lanes where mask is active to the front of the result
// and returns how many were packed. Remaining lanes are zero.
func Compress[T Lanes](v Vec[T], mask Mask[T]) (Vec[T], int) {
	r := Vec[T]{n: v.n}
	count := 0
	for i := range min(v.n, mask.n) {
		if mask.bits&(1<<uint(i)) != 0 {
			r.data[count] = v.data[i]
			count++
		}
	}
	return r, count
}

// CompressStore writes the lanes where mask is active contiguously to dst
// and returns how many were written. It never writes past len(dst).
func CompressStore[T Lanes](v Vec[T], mask Mask[T], dst []T) int {
	compressed, count := Compress(v, mask)
	count = min(count, len(dst))
	copy(dst[:count], compressed.data[:count])
	return count
}

// CountTrue counts true lanes in mask.
// This is a function wrapper around Mask.CountTrue() for consistency.
func CountTrue[T Lanes](mask Mask[T]) int {
	return mask.CountTrue()
}

// AllTrue returns true if all lanes are true.
func AllTrue[T Lanes](mask Mask[T]) bool {
	return mask.AllTrue()
}

// AllFalse returns true if all lanes are false.
func AllFalse[T Lanes](mask Mask[T]) bool {
	return mask.AllFalse()
}

// FindFirstTrue returns index of first true lane, or -1 if none.
func FindFirstTrue[T Lanes](mask Mask[T]) int {
	if mask.bits == 0 {
		return -1
	}
	return bits.TrailingZeros64(mask.bits)
}

// FindLastTrue returns index of last true lane, or -1 if none.
func FindLastTrue[T Lanes](mask Mask[T]) int {
	if mask.bits == 0 {
		return -1
	}
	return 63 - bits.LeadingZeros64(mask.bits)
}

// BitsFromMask converts mask to bitmask integer.
// Lane i corresponds to bit i of the result.
func BitsFromMask[T Lanes](mask Mask[T]) uint64 {
	return mask.bits
}

func maskBinary[T Lanes](a, b Mask[T], fn func(x, y uint64) uint64) Mask[T] {
	n := min(a.n, b.n)
	return Mask[T]{n: n, bits: fn(a.bits, b.bits) & laneBits(n)}
}

// MaskAnd performs bitwise AND on two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	return maskBinary(a, b, func(x, y uint64) uint64 { return x & y })
}

// MaskOr performs bitwise OR on two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	return maskBinary(a, b, func(x, y uint64) uint64 { return x | y })
}

// MaskXor performs bitwise XOR on two masks.
func MaskXor[T Lanes](a, b Mask[T]) Mask[T] {
	return maskBinary(a, b, func(x, y uint64) uint64 { return x ^ y })
}

// MaskAndNot performs (~a) & b on masks: lanes active in b but not in a.
func MaskAndNot[T Lanes](a, b Mask[T]) Mask[T] {
	return maskBinary(a, b, func(x, y uint64) uint64 { return ^x & y })
}

// MaskNot inverts all lanes of the mask.
func MaskNot[T Lanes](mask Mask[T]) Mask[T] {
	return Mask[T]{n: mask.n, bits: ^mask.bits & laneBits(mask.n)}
}
