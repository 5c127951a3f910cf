package hwy

import (
	"math/bits"
	"unsafe"
)

// Bitwise operations work on the raw lane bit patterns, so they apply to
// float lanes as well (e.g. And with SignBit to extract signs).

// toBits returns the bit pattern of x in the low sizeof(T) bytes.
func toBits[T Lanes](x T) uint64 {
	p := unsafe.Pointer(&x)
	switch sizeOf[T]() {
	case 1:
		return uint64(*(*uint8)(p))
	case 2:
		return uint64(*(*uint16)(p))
	case 4:
		return uint64(*(*uint32)(p))
	}
	return *(*uint64)(p)
}

// fromBits reinterprets the low sizeof(T) bytes of b as a T.
func fromBits[T Lanes](b uint64) T {
	var x T
	p := unsafe.Pointer(&x)
	switch sizeOf[T]() {
	case 1:
		*(*uint8)(p) = uint8(b)
	case 2:
		*(*uint16)(p) = uint16(b)
	case 4:
		*(*uint32)(p) = uint32(b)
	default:
		*(*uint64)(p) = b
	}
	return x
}

// laneMask returns a word with the low 8*sizeof(T) bits set.
func laneMask[T Lanes]() uint64 {
	return laneBits(8 * sizeOf[T]())
}

func popcount64(x uint64) int {
	return bits.OnesCount64(x)
}

func bitwise[T Lanes](a, b Vec[T], fn func(x, y uint64) uint64) Vec[T] {
	return binary(a, b, func(x, y T) T { return fromBits[T](fn(toBits(x), toBits(y))) })
}

// And performs bitwise AND.
func And[T Lanes](a, b Vec[T]) Vec[T] {
	return bitwise(a, b, func(x, y uint64) uint64 { return x & y })
}

// Or performs bitwise OR.
func Or[T Lanes](a, b Vec[T]) Vec[T] {
	return bitwise(a, b, func(x, y uint64) uint64 { return x | y })
}

// Xor performs bitwise XOR.
func Xor[T Lanes](a, b Vec[T]) Vec[T] {
	return bitwise(a, b, func(x, y uint64) uint64 { return x ^ y })
}

// AndNot computes (NOT a) AND b, matching Highway's argument order.
func AndNot[T Lanes](a, b Vec[T]) Vec[T] {
	return bitwise(a, b, func(x, y uint64) uint64 { return ^x & y })
}

// Not performs bitwise NOT.
func Not[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return fromBits[T](^toBits(x) & laneMask[T]()) })
}

// SignBit returns a vector of d's shape with only the sign bit set in each
// lane. For unsigned lanes this is the top bit.
func SignBit[T Lanes](d Tag[T]) Vec[T] {
	return d.Set(fromBits[T](uint64(1) << uint(8*sizeOf[T]()-1)))
}

// ShiftLeft shifts each lane left by bits.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	return unary(v, func(x T) T { return x << uint(bits) })
}

// ShiftRight shifts each lane right by bits. Signed lanes shift in copies
// of the sign bit.
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	return unary(v, func(x T) T { return x >> uint(bits) })
}

// PopCount counts the set bits of each lane.
func PopCount[T Integers](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return T(bits.OnesCount64(toBits(x))) })
}

// LeadingZeroCount counts leading zero bits of each lane within the lane width.
func LeadingZeroCount[T Integers](v Vec[T]) Vec[T] {
	width := 8 * sizeOf[T]()
	return unary(v, func(x T) T {
		return T(bits.LeadingZeros64(toBits(x)) - (64 - width))
	})
}

// TrailingZeroCount counts trailing zero bits of each lane. A zero lane
// yields the lane width in bits.
func TrailingZeroCount[T Integers](v Vec[T]) Vec[T] {
	width := 8 * sizeOf[T]()
	return unary(v, func(x T) T {
		b := toBits(x)
		if b == 0 {
			return T(width)
		}
		return T(bits.TrailingZeros64(b))
	})
}
