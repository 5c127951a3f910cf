// Package hwy provides portable fixed-width vector and mask values with
// runtime selection of the lane width.
//
// It follows the Highway C++ library's design philosophy: write once,
// run with the widest width available. A Tag resolves how many lanes a
// vector of a given scalar type has (native register width, an emulated
// fixed size, or a single scalar lane), and every vector built from that
// Tag carries that lane count for its whole lifetime.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-vsimd/hwy"
//
//	d := hwy.ScalableTag[float32]()
//	a := d.Load(data1)
//	b := d.Load(data2)
//	hwy.Store(hwy.Add(a, b), output)
//
// Vectors and masks are plain values: they own no heap memory, are never
// modified in place, and are safe to copy.
package hwy

// MaxFixedLanes is the largest lane count a vector can hold. It matches the
// lane count of a 512-bit register of bytes.
const MaxFixedLanes = 64

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a packed vector of NumLanes() values of type T.
//
// Vec instances should not be created directly; use a Tag's Load, Set,
// Zero or Iota, or the package-level helpers of the same names.
type Vec[T Lanes] struct {
	n    int
	data [MaxFixedLanes]T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Data returns a copy of the lanes as a slice.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Lane returns lane i, or the zero value when i is out of range.
func (v Vec[T]) Lane(i int) T {
	if i < 0 || i >= v.n {
		var zero T
		return zero
	}
	return v.data[i]
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation.
// It can be used with IfThenElse, MaskLoad, and MaskStore to perform
// conditional operations. Bit i of the mask corresponds to lane i.
//
// Mask instances should not be created directly; use comparison operations
// like Equal, Less, or Greater, or a Tag's FirstN.
type Mask[T Lanes] struct {
	n    int
	bits uint64
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// Bits returns the mask as an integer, lane i in bit i.
func (m Mask[T]) Bits() uint64 {
	return m.bits
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	return m.bits == laneBits(m.n)
}

// AllFalse returns true if no lane in the mask is active.
func (m Mask[T]) AllFalse() bool {
	return m.bits == 0
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	return m.bits != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	return popcount64(m.bits)
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits&(1<<uint(i)) != 0
}

// laneBits returns a word with the low n bits set.
func laneBits(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	if n <= 0 {
		return 0
	}
	return (uint64(1) << uint(n)) - 1
}
