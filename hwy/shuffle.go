package hwy

// This file provides shuffle, permutation and resizing operations.

// Reverse reverses the order of lanes in the vector.
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = v.data[v.n-1-i]
	}
	return r
}

// Broadcast broadcasts a single lane to all lanes in the vector.
// An out of range lane yields a zero vector.
func Broadcast[T Lanes](v Vec[T], lane int) Vec[T] {
	r := Vec[T]{n: v.n}
	if lane < 0 || lane >= v.n {
		return r
	}
	for i := range v.n {
		r.data[i] = v.data[lane]
	}
	return r
}

// GetLane returns lane idx, or zero if idx is out of range.
func GetLane[T Lanes](v Vec[T], idx int) T {
	return v.Lane(idx)
}

// InsertLane returns a copy of v with lane idx set to val.
// An out of range idx returns v unchanged.
func InsertLane[T Lanes](v Vec[T], idx int, val T) Vec[T] {
	if idx >= 0 && idx < v.n {
		v.data[idx] = val
	}
	return v
}

// PermuteZero is the source index a Permute generator returns to request a
// zero lane.
const PermuteZero = -1

// Permute builds a vector whose lane i is v[idx(i, n)], n = v.NumLanes().
// Indices outside [0, n), including PermuteZero, produce zero lanes.
//
//	// rotate left by one
//	hwy.Permute(v, func(i, n int) int { return (i + 1) % n })
func Permute[T Lanes](v Vec[T], idx func(i, n int) int) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		if j := idx(i, v.n); j >= 0 && j < v.n {
			r.data[i] = v.data[j]
		}
	}
	return r
}

// DupEven duplicates even lanes into the following odd lane.
// [0,1,2,3] -> [0,0,2,2]
func DupEven[T Lanes](v Vec[T]) Vec[T] {
	return Permute(v, func(i, _ int) int { return i &^ 1 })
}

// DupOdd duplicates odd lanes into the preceding even lane.
// [0,1,2,3] -> [1,1,3,3]. A trailing even lane without partner is kept.
func DupOdd[T Lanes](v Vec[T]) Vec[T] {
	return Permute(v, func(i, n int) int {
		if j := i | 1; j < n {
			return j
		}
		return i
	})
}

// RotateLanes rotates lanes toward lower indices by k: lane i of the result
// is v[(i+k) mod n]. Negative k rotates the other way.
// [1,2,3,4] with k=1 -> [2,3,4,1]
func RotateLanes[T Lanes](v Vec[T], k int) Vec[T] {
	return Permute(v, func(i, n int) int {
		return ((i+k)%n + n) % n
	})
}

// SwapNeighbors exchanges adjacent groups of k lanes. k < 1 is treated as 1.
// A trailing group without a partner keeps its lanes.
// [0,1,2,3] with k=1 -> [1,0,3,2]; with k=2 -> [2,3,0,1]
func SwapNeighbors[T Lanes](v Vec[T], k int) Vec[T] {
	k = max(k, 1)
	return Permute(v, func(i, n int) int {
		j := i + k
		if i%(2*k) >= k {
			j = i - k
		}
		if j >= n {
			return i
		}
		return j
	})
}

// SlideUpLanes shifts all lanes up (toward higher indices) by offset.
// Lower lanes are filled with zeros.
// [1,2,3,4] with offset=1 -> [0,1,2,3]
func SlideUpLanes[T Lanes](v Vec[T], offset int) Vec[T] {
	return Permute(v, func(i, _ int) int {
		if offset <= 0 {
			return i
		}
		return i - offset
	})
}

// SlideDownLanes shifts all lanes down (toward lower indices) by offset.
// Upper lanes are filled with zeros.
// [1,2,3,4] with offset=1 -> [2,3,4,0]
func SlideDownLanes[T Lanes](v Vec[T], offset int) Vec[T] {
	return Permute(v, func(i, _ int) int {
		if offset <= 0 {
			return i
		}
		return i + offset
	})
}

// InterleaveLower interleaves the lower halves of a and b.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
func InterleaveLower[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := 0; i+1 < n; i += 2 {
		r.data[i] = a.data[i/2]
		r.data[i+1] = b.data[i/2]
	}
	if n%2 == 1 {
		r.data[n-1] = a.data[n/2]
	}
	return r
}

// InterleaveUpper interleaves the upper halves of a and b.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
func InterleaveUpper[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	half := n / 2
	r := Vec[T]{n: n}
	for i := 0; i+1 < n; i += 2 {
		r.data[i] = a.data[half+i/2]
		r.data[i+1] = b.data[half+i/2]
	}
	if n%2 == 1 {
		r.data[n-1] = a.data[n-1]
	}
	return r
}

// Resize converts v to d's lane count. Lanes beyond v's width are zero,
// lanes beyond d's width are dropped.
func Resize[T Lanes](d Tag[T], v Vec[T]) Vec[T] {
	r := Vec[T]{n: d.lanes}
	copy(r.data[:d.lanes], v.data[:v.n])
	return r
}

// Split returns lanes [0, at) and [at, n) of v as two vectors.
// at is clamped to [0, n].
func Split[T Lanes](v Vec[T], at int) (lo, hi Vec[T]) {
	at = max(0, min(at, v.n))
	lo = Vec[T]{n: at}
	copy(lo.data[:at], v.data[:at])
	hi = Vec[T]{n: v.n - at}
	copy(hi.data[:v.n-at], v.data[at:v.n])
	return lo, hi
}

// Concat returns the lanes of a followed by the lanes of b. Lanes beyond
// MaxFixedLanes are dropped.
func Concat[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n+b.n, MaxFixedLanes)}
	copy(r.data[:a.n], a.data[:a.n])
	copy(r.data[a.n:r.n], b.data[:b.n])
	return r
}
