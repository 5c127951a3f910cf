package hwy

// Gather and scatter address memory through a vector of indices. Indices
// outside the slice are skipped: gathered lanes stay zero and scattered
// lanes are not written.

// GatherIndex loads src[indices[i]] into lane i.
func GatherIndex[T Lanes, I SignedInts](src []T, indices Vec[I]) Vec[T] {
	return GatherIndexOffset(src, 0, indices, 1)
}

// GatherIndexMasked is GatherIndex for the lanes active in mask. Inactive
// lanes are zero.
func GatherIndexMasked[T Lanes, I SignedInts](src []T, indices Vec[I], mask Mask[T]) Vec[T] {
	return IfThenElseZero(mask, GatherIndex(src, indices))
}

// GatherIndexOffset loads src[base + indices[i]*scale] into lane i, for
// strided access.
func GatherIndexOffset[T Lanes, I SignedInts](src []T, base int, indices Vec[I], scale int) Vec[T] {
	r := Vec[T]{n: indices.n}
	for i := range indices.n {
		if idx := base + int(indices.data[i])*scale; idx >= 0 && idx < len(src) {
			r.data[i] = src[idx]
		}
	}
	return r
}

// ScatterIndex stores lane i of v to dst[indices[i]]. Lanes are stored in
// order, so the highest lane wins on duplicate indices.
func ScatterIndex[T Lanes, I SignedInts](v Vec[T], dst []T, indices Vec[I]) {
	ScatterIndexMasked(v, dst, indices, SelectTag[T](v.n).FirstN(v.n))
}

// ScatterIndexMasked is ScatterIndex for the lanes active in mask.
func ScatterIndexMasked[T Lanes, I SignedInts](v Vec[T], dst []T, indices Vec[I], mask Mask[T]) {
	for i := range min(v.n, indices.n, mask.n) {
		if mask.bits&(1<<uint(i)) == 0 {
			continue
		}
		if idx := int(indices.data[i]); idx >= 0 && idx < len(dst) {
			dst[idx] = v.data[i]
		}
	}
}

// IndicesStride returns the index vector [start, start+stride, ...] with
// d's lane count.
func IndicesStride[I SignedInts](d Tag[I], start, stride I) Vec[I] {
	return d.Generate(func(i int) I { return start + I(i)*stride })
}
