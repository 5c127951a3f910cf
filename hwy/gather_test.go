package hwy

import (
	"slices"
	"testing"
)

func TestGatherIndex(t *testing.T) {
	src := []float32{10, 20, 30, 40}
	idx := SelectTag[int32](4).Load([]int32{3, 0, -1, 9})

	if got := GatherIndex(src, idx).Data(); !slices.Equal(got, []float32{40, 10, 0, 0}) {
		t.Errorf("GatherIndex: got %v", got)
	}

	mask := SelectTag[float32](4).MaskFromBits(0b0010)
	if got := GatherIndexMasked(src, idx, mask).Data(); !slices.Equal(got, []float32{0, 10, 0, 0}) {
		t.Errorf("GatherIndexMasked: got %v", got)
	}
}

func TestGatherIndexOffset(t *testing.T) {
	// Column 1 of a 3x3 row-major matrix.
	m := []int64{0, 1, 2, 3, 4, 5, 6, 7, 8}
	rows := IndicesStride(SelectTag[int64](3), 0, 1)
	if got := GatherIndexOffset(m, 1, rows, 3).Data(); !slices.Equal(got, []int64{1, 4, 7}) {
		t.Errorf("GatherIndexOffset: got %v", got)
	}
}

func TestScatterIndex(t *testing.T) {
	dst := make([]int16, 5)
	v := SelectTag[int16](4).Load([]int16{1, 2, 3, 4})
	idx := SelectTag[int8](4).Load([]int8{4, 0, 4, 7})

	ScatterIndex(v, dst, idx)
	if !slices.Equal(dst, []int16{2, 0, 0, 0, 3}) {
		t.Errorf("ScatterIndex: got %v", dst)
	}

	clear(dst)
	ScatterIndexMasked(v, dst, idx, SelectTag[int16](4).MaskFromBits(0b0001))
	if !slices.Equal(dst, []int16{0, 0, 0, 0, 1}) {
		t.Errorf("ScatterIndexMasked: got %v", dst)
	}
}

func TestIndicesStride(t *testing.T) {
	if got := IndicesStride(SelectTag[int32](4), 5, -2).Data(); !slices.Equal(got, []int32{5, 3, 1, -1}) {
		t.Errorf("IndicesStride: got %v", got)
	}
}
