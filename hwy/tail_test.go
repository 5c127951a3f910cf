package hwy

import (
	"slices"
	"testing"
)

func TestProcessWithTail(t *testing.T) {
	d := SelectTag[float32](4)
	for _, size := range []int{0, 1, 3, 4, 5, 8, 11} {
		data := make([]float32, size)
		for i := range data {
			data[i] = float32(i)
		}
		out := make([]float32, size)

		ProcessWithTail(d, size,
			func(offset int) {
				v := d.Load(data[offset:])
				Store(Add(v, v), out[offset:])
			},
			func(offset, count int) {
				mask := TailMask(d, count)
				v := MaskLoad(mask, data[offset:])
				MaskStore(mask, Add(v, v), out[offset:])
			},
		)

		for i := range out {
			if out[i] != 2*data[i] {
				t.Errorf("size %d: out[%d] = %v, want %v", size, i, out[i], 2*data[i])
			}
		}
	}
}

func TestProcessWithTailNoMask(t *testing.T) {
	d := SelectTag[int32](4)
	var offsets []int
	ProcessWithTailNoMask(d, 10, func(offset int) { offsets = append(offsets, offset) })
	if !slices.Equal(offsets, []int{0, 4, 6}) {
		t.Errorf("offsets: got %v, want [0 4 6]", offsets)
	}

	offsets = nil
	ProcessWithTailNoMask(d, 0, func(offset int) { offsets = append(offsets, offset) })
	if len(offsets) != 0 {
		t.Errorf("size 0: got %v", offsets)
	}
}

func TestAlignedSize(t *testing.T) {
	d := SelectTag[float64](4)
	tests := []struct{ in, want int }{{0, 0}, {1, 4}, {4, 4}, {5, 8}}
	for _, tt := range tests {
		if got := AlignedSize(d, tt.in); got != tt.want {
			t.Errorf("AlignedSize(%d): got %d, want %d", tt.in, got, tt.want)
		}
		if IsAligned(d, tt.in) != (tt.in%4 == 0) {
			t.Errorf("IsAligned(%d) wrong", tt.in)
		}
	}
}
