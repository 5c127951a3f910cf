package hwy

import (
	"slices"
	"testing"
)

func TestReverse(t *testing.T) {
	v := SelectTag[int32](5).Iota(0)
	if got := Reverse(v).Data(); !slices.Equal(got, []int32{4, 3, 2, 1, 0}) {
		t.Errorf("Reverse: got %v", got)
	}
}

func TestBroadcast(t *testing.T) {
	v := SelectTag[float32](4).Load([]float32{1, 2, 3, 4})
	if got := Broadcast(v, 2).Data(); !slices.Equal(got, []float32{3, 3, 3, 3}) {
		t.Errorf("Broadcast: got %v", got)
	}
	if got := Broadcast(v, 7).Data(); !slices.Equal(got, []float32{0, 0, 0, 0}) {
		t.Errorf("Broadcast out of range: got %v", got)
	}
}

func TestGetInsertLane(t *testing.T) {
	v := SelectTag[uint16](4).Iota(1)
	if got := GetLane(v, 3); got != 4 {
		t.Errorf("GetLane: got %v, want 4", got)
	}
	if got := GetLane(v, 4); got != 0 {
		t.Errorf("GetLane out of range: got %v, want 0", got)
	}
	if got := InsertLane(v, 9, 7).Data(); !slices.Equal(got, v.Data()) {
		t.Errorf("InsertLane out of range changed vector: %v", got)
	}
}

func TestPermute(t *testing.T) {
	v := SelectTag[int64](4).Iota(10)

	rot := Permute(v, func(i, n int) int { return (i + 1) % n })
	if got := rot.Data(); !slices.Equal(got, []int64{11, 12, 13, 10}) {
		t.Errorf("Permute rotate: got %v", got)
	}

	zeroOdd := Permute(v, func(i, _ int) int {
		if i%2 == 1 {
			return PermuteZero
		}
		return i
	})
	if got := zeroOdd.Data(); !slices.Equal(got, []int64{10, 0, 12, 0}) {
		t.Errorf("Permute zero: got %v", got)
	}

	if got := DupEven(v).Data(); !slices.Equal(got, []int64{10, 10, 12, 12}) {
		t.Errorf("DupEven: got %v", got)
	}
	if got := DupOdd(v).Data(); !slices.Equal(got, []int64{11, 11, 13, 13}) {
		t.Errorf("DupOdd: got %v", got)
	}
}

func TestSlideLanes(t *testing.T) {
	v := SelectTag[int32](4).Iota(1)

	if got := SlideUpLanes(v, 1).Data(); !slices.Equal(got, []int32{0, 1, 2, 3}) {
		t.Errorf("SlideUpLanes: got %v", got)
	}
	if got := SlideDownLanes(v, 2).Data(); !slices.Equal(got, []int32{3, 4, 0, 0}) {
		t.Errorf("SlideDownLanes: got %v", got)
	}
	if got := SlideUpLanes(v, 9).Data(); !slices.Equal(got, []int32{0, 0, 0, 0}) {
		t.Errorf("SlideUpLanes past end: got %v", got)
	}
	if got := SlideDownLanes(v, 0).Data(); !slices.Equal(got, v.Data()) {
		t.Errorf("SlideDownLanes(0): got %v", got)
	}
}

func TestInterleave(t *testing.T) {
	d := SelectTag[int32](4)
	a := d.Load([]int32{0, 1, 2, 3})
	b := d.Load([]int32{10, 11, 12, 13})

	if got := InterleaveLower(a, b).Data(); !slices.Equal(got, []int32{0, 10, 1, 11}) {
		t.Errorf("InterleaveLower: got %v", got)
	}
	if got := InterleaveUpper(a, b).Data(); !slices.Equal(got, []int32{2, 12, 3, 13}) {
		t.Errorf("InterleaveUpper: got %v", got)
	}
}

func TestResizeSplitConcat(t *testing.T) {
	v := SelectTag[float64](4).Iota(1)

	grown := Resize(SelectTag[float64](6), v)
	if got := grown.Data(); !slices.Equal(got, []float64{1, 2, 3, 4, 0, 0}) {
		t.Errorf("Resize grow: got %v", got)
	}
	shrunk := Resize(SelectTag[float64](2), v)
	if got := shrunk.Data(); !slices.Equal(got, []float64{1, 2}) {
		t.Errorf("Resize shrink: got %v", got)
	}

	lo, hi := Split(v, 1)
	if !slices.Equal(lo.Data(), []float64{1}) || !slices.Equal(hi.Data(), []float64{2, 3, 4}) {
		t.Errorf("Split: got %v %v", lo.Data(), hi.Data())
	}
	if got := Concat(lo, hi).Data(); !slices.Equal(got, v.Data()) {
		t.Errorf("Concat: got %v", got)
	}

	big := SelectTag[uint8](MaxFixedLanes).Set(1)
	if got := Concat(big, big).NumLanes(); got != MaxFixedLanes {
		t.Errorf("Concat cap: got %d lanes", got)
	}
}

func TestRotateLanes(t *testing.T) {
	v := SelectTag[int32](4).Load([]int32{1, 2, 3, 4})
	tests := []struct {
		k    int
		want []int32
	}{
		{0, []int32{1, 2, 3, 4}},
		{1, []int32{2, 3, 4, 1}},
		{3, []int32{4, 1, 2, 3}},
		{4, []int32{1, 2, 3, 4}},
		{-1, []int32{4, 1, 2, 3}},
		{9, []int32{2, 3, 4, 1}},
	}
	for _, tt := range tests {
		if got := RotateLanes(v, tt.k).Data(); !slices.Equal(got, tt.want) {
			t.Errorf("RotateLanes(%d): got %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestSwapNeighbors(t *testing.T) {
	v := SelectTag[uint8](8).Iota(0)
	tests := []struct {
		k    int
		want []uint8
	}{
		{1, []uint8{1, 0, 3, 2, 5, 4, 7, 6}},
		{0, []uint8{1, 0, 3, 2, 5, 4, 7, 6}},
		{2, []uint8{2, 3, 0, 1, 6, 7, 4, 5}},
		{3, []uint8{3, 4, 5, 0, 1, 2, 6, 7}},
		{4, []uint8{4, 5, 6, 7, 0, 1, 2, 3}},
	}
	for _, tt := range tests {
		if got := SwapNeighbors(v, tt.k).Data(); !slices.Equal(got, tt.want) {
			t.Errorf("SwapNeighbors(%d): got %v, want %v", tt.k, got, tt.want)
		}
	}

	odd := SelectTag[float32](5).Load([]float32{0, 1, 2, 3, 4})
	if got := SwapNeighbors(odd, 2).Data(); !slices.Equal(got, []float32{2, 3, 0, 1, 4}) {
		t.Errorf("SwapNeighbors odd width: got %v", got)
	}
}
