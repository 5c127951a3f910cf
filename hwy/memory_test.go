package hwy

import (
	"slices"
	"testing"
)

func TestStore(t *testing.T) {
	v := SelectTag[int32](4).Iota(1)

	dst := make([]int32, 6)
	Store(v, dst)
	if !slices.Equal(dst, []int32{1, 2, 3, 4, 0, 0}) {
		t.Errorf("Store: got %v", dst)
	}

	short := make([]int32, 2)
	v.Store(short)
	if !slices.Equal(short, []int32{1, 2}) {
		t.Errorf("Store short: got %v", short)
	}
}

func TestMaskLoadStore(t *testing.T) {
	d := SelectTag[float32](4)
	mask := d.FirstN(3)

	// src covers only the active lanes.
	v := MaskLoad(mask, []float32{5, 6, 7})
	if got := v.Data(); !slices.Equal(got, []float32{5, 6, 7, 0}) {
		t.Errorf("MaskLoad: got %v", got)
	}

	dst := []float32{-1, -1, -1, -1}
	MaskStore(d.MaskFromBits(0b0101), d.Set(9), dst)
	if !slices.Equal(dst, []float32{9, -1, 9, -1}) {
		t.Errorf("MaskStore: got %v", dst)
	}

	dst = []float32{-1, -1}
	BlendedStore(d.Set(3), d.FirstN(4), dst)
	if !slices.Equal(dst, []float32{3, 3}) {
		t.Errorf("BlendedStore short dst: got %v", dst)
	}
}

func TestInterleaved2(t *testing.T) {
	d := SelectTag[int16](4)
	src := []int16{0, 10, 1, 11, 2, 12, 3, 13}

	a, b := LoadInterleaved2(d, src)
	if !slices.Equal(a.Data(), []int16{0, 1, 2, 3}) || !slices.Equal(b.Data(), []int16{10, 11, 12, 13}) {
		t.Fatalf("LoadInterleaved2: got %v %v", a.Data(), b.Data())
	}

	dst := make([]int16, len(src))
	StoreInterleaved2(a, b, dst)
	if !slices.Equal(dst, src) {
		t.Errorf("StoreInterleaved2: got %v", dst)
	}

	odd := make([]int16, 3)
	StoreInterleaved2(a, b, odd)
	if !slices.Equal(odd, []int16{0, 10, 1}) {
		t.Errorf("StoreInterleaved2 odd dst: got %v", odd)
	}
}
