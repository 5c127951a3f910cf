package hwy

import (
	"slices"
	"testing"
)

func TestConvertTo(t *testing.T) {
	f := SelectTag[float32](4).Load([]float32{1.9, -1.9, 0.5, 100})
	i := ConvertTo[int32](f)
	if got := i.Data(); !slices.Equal(got, []int32{1, -1, 0, 100}) {
		t.Errorf("ConvertTo[int32]: got %v", got)
	}

	back := ConvertTo[float64](i)
	if back.NumLanes() != 4 || back.data[3] != 100 {
		t.Errorf("ConvertTo[float64]: got %v", back.Data())
	}
}

func TestMaskCast(t *testing.T) {
	m := SelectTag[float64](4).MaskFromBits(0b1001)
	c := MaskCast[int8](m)
	if c.NumLanes() != 4 || c.Bits() != 0b1001 {
		t.Errorf("MaskCast: got %d lanes, bits %04b", c.NumLanes(), c.Bits())
	}
}

func TestPromote(t *testing.T) {
	v := SelectTag[int16](5).Load([]int16{1, -2, 3, -4, 5})

	lo := PromoteLower[int32](v)
	if got := lo.Data(); !slices.Equal(got, []int32{1, -2}) {
		t.Errorf("PromoteLower: got %v", got)
	}
	hi := PromoteUpper[int32](v)
	if got := hi.Data(); !slices.Equal(got, []int32{3, -4, 5}) {
		t.Errorf("PromoteUpper: got %v", got)
	}

	f := PromoteLower[float64](SelectTag[float32](4).Load([]float32{0.5, 1.5, 2, 3}))
	if got := f.Data(); !slices.Equal(got, []float64{0.5, 1.5}) {
		t.Errorf("PromoteLower float: got %v", got)
	}
}

func TestDemoteTo(t *testing.T) {
	v := SelectTag[int16](4).Load([]int16{-5, 100, 300, 255})
	if got := DemoteTo[uint8](v).Data(); !slices.Equal(got, []uint8{0, 100, 255, 255}) {
		t.Errorf("DemoteTo[uint8]: got %v", got)
	}
	if got := DemoteTo[int8](v).Data(); !slices.Equal(got, []int8{-5, 100, 127, 127}) {
		t.Errorf("DemoteTo[int8]: got %v", got)
	}

	u := SelectTag[uint32](2).Load([]uint32{40000, 7})
	if got := DemoteTo[int16](u).Data(); !slices.Equal(got, []int16{32767, 7}) {
		t.Errorf("DemoteTo[int16] from uint32: got %v", got)
	}

	lo := SelectTag[int32](2).Load([]int32{1, 70000})
	hi := SelectTag[int32](2).Load([]int32{-70000, 5})
	if got := DemoteTwoTo[int16](lo, hi).Data(); !slices.Equal(got, []int16{1, 32767, -32768, 5}) {
		t.Errorf("DemoteTwoTo: got %v", got)
	}
}
