// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package algo

import (
	"unsafe"

	"github.com/ajroetker/go-vsimd/hwy"
)

// visitFunc is called with the tag of a chunk and its first index. Returning
// false stops the walk.
type visitFunc[T hwy.Lanes] func(d hwy.Tag[T], i int) bool

// span is the address and element size of the slice that decides the
// alignment prologue.
type span struct {
	addr uintptr
	size uintptr
}

func spanOf[E any](s []E) span {
	var zero E
	return span{
		addr: uintptr(unsafe.Pointer(unsafe.SliceData(s))),
		size: unsafe.Sizeof(zero),
	}
}

// walk splits [0, n) into chunks following p and calls visit for each in
// range order. base is the slice whose address decides the prologue. It
// returns false if visit stopped early.
func walk[T hwy.Lanes](p Policy, base []T, n int, visit visitFunc[T]) bool {
	return walkSpan(p, spanOf(base), n, visit)
}

// walkSpan is walk for a range of n records described by at. A record may
// hold several lanes' worth of T, as with Pair.
func walkSpan[T hwy.Lanes](p Policy, at span, n int, visit visitFunc[T]) bool {
	if n <= 0 {
		return true
	}
	d := Tag[T](p)
	lanes := d.Lanes()

	i := 0
	if p.aligned && lanes > 1 {
		var ok bool
		if i, ok = prologue(d, at, n, visit); !ok {
			return false
		}
	}

	if k := p.unroll; k > 1 {
		step := k * lanes
		for ; i+step <= n; i += step {
			for j := range k {
				if !visit(d, i+j*lanes) {
					return false
				}
			}
		}
	}

	for ; i+lanes <= n; i += lanes {
		if !visit(d, i) {
			return false
		}
	}

	if p.epilogue == EpilogueHalving {
		for w := lanes / 2; w > 1; w /= 2 {
			if i+w <= n {
				if !visit(hwy.SelectTag[T](w), i) {
					return false
				}
				i += w
			}
		}
	}

	one := hwy.ScalarTag[T]()
	for ; i < n; i++ {
		if !visit(one, i) {
			return false
		}
	}
	return true
}

// prologue processes the records before the first address aligned to
// d.Lanes() records. The count is split into its set bits and handled with
// widths 1, 2, 4, ... in that order. Nothing is done if the range is already
// aligned or is not aligned to its record size.
func prologue[T hwy.Lanes](d hwy.Tag[T], at span, n int, visit visitFunc[T]) (int, bool) {
	if at.addr == 0 || at.size == 0 {
		return 0, true
	}
	align := uintptr(d.Lanes()) * at.size
	off := at.addr % align
	if off == 0 || off%at.size != 0 {
		return 0, true
	}

	todo := min(int((align-off)/at.size), n)
	i := 0
	for w := 1; i < todo; w <<= 1 {
		if todo&w == 0 {
			continue
		}
		if !visit(hwy.SelectTag[T](w), i) {
			return i, false
		}
		i += w
	}
	return i, true
}
