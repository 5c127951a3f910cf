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

package hwy

// TailMask creates a mask of d's shape with the first count lanes active.
// This is useful for handling the tail (remainder) of an array
// when the size is not a multiple of the vector width.
//
// Example:
//
//	d := hwy.ScalableTag[float32]()
//	remaining := len(data) % d.Lanes()
//	if remaining > 0 {
//	    mask := hwy.TailMask(d, remaining)
//	    v := hwy.MaskLoad(mask, data[len(data)-remaining:])
//	    // ... process tail
//	    hwy.MaskStore(mask, result, output[len(output)-remaining:])
//	}
func TailMask[T Lanes](d Tag[T], count int) Mask[T] {
	return d.FirstN(count)
}

// ProcessWithTail is a helper for processing arrays with SIMD that handles
// both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of vector width
//
// Example:
//
//	d := hwy.ScalableTag[float32]()
//	hwy.ProcessWithTail(d, len(data),
//	    func(offset int) {
//	        v := d.Load(data[offset:])
//	        hwy.Store(hwy.Add(v, v), output[offset:])
//	    },
//	    func(offset, count int) {
//	        mask := hwy.TailMask(d, count)
//	        v := hwy.MaskLoad(mask, data[offset:])
//	        hwy.MaskStore(mask, hwy.Add(v, v), output[offset:])
//	    },
//	)
func ProcessWithTail[T Lanes](d Tag[T], size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := d.Lanes()

	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}

// ProcessWithTailNoMask is similar to ProcessWithTail but doesn't require
// a tail function. Instead, it processes overlapping vectors for the tail.
// This is simpler but processes the last few elements twice, so fullFn
// must be idempotent per element. For size < Lanes() fullFn(0) is called
// once and must cope with a short slice.
func ProcessWithTailNoMask[T Lanes](d Tag[T], size int, fullFn func(offset int)) {
	lanes := d.Lanes()
	if size <= 0 {
		return
	}
	if size < lanes {
		fullFn(0)
		return
	}

	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	if size%lanes > 0 {
		// Last full vector, overlapping the previous one.
		fullFn(size - lanes)
	}
}

// AlignedSize rounds up size to the next multiple of d's lane count.
// This is useful for allocating buffers that will be processed with SIMD.
func AlignedSize[T Lanes](d Tag[T], size int) int {
	lanes := d.Lanes()
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of d's lane count.
func IsAligned[T Lanes](d Tag[T], size int) bool {
	return size%d.Lanes() == 0
}
