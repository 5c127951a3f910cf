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

// Store writes a vector's lanes to dst. If dst is shorter than the vector,
// only len(dst) lanes are written.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// MaskLoad loads the lanes where mask is active and zeroes the others.
// Inactive lanes never read src, so src may be shorter than the vector as
// long as it covers every active lane.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	v := Vec[T]{n: mask.n}
	for i := range min(mask.n, len(src)) {
		if mask.bits&(1<<uint(i)) != 0 {
			v.data[i] = src[i]
		}
	}
	return v
}

// MaskStore writes only the lanes where mask is active. Other elements of
// dst are left unchanged.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	for i := range min(mask.n, v.n, len(dst)) {
		if mask.bits&(1<<uint(i)) != 0 {
			dst[i] = v.data[i]
		}
	}
}

// BlendedStore is an alias of MaskStore, named after Highway's op.
func BlendedStore[T Lanes](v Vec[T], mask Mask[T], dst []T) {
	MaskStore(mask, v, dst)
}

// LoadInterleaved2 loads 2*d.Lanes() elements and deinterleaves them.
// [a0,b0,a1,b1,...] -> a=[a0,a1,...], b=[b0,b1,...]
// Missing source elements load as zero.
func LoadInterleaved2[T Lanes](d Tag[T], src []T) (Vec[T], Vec[T]) {
	a, b := Vec[T]{n: d.lanes}, Vec[T]{n: d.lanes}
	for i := range d.lanes {
		if 2*i < len(src) {
			a.data[i] = src[2*i]
		}
		if 2*i+1 < len(src) {
			b.data[i] = src[2*i+1]
		}
	}
	return a, b
}

// StoreInterleaved2 interleaves a and b into dst.
// a=[a0,a1,...], b=[b0,b1,...] -> [a0,b0,a1,b1,...]
func StoreInterleaved2[T Lanes](a, b Vec[T], dst []T) {
	for i := range min(a.n, b.n) {
		if 2*i+1 >= len(dst) {
			if 2*i < len(dst) {
				dst[2*i] = a.data[i]
			}
			return
		}
		dst[2*i] = a.data[i]
		dst[2*i+1] = b.data[i]
	}
}
