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

import "github.com/ajroetker/go-vsimd/hwy"

// FindIf returns the index of the first element for which pred is true, or
// -1. Chunks after the match are not visited.
func FindIf[T hwy.Lanes](p Policy, data []T, pred MaskFunc[T]) int {
	found := -1
	walk(p, data, len(data), func(d hwy.Tag[T], i int) bool {
		v := d.Load(data[i : i+d.Lanes()])
		if idx := hwy.FindFirstTrue(chunkMask(d, pred(v))); idx >= 0 {
			found = i + idx
			return false
		}
		return true
	})
	return found
}

// Find returns the index of the first element equal to value, or -1.
func Find[T hwy.Lanes](p Policy, data []T, value T) int {
	return FindIf(p, data, equalTo(value))
}

// Contains reports whether value occurs in data.
func Contains[T hwy.Lanes](p Policy, data []T, value T) bool {
	return Find(p, data, value) >= 0
}

// AnyOf reports whether pred is true for at least one element.
func AnyOf[T hwy.Lanes](p Policy, data []T, pred MaskFunc[T]) bool {
	return FindIf(p, data, pred) >= 0
}

// AllOf reports whether pred is true for every element. It is true for an
// empty range.
func AllOf[T hwy.Lanes](p Policy, data []T, pred MaskFunc[T]) bool {
	return FindIf(p, data, func(v hwy.Vec[T]) hwy.Mask[T] {
		return hwy.MaskNot(pred(v))
	}) < 0
}

// NoneOf reports whether pred is false for every element.
func NoneOf[T hwy.Lanes](p Policy, data []T, pred MaskFunc[T]) bool {
	return !AnyOf(p, data, pred)
}
