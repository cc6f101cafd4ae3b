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

// This file provides compress and mask operations. CompressStore packs the
// selected lanes to the front of a slice; it is the building block of the
// vectorized partition.

// CompressStore writes the lanes selected by mask contiguously to dst and
// returns how many were written. Nothing past the selected count is touched.
func CompressStore[T Lanes](v Vec[T], mask Mask[T], dst []T) int {
	n := min(len(v.data), len(mask.bits))
	count := 0
	for i := range n {
		if mask.bits[i] {
			dst[count] = v.data[i]
			count++
		}
	}
	return count
}

// CountTrue counts true lanes in mask.
func CountTrue[T Lanes](mask Mask[T]) int {
	return mask.CountTrue()
}

// AllFalse returns true if all lanes are false.
func AllFalse[T Lanes](mask Mask[T]) bool {
	return !mask.AnyTrue()
}

// FindFirstTrue returns index of first true lane, or -1 if none.
func FindFirstTrue[T Lanes](mask Mask[T]) int {
	for i, bit := range mask.bits {
		if bit {
			return i
		}
	}
	return -1
}

// FirstN creates a lanes-wide mask with the first n lanes set. It selects
// the valid lanes of a register loaded from a short tail.
func FirstN[T Lanes](n, lanes int) Mask[T] {
	n = max(min(n, lanes), 0)
	bits := make([]bool, lanes)
	for i := range n {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// RebindMask reinterprets a mask for a different lane type with the same
// lane count, so a key comparison can drive a value register.
func RebindMask[U, T Lanes](m Mask[T]) Mask[U] {
	return Mask[U]{bits: m.bits}
}

// MaskAnd performs lane-wise AND on two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskOr performs lane-wise OR on two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] || b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskNot inverts every lane of the mask.
func MaskNot[T Lanes](mask Mask[T]) Mask[T] {
	bits := make([]bool, len(mask.bits))
	for i, bit := range mask.bits {
		bits[i] = !bit
	}
	return Mask[T]{bits: bits}
}

// MaskIfThenElse selects a[i] where sel[i] is true, b[i] otherwise.
func MaskIfThenElse[T Lanes](sel, a, b Mask[T]) Mask[T] {
	n := min(len(sel.bits), len(a.bits), len(b.bits))
	bits := make([]bool, n)
	for i := range n {
		if sel.bits[i] {
			bits[i] = a.bits[i]
		} else {
			bits[i] = b.bits[i]
		}
	}
	return Mask[T]{bits: bits}
}
