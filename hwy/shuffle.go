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

// This file provides shuffle and permutation operations for vectors.
// The permutations used by bitonic networks are all of the form
// "lane i takes lane i^m", which covers swapping neighbours at a distance
// (m a power of two) and reversing blocks (m = 2^k-1), so no general
// table-driven shuffle is needed.

// XorLanes returns a vector whose lane i holds lane i^m of v.
// m must be smaller than the lane count, which must be a power of two.
//
//	XorLanes([0,1,2,3], 1) -> [1,0,3,2]
//	XorLanes([0,1,2,3], 3) -> [3,2,1,0]
func XorLanes[T Lanes](v Vec[T], m int) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = v.data[i^m]
	}
	return Vec[T]{data: result}
}

// LaneBitClear returns an n-lane mask that is true for lanes whose index has
// the given bit clear.
//
//	LaneBitClear(8, 2) -> [T,T,F,F,T,T,F,F]
func LaneBitClear[T Lanes](n, bit int) Mask[T] {
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = i&bit == 0
	}
	return Mask[T]{bits: bits}
}

// StoreTransposed writes a register group column by column: lane l of
// vecs[r] goes to dst[l*len(vecs)+r]. Writes stop at len(dst).
func StoreTransposed[T Lanes](vecs []Vec[T], dst []T) {
	rows := len(vecs)
	for r, v := range vecs {
		for l, x := range v.data {
			if i := l*rows + r; i < len(dst) {
				dst[i] = x
			}
		}
	}
}
