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

// Package hwy provides the portable vector layer used by the sorting kernels.
//
// A Vec holds one register worth of lanes. The number of lanes is decided by
// the capability set detected at runtime (see DetectCapabilities), so the same
// generic kernel processes 4 int32 lanes on a 128-bit target, 8 on AVX2 and 16
// on AVX-512. Operations are written lane-wise so the compiler can keep them
// in registers; nothing in this package branches on element values.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-simdsort/hwy"
//
//	n := hwy.MaxLanes[float32]()
//	a := hwy.LoadN(data1, n)
//	b := hwy.LoadN(data2, n)
//	lo, hi := hwy.Min(a, b), hwy.Max(a, b)
//	hwy.Store(lo, out)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
// Float16 satisfies it through its uint16 storage.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle. Its lanes live in a slice whose length is
// fixed when the vector is created by Load, LoadN, Set or SetN.
//
// Vec instances should not be created directly.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying lanes. Intended for tests.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask is the result of a lane-wise comparison.
//
// Mask instances should not be created directly; use comparison operations
// like Equal, LessThan, or GreaterThan instead.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
