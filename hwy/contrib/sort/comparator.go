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

package sort

import (
	"math"
	"unsafe"

	"github.com/ajroetker/go-simdsort/hwy"
)

// order decides which of two elements comes first. Every kernel in this
// package is written against an order so ascending and descending share code.
type order[T hwy.Lanes] struct {
	descending bool
}

// less reports whether a is placed strictly before b.
func (o order[T]) less(a, b T) bool {
	if o.descending {
		return b < a
	}
	return a < b
}

// lt is the lane-wise form of less.
func (o order[T]) lt(a, b hwy.Vec[T]) hwy.Mask[T] {
	if o.descending {
		return hwy.GreaterThan(a, b)
	}
	return hwy.LessThan(a, b)
}

// eq is the lane-wise equality mask. It does not depend on the direction.
func (o order[T]) eq(a, b hwy.Vec[T]) hwy.Mask[T] {
	return hwy.Equal(a, b)
}

// ge marks the lanes where a does not come before b.
func (o order[T]) ge(a, b hwy.Vec[T]) hwy.Mask[T] {
	if o.descending {
		return hwy.LessEqual(a, b)
	}
	return hwy.GreaterEqual(a, b)
}

// contains reports whether x occurs in data, scanning a register at a time.
func (o order[T]) contains(data []T, x T, lanes int) bool {
	xv := hwy.SetN(x, lanes)
	for i := 0; i < len(data); i += lanes {
		hit := o.eq(hwy.LoadN(data[i:], lanes), xv)
		if rest := len(data) - i; rest < lanes {
			// Lanes past the end were loaded as zero.
			hit = hwy.MaskAnd(hit, hwy.FirstN[T](rest, lanes))
		}
		if !hwy.AllFalse(hit) {
			return true
		}
	}
	return false
}

// coex is the compare-exchange: one Min and one Max per lane, with the
// direction deciding which side receives the minimum.
func (o order[T]) coex(a, b hwy.Vec[T]) (first, last hwy.Vec[T]) {
	lo, hi := hwy.Min(a, b), hwy.Max(a, b)
	if o.descending {
		return hi, lo
	}
	return lo, hi
}

// blend compare-exchanges v with partner, a permutation of v. Lanes selected
// by keep receive the element that comes first, the other lanes the one that
// comes last.
func (o order[T]) blend(v, partner hwy.Vec[T], keep hwy.Mask[T]) hwy.Vec[T] {
	first, last := o.coex(v, partner)
	return hwy.IfThenElse(keep, first, last)
}

// padding returns the value that sorts after every other value.
func (o order[T]) padding() T {
	if o.descending {
		return typeMin[T]()
	}
	return typeMax[T]()
}

// bounds maps a numeric minimum and maximum to the first and last value in
// this order.
func (o order[T]) bounds(smallest, biggest T) (first, last T) {
	if o.descending {
		return biggest, smallest
	}
	return smallest, biggest
}

// coexKV compare-exchanges a pair of key registers and applies the same
// exchange to the value registers. Equal keys are never exchanged, so no
// value is duplicated or lost.
func coexKV[K, V hwy.Lanes](o order[K], ka, kb hwy.Vec[K], va, vb hwy.Vec[V]) (hwy.Vec[K], hwy.Vec[K], hwy.Vec[V], hwy.Vec[V]) {
	swap := o.lt(kb, ka)
	vswap := hwy.RebindMask[V](swap)
	return hwy.IfThenElse(swap, kb, ka), hwy.IfThenElse(swap, ka, kb),
		hwy.IfThenElse(vswap, vb, va), hwy.IfThenElse(vswap, va, vb)
}

// blendKV is the key-value form of blend. A lane takes its partner when the
// partner belongs on its side of the exchange.
func blendKV[K, V hwy.Lanes](o order[K], k, kp hwy.Vec[K], v, vp hwy.Vec[V], keep hwy.Mask[K]) (hwy.Vec[K], hwy.Vec[V]) {
	take := hwy.MaskIfThenElse(keep, o.lt(kp, k), o.lt(k, kp))
	return hwy.IfThenElse(take, kp, k), hwy.IfThenElse(hwy.RebindMask[V](take), vp, v)
}

// isFloat reports whether T is a floating-point type.
func isFloat[T hwy.Lanes]() bool {
	var x T = 1
	x /= 2
	return x != 0
}

func typeMax[T hwy.Lanes]() T {
	if isFloat[T]() {
		inf := math.Inf(1)
		return T(inf)
	}
	var x T
	x--
	if x > 0 {
		return x
	}
	bits := 8 * unsafe.Sizeof(x)
	return T(uint64(1)<<(bits-1) - 1)
}

func typeMin[T hwy.Lanes]() T {
	if isFloat[T]() {
		inf := math.Inf(-1)
		return T(inf)
	}
	var x T
	x--
	if x > 0 {
		return 0
	}
	return -typeMax[T]() - 1
}
