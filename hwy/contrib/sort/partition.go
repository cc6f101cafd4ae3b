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

import "github.com/ajroetker/go-simdsort/hwy"

// goesRight reports whether x belongs right of pivot. Elements equal to the
// pivot go right unless orEqual is set.
func (o order[T]) goesRight(x, pivot T, orEqual bool) bool {
	if orEqual {
		return !(o.less(x, pivot) || x == pivot)
	}
	return o.less(pivot, x) || x == pivot
}

// goesRightMask is the lane-wise goesRight.
func (o order[T]) goesRightMask(v, pivot hwy.Vec[T], orEqual bool) hwy.Mask[T] {
	if orEqual {
		left := hwy.MaskOr(o.lt(v, pivot), o.eq(v, pivot))
		return hwy.MaskNot(left)
	}
	return o.ge(v, pivot)
}

// partition reorders data so that elements placed before pivot come first,
// and returns the boundary together with the smallest and biggest values
// seen. Elements equal to pivot go right unless orEqual is set, in which
// case they go left.
//
// The kernel keeps the first and last registers aside, which frees one
// register of room at each end. Every register read afterwards is split
// with two compressing stores, one appending to the left run and one
// prepending to the right run. It reads from whichever side has less free
// room, so stores never overtake unread data.
func partition[T hwy.Lanes](o order[T], data []T, pivot T, lanes int, orEqual bool) (mid int, smallest, biggest T) {
	n := len(data)
	if n < 2*lanes {
		return scalarPartition(o, data, pivot, orEqual)
	}
	smallest, biggest = pivot, pivot

	// Trim the length to a multiple of the lane count.
	left, right := 0, n
	for range n % lanes {
		x := data[left]
		smallest, biggest = min(smallest, x), max(biggest, x)
		if o.goesRight(x, pivot, orEqual) {
			right--
			data[left], data[right] = data[right], data[left]
		} else {
			left++
		}
	}

	pv := hwy.SetN(pivot, lanes)
	first := hwy.LoadN(data[left:], lanes)
	last := hwy.LoadN(data[right-lanes:], lanes)
	vmin, vmax := hwy.Min(first, last), hwy.Max(first, last)

	// Free room is [lstore, left) and [right, rstore+lanes).
	lstore, rstore := left, right-lanes
	left += lanes
	right -= lanes

	split := func(v hwy.Vec[T], end int) {
		mask := o.goesRightMask(v, pv, orEqual)
		nr := hwy.CountTrue(mask)
		hwy.CompressStore(v, hwy.MaskNot(mask), data[lstore:])
		hwy.CompressStore(v, mask, data[end-nr:])
		lstore += lanes - nr
		rstore -= nr
	}

	for left != right {
		var v hwy.Vec[T]
		if (rstore+lanes)-right < left-lstore {
			right -= lanes
			v = hwy.LoadN(data[right:], lanes)
		} else {
			v = hwy.LoadN(data[left:], lanes)
			left += lanes
		}
		vmin, vmax = hwy.Min(vmin, v), hwy.Max(vmax, v)
		split(v, rstore+lanes)
	}
	split(first, rstore+lanes)
	// Exactly one register of room is left, so the last register fills it.
	split(last, lstore+lanes)

	smallest = min(smallest, hwy.ReduceMin(vmin))
	biggest = max(biggest, hwy.ReduceMax(vmax))
	return lstore, smallest, biggest
}

func scalarPartition[T hwy.Lanes](o order[T], data []T, pivot T, orEqual bool) (mid int, smallest, biggest T) {
	smallest, biggest = pivot, pivot
	left, right := 0, len(data)
	for left < right {
		x := data[left]
		smallest, biggest = min(smallest, x), max(biggest, x)
		if o.goesRight(x, pivot, orEqual) {
			right--
			data[left], data[right] = data[right], data[left]
		} else {
			left++
		}
	}
	return left, smallest, biggest
}

// partitionKV is partition over keys with values moved alongside. The key
// mask is rebound to drive the value compressions.
func partitionKV[K, V hwy.Lanes](o order[K], keys []K, vals []V, pivot K, lanes int, orEqual bool) (mid int, smallest, biggest K) {
	n := len(keys)
	if n < 2*lanes {
		return scalarPartitionKV(o, keys, vals, pivot, orEqual)
	}
	smallest, biggest = pivot, pivot

	left, right := 0, n
	for range n % lanes {
		x := keys[left]
		smallest, biggest = min(smallest, x), max(biggest, x)
		if o.goesRight(x, pivot, orEqual) {
			right--
			keys[left], keys[right] = keys[right], keys[left]
			vals[left], vals[right] = vals[right], vals[left]
		} else {
			left++
		}
	}

	pv := hwy.SetN(pivot, lanes)
	firstK, firstV := hwy.LoadN(keys[left:], lanes), hwy.LoadN(vals[left:], lanes)
	lastK, lastV := hwy.LoadN(keys[right-lanes:], lanes), hwy.LoadN(vals[right-lanes:], lanes)
	vmin, vmax := hwy.Min(firstK, lastK), hwy.Max(firstK, lastK)

	lstore, rstore := left, right-lanes
	left += lanes
	right -= lanes

	split := func(k hwy.Vec[K], v hwy.Vec[V], end int) {
		mask := o.goesRightMask(k, pv, orEqual)
		keep := hwy.MaskNot(mask)
		nr := hwy.CountTrue(mask)
		hwy.CompressStore(k, keep, keys[lstore:])
		hwy.CompressStore(v, hwy.RebindMask[V](keep), vals[lstore:])
		hwy.CompressStore(k, mask, keys[end-nr:])
		hwy.CompressStore(v, hwy.RebindMask[V](mask), vals[end-nr:])
		lstore += lanes - nr
		rstore -= nr
	}

	for left != right {
		var k hwy.Vec[K]
		var v hwy.Vec[V]
		if (rstore+lanes)-right < left-lstore {
			right -= lanes
			k, v = hwy.LoadN(keys[right:], lanes), hwy.LoadN(vals[right:], lanes)
		} else {
			k, v = hwy.LoadN(keys[left:], lanes), hwy.LoadN(vals[left:], lanes)
			left += lanes
		}
		vmin, vmax = hwy.Min(vmin, k), hwy.Max(vmax, k)
		split(k, v, rstore+lanes)
	}
	split(firstK, firstV, rstore+lanes)
	split(lastK, lastV, lstore+lanes)

	smallest = min(smallest, hwy.ReduceMin(vmin))
	biggest = max(biggest, hwy.ReduceMax(vmax))
	return lstore, smallest, biggest
}

func scalarPartitionKV[K, V hwy.Lanes](o order[K], keys []K, vals []V, pivot K, orEqual bool) (mid int, smallest, biggest K) {
	smallest, biggest = pivot, pivot
	left, right := 0, len(keys)
	for left < right {
		x := keys[left]
		smallest, biggest = min(smallest, x), max(biggest, x)
		if o.goesRight(x, pivot, orEqual) {
			right--
			keys[left], keys[right] = keys[right], keys[left]
			vals[left], vals[right] = vals[right], vals[left]
		} else {
			left++
		}
	}
	return left, smallest, biggest
}
