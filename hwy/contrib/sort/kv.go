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

// kvSorter runs the sorter's control flow over keys while moving values
// alongside. Values are never compared.
type kvSorter[K, V hwy.Lanes] struct {
	keys *sorter[K]
	// lanes fits both a key and a value register.
	lanes    int
	capacity int
}

func newKVSorter[K, V hwy.Lanes](cfg *config) *kvSorter[K, V] {
	keys := newSorter[K](cfg)
	lanes := min(keys.lanes, powerOfTwoFloor(hwy.LanesFor[V](cfg.tag)))
	return &kvSorter[K, V]{
		keys:     keys,
		lanes:    lanes,
		capacity: maxRegisters(lanes) * lanes,
	}
}

func (s *kvSorter[K, V]) sortSmall(keys []K, vals []V) {
	n := len(keys)
	if n <= 1 {
		return
	}
	o := s.keys.order
	pad := o.padding()
	// A padding lane tied with a real key could take its rank and drop the
	// real value, so such segments are sorted by insertion instead.
	if o.contains(keys, pad, s.lanes) {
		insertionSortKV(o, keys, vals)
		return
	}
	regs := groupSize(n, s.lanes)
	var zero V
	kr := loadGroup(keys, regs, s.lanes, pad)
	vr := loadGroup(vals, regs, s.lanes, zero)
	sortRegistersKV(o, kr, vr, s.lanes)
	hwy.StoreTransposed(kr, keys)
	hwy.StoreTransposed(vr, vals)
}

func (s *kvSorter[K, V]) split(keys []K, vals []V) (lo, hi int) {
	o := s.keys.order
	pivot := s.keys.pivot(keys)
	mid, smallest, biggest := partitionKV(o, keys, vals, pivot, s.lanes, false)
	first, last := o.bounds(smallest, biggest)
	switch {
	case pivot == last:
		return mid, len(keys)
	case pivot == first:
		eq, _, _ := partitionKV(o, keys, vals, pivot, s.lanes, true)
		return 0, eq
	default:
		return mid, mid
	}
}

func (s *kvSorter[K, V]) qsort(keys []K, vals []V, depth int) {
	for len(keys) > s.capacity {
		if depth == 0 {
			heapSortKV(s.keys.order, keys, vals)
			return
		}
		depth--
		lo, hi := s.split(keys, vals)
		if lo < len(keys)-hi {
			s.qsort(keys[:lo], vals[:lo], depth)
			keys, vals = keys[hi:], vals[hi:]
		} else {
			s.qsort(keys[hi:], vals[hi:], depth)
			keys, vals = keys[:lo], vals[:lo]
		}
	}
	s.sortSmall(keys, vals)
}

func (s *kvSorter[K, V]) qselect(keys []K, vals []V, k, depth int) {
	for len(keys) > s.capacity {
		if depth == 0 {
			heapSortKV(s.keys.order, keys, vals)
			return
		}
		depth--
		lo, hi := s.split(keys, vals)
		switch {
		case k < lo:
			keys, vals = keys[:lo], vals[:lo]
		case k >= hi:
			keys, vals, k = keys[hi:], vals[hi:], k-hi
		default:
			return
		}
	}
	s.sortSmall(keys, vals)
}

func (s *kvSorter[K, V]) partialSort(keys []K, vals []V, k, depth int) {
	for len(keys) > s.capacity {
		if depth == 0 {
			heapSortKV(s.keys.order, keys, vals)
			return
		}
		depth--
		lo, hi := s.split(keys, vals)
		if k <= lo {
			keys, vals = keys[:lo], vals[:lo]
			continue
		}
		s.qsort(keys[:lo], vals[:lo], depth)
		if k <= hi {
			return
		}
		keys, vals, k = keys[hi:], vals[hi:], k-hi
	}
	s.sortSmall(keys, vals)
}

func insertionSortKV[K, V hwy.Lanes](o order[K], keys []K, vals []V) {
	for i := 1; i < len(keys); i++ {
		k, v := keys[i], vals[i]
		j := i - 1
		for j >= 0 && o.less(k, keys[j]) {
			keys[j+1], vals[j+1] = keys[j], vals[j]
			j--
		}
		keys[j+1], vals[j+1] = k, v
	}
}

func heapSortKV[K, V hwy.Lanes](o order[K], keys []K, vals []V) {
	n := len(keys)
	for i := n/2 - 1; i >= 0; i-- {
		siftDownKV(o, keys, vals, i, n)
	}
	for i := n - 1; i > 0; i-- {
		keys[0], keys[i] = keys[i], keys[0]
		vals[0], vals[i] = vals[i], vals[0]
		siftDownKV(o, keys, vals, 0, i)
	}
}

func siftDownKV[K, V hwy.Lanes](o order[K], keys []K, vals []V, i, n int) {
	for {
		largest := i
		if left := 2*i + 1; left < n && o.less(keys[largest], keys[left]) {
			largest = left
		}
		if right := 2*i + 2; right < n && o.less(keys[largest], keys[right]) {
			largest = right
		}
		if largest == i {
			return
		}
		keys[i], keys[largest] = keys[largest], keys[i]
		vals[i], vals[largest] = vals[largest], vals[i]
		i = largest
	}
}
