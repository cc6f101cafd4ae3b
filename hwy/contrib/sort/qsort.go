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
	"math/bits"

	"github.com/ajroetker/go-simdsort/hwy"
)

const (
	// networkElements bounds how many elements one register group sorts.
	networkElements = 256

	// pivotSamples is how many evenly spaced elements the pivot is the
	// median of. They are sorted by a network.
	pivotSamples = 16
)

// sorter holds the per-call kernel configuration for one element type.
type sorter[T hwy.Lanes] struct {
	order    order[T]
	lanes    int
	capacity int
}

func newSorter[T hwy.Lanes](cfg *config) *sorter[T] {
	lanes := powerOfTwoFloor(hwy.LanesFor[T](cfg.tag))
	return &sorter[T]{
		order:    order[T]{descending: cfg.descending},
		lanes:    lanes,
		capacity: maxRegisters(lanes) * lanes,
	}
}

// maxRegisters is the register count of the largest group the base case
// sorts: at most 32 registers and at most networkElements elements.
func maxRegisters(lanes int) int {
	return max(min(32, networkElements/lanes), 1)
}

func powerOfTwoFloor(n int) int {
	return 1 << (bits.Len(uint(n)) - 1)
}

// maxDepth bounds the partitioning levels before falling back to heapsort.
func maxDepth(n int) int {
	return 2 * bits.Len(uint(n))
}

// sortSmall sorts up to capacity elements with one register group.
func (s *sorter[T]) sortSmall(data []T) {
	if len(data) <= 1 {
		return
	}
	regs := loadGroup(data, groupSize(len(data), s.lanes), s.lanes, s.order.padding())
	sortRegisters(s.order, regs, s.lanes)
	hwy.StoreTransposed(regs, data)
}

// pivot returns the median of evenly spaced samples of data.
func (s *sorter[T]) pivot(data []T) T {
	step := len(data) / pivotSamples
	samples := make([]T, pivotSamples)
	for i := range samples {
		samples[i] = data[i*step+step/2]
	}
	s.sortSmall(samples)
	return samples[pivotSamples/2]
}

// split partitions data around a sampled pivot. Afterwards data[:lo] comes
// before the pivot, data[lo:hi] equals it and data[hi:] comes after it.
// At least one of the outer sides is shorter than data.
func (s *sorter[T]) split(data []T) (lo, hi int) {
	pivot := s.pivot(data)
	mid, smallest, biggest := partition(s.order, data, pivot, s.lanes, false)
	first, last := s.order.bounds(smallest, biggest)
	switch {
	case pivot == last:
		// Nothing comes after the pivot, so the right side is all pivots.
		return mid, len(data)
	case pivot == first:
		// The left side is empty. Peel the run of pivots off the front.
		eq, _, _ := partition(s.order, data, pivot, s.lanes, true)
		return 0, eq
	default:
		return mid, mid
	}
}

// qsort sorts data, recursing into the smaller side and looping on the
// larger one.
func (s *sorter[T]) qsort(data []T, depth int) {
	for len(data) > s.capacity {
		if depth == 0 {
			heapSort(s.order, data)
			return
		}
		depth--
		lo, hi := s.split(data)
		left, right := data[:lo], data[hi:]
		if len(left) < len(right) {
			s.qsort(left, depth)
			data = right
		} else {
			s.qsort(right, depth)
			data = left
		}
	}
	s.sortSmall(data)
}

// qselect places the k-th element of data at index k, only descending into
// the side that holds k.
func (s *sorter[T]) qselect(data []T, k, depth int) {
	for len(data) > s.capacity {
		if depth == 0 {
			heapSort(s.order, data)
			return
		}
		depth--
		lo, hi := s.split(data)
		switch {
		case k < lo:
			data = data[:lo]
		case k >= hi:
			data, k = data[hi:], k-hi
		default:
			return
		}
	}
	s.sortSmall(data)
}

// partialSort sorts the first k positions of data. Sides entirely past k
// are left unordered.
func (s *sorter[T]) partialSort(data []T, k, depth int) {
	for len(data) > s.capacity {
		if depth == 0 {
			heapSort(s.order, data)
			return
		}
		depth--
		lo, hi := s.split(data)
		if k <= lo {
			data = data[:lo]
			continue
		}
		s.qsort(data[:lo], depth)
		if k <= hi {
			return
		}
		data, k = data[hi:], k-hi
	}
	s.sortSmall(data)
}

// heapSort bounds the worst case when partitioning keeps going badly.
func heapSort[T hwy.Lanes](o order[T], data []T) {
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(o, data, i, n)
	}
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(o, data, 0, i)
	}
}

func siftDown[T hwy.Lanes](o order[T], data []T, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && o.less(data[largest], data[left]) {
			largest = left
		}
		if right < n && o.less(data[largest], data[right]) {
			largest = right
		}

		if largest == i {
			break
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}
