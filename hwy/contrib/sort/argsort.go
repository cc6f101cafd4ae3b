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

// ArgSort returns the permutation that sorts data, leaving data untouched:
// data[idx[0]], data[idx[1]], ... is in order.
func ArgSort[T hwy.Lanes](data []T, opts ...Option) ([]int, error) {
	keys, idx := argPairs(data)
	if err := KeyValueSort(keys, idx, opts...); err != nil {
		return nil, err
	}
	return toInts(idx), nil
}

// ArgSelect returns a permutation of the indices of data such that
// data[idx[k]] is the element of rank k, with indices of elements before it
// in front and indices of elements after it behind.
func ArgSelect[T hwy.Lanes](data []T, k int, opts ...Option) ([]int, error) {
	keys, idx := argPairs(data)
	if err := KeyValueSelect(keys, idx, k, opts...); err != nil {
		return nil, err
	}
	return toInts(idx), nil
}

// SortFunc sorts items by the numeric key that key extracts. Each key is
// computed once; items are then moved into place following the key order.
func SortFunc[E any, K hwy.Lanes](items []E, key func(E) K, opts ...Option) error {
	keys := make([]K, len(items))
	for i, item := range items {
		keys[i] = key(item)
	}
	idx := identity(len(items))
	if err := KeyValueSort(keys, idx, opts...); err != nil {
		return err
	}
	permute(items, idx)
	return nil
}

func argPairs[T hwy.Lanes](data []T) ([]T, []int64) {
	keys := make([]T, len(data))
	copy(keys, data)
	return keys, identity(len(data))
}

func identity(n int) []int64 {
	idx := make([]int64, n)
	for i := range idx {
		idx[i] = int64(i)
	}
	return idx
}

func toInts(idx []int64) []int {
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = int(j)
	}
	return out
}

// permute rearranges items so that items[i] becomes the old items[idx[i]],
// following each cycle once. idx is consumed.
func permute[E any](items []E, idx []int64) {
	for i := range items {
		if idx[i] < 0 {
			continue
		}
		saved := items[i]
		cur := i
		for {
			next := int(idx[cur])
			idx[cur] = -1
			if next == i {
				items[cur] = saved
				break
			}
			items[cur] = items[next]
			cur = next
		}
	}
}
