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

// Sort sorts data in place, ascending unless Descending is given.
//
// The order of equal elements is not preserved. Float -0 and +0 compare
// equal and may appear in either order; Float16 places -0 first.
func Sort[T hwy.Lanes](data []T, opts ...Option) (err error) {
	defer recoverInternal(&err)
	cfg := newConfig(opts)
	lo, hi := nanWindow(data, cfg)
	w := data[lo:hi]
	restore := encodeKeys(w)
	newSorter[T](cfg).qsort(w, maxDepth(len(w)))
	restore()
	return nil
}

// Select rearranges data so that data[k] holds the element a full sort
// would put there, nothing before k comes after it and nothing after k comes
// before it. k must be in [0, len(data)).
func Select[T hwy.Lanes](data []T, k int, opts ...Option) (err error) {
	if err = checkSelectIndex(k, len(data)); err != nil {
		return err
	}
	defer recoverInternal(&err)
	cfg := newConfig(opts)
	lo, hi := nanWindow(data, cfg)
	if k < lo || k >= hi {
		// k falls among the NaNs.
		return nil
	}
	w := data[lo:hi]
	restore := encodeKeys(w)
	newSorter[T](cfg).qselect(w, k-lo, maxDepth(len(w)))
	restore()
	return nil
}

// PartialSort rearranges data so that data[:k] holds the k first elements
// of a full sort, in order. The rest of data is left in an unspecified
// order. k must be in [0, len(data)]; k == 0 does nothing.
func PartialSort[T hwy.Lanes](data []T, k int, opts ...Option) (err error) {
	if err = checkPartialIndex(k, len(data)); err != nil {
		return err
	}
	if k == 0 {
		return nil
	}
	defer recoverInternal(&err)
	cfg := newConfig(opts)
	lo, hi := nanWindow(data, cfg)
	if k <= lo {
		return nil
	}
	w := data[lo:hi]
	restore := encodeKeys(w)
	newSorter[T](cfg).partialSort(w, min(k, hi)-lo, maxDepth(len(w)))
	restore()
	return nil
}

// IsSorted reports whether data is in the order Sort would produce. With
// HasNaN, NaNs must sit at the end (or the start when descending).
func IsSorted[T hwy.Lanes](data []T, opts ...Option) bool {
	cfg := newConfig(opts)
	lo, hi := 0, len(data)
	if cfg.hasNaN {
		isNaN := nanPredicate[T]()
		if cfg.descending {
			for lo < hi && isNaN(data[lo]) {
				lo++
			}
		} else {
			for hi > lo && isNaN(data[hi-1]) {
				hi--
			}
		}
		for _, x := range data[lo:hi] {
			if isNaN(x) {
				return false
			}
		}
	}
	w := data[lo:hi]

	if h, ok := any(w).([]hwy.Float16); ok {
		o := order[float32]{descending: cfg.descending}
		for i := 1; i < len(h); i++ {
			if o.less(h[i].Float32(), h[i-1].Float32()) {
				return false
			}
		}
		return true
	}

	o := order[T]{descending: cfg.descending}
	lanes := hwy.LanesFor[T](cfg.tag)
	n := len(w)
	i := 0
	// Compare each register with the one starting a lane later.
	for ; i+lanes < n; i += lanes {
		v1 := hwy.LoadN(w[i:], lanes)
		v2 := hwy.LoadN(w[i+1:], lanes)
		if hwy.FindFirstTrue(o.lt(v2, v1)) >= 0 {
			return false
		}
	}
	for ; i < n-1; i++ {
		if o.less(w[i+1], w[i]) {
			return false
		}
	}
	return true
}

func nanPredicate[T hwy.Lanes]() func(T) bool {
	var zero T
	if _, ok := any(zero).(hwy.Float16); ok {
		return func(x T) bool { return any(x).(hwy.Float16).IsNaN() }
	}
	return func(x T) bool { return x != x }
}

// Supports reports whether the running CPU has the named feature, such as
// "avx2", "avx512f" or "neon". Names are case-insensitive.
func Supports(feature string) bool {
	return hwy.Supports(feature)
}
