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
	"slices"

	"github.com/ajroetker/go-simdsort/hwy"
)

// nanWindow moves NaNs out of the way when cfg asks for it and returns the
// bounds of the elements left to order. NaNs go to the end of an ascending
// sort and to the start of a descending one.
func nanWindow[T hwy.Lanes](data []T, cfg *config) (lo, hi int) {
	if !cfg.hasNaN {
		return 0, len(data)
	}
	if h, ok := any(data).([]hwy.Float16); ok {
		return moveNaNs(h, hwy.Float16.IsNaN, countNaNsFunc(h, hwy.Float16.IsNaN), cfg.descending)
	}
	if !isFloat[T]() {
		return 0, len(data)
	}
	isNaN := func(x T) bool { return x != x }
	return moveNaNs(data, isNaN, countNaNs(data, cfg.tag), cfg.descending)
}

// nanWindowKV is nanWindow for keys, keeping every value with its key.
func nanWindowKV[K, V hwy.Lanes](keys []K, vals []V, cfg *config) (lo, hi int) {
	if !cfg.hasNaN {
		return 0, len(keys)
	}
	if h, ok := any(keys).([]hwy.Float16); ok {
		return moveNaNsKV(h, vals, hwy.Float16.IsNaN, countNaNsFunc(h, hwy.Float16.IsNaN), cfg.descending)
	}
	if !isFloat[K]() {
		return 0, len(keys)
	}
	isNaN := func(x K) bool { return x != x }
	return moveNaNsKV(keys, vals, isNaN, countNaNs(keys, cfg.tag), cfg.descending)
}

// countNaNs counts NaN lanes a register at a time for the native float
// types.
func countNaNs[T hwy.Lanes](data []T, tag hwy.Tag) int {
	switch d := any(data).(type) {
	case []float32:
		return countNaNLanes(d, hwy.LanesFor[float32](tag))
	case []float64:
		return countNaNLanes(d, hwy.LanesFor[float64](tag))
	}
	return countNaNsFunc(data, func(x T) bool { return x != x })
}

func countNaNLanes[T hwy.Floats](data []T, lanes int) int {
	count, i := 0, 0
	for ; i+lanes <= len(data); i += lanes {
		count += hwy.CountTrue(hwy.IsNaN(hwy.LoadN(data[i:], lanes)))
	}
	for _, x := range data[i:] {
		if x != x {
			count++
		}
	}
	return count
}

func countNaNsFunc[T any](data []T, isNaN func(T) bool) int {
	count := 0
	for _, x := range data {
		if isNaN(x) {
			count++
		}
	}
	return count
}

// moveNaNs moves the count NaNs of data to one end, keeping the relative
// order of both groups, and returns the bounds of the others.
func moveNaNs[T any](data []T, isNaN func(T) bool, count int, atStart bool) (lo, hi int) {
	if count == 0 {
		return 0, len(data)
	}
	nans := make([]T, 0, count)
	if !atStart {
		w := 0
		for _, x := range data {
			if isNaN(x) {
				nans = append(nans, x)
				continue
			}
			data[w] = x
			w++
		}
		copy(data[w:], nans)
		return 0, w
	}
	w := len(data)
	for i := len(data) - 1; i >= 0; i-- {
		if x := data[i]; isNaN(x) {
			nans = append(nans, x)
		} else {
			w--
			data[w] = x
		}
	}
	slices.Reverse(nans)
	copy(data, nans)
	return w, len(data)
}

func moveNaNsKV[K, V any](keys []K, vals []V, isNaN func(K) bool, count int, atStart bool) (lo, hi int) {
	if count == 0 {
		return 0, len(keys)
	}
	nanKeys := make([]K, 0, count)
	nanVals := make([]V, 0, count)
	if !atStart {
		w := 0
		for i, k := range keys {
			if isNaN(k) {
				nanKeys = append(nanKeys, k)
				nanVals = append(nanVals, vals[i])
				continue
			}
			keys[w], vals[w] = k, vals[i]
			w++
		}
		copy(keys[w:], nanKeys)
		copy(vals[w:], nanVals)
		return 0, w
	}
	w := len(keys)
	for i := len(keys) - 1; i >= 0; i-- {
		if k := keys[i]; isNaN(k) {
			nanKeys = append(nanKeys, k)
			nanVals = append(nanVals, vals[i])
		} else {
			w--
			keys[w], vals[w] = k, vals[i]
		}
	}
	slices.Reverse(nanKeys)
	slices.Reverse(nanVals)
	copy(keys, nanKeys)
	copy(vals, nanVals)
	return w, len(keys)
}

// encodeKeys rewrites Float16 data as order-preserving unsigned keys so the
// integer kernels can sort it, and returns the function that restores the
// values. Other types are left alone.
func encodeKeys[T hwy.Lanes](data []T) (restore func()) {
	h, ok := any(data).([]hwy.Float16)
	if !ok {
		return func() {}
	}
	for i, x := range h {
		h[i] = hwy.Float16(x.SortKey())
	}
	return func() {
		for i, x := range h {
			h[i] = hwy.Float16FromSortKey(uint16(x))
		}
	}
}
