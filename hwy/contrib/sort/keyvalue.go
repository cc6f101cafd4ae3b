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

// KeyValueSort sorts keys in place and applies the same permutation to
// values. Values are never compared, so pairs with equal keys end up in an
// unspecified relative order.
func KeyValueSort[K, V hwy.Lanes](keys []K, values []V, opts ...Option) (err error) {
	if err = checkLengths(len(keys), len(values)); err != nil {
		return err
	}
	defer recoverInternal(&err)
	cfg := newConfig(opts)
	lo, hi := nanWindowKV(keys, values, cfg)
	wk, wv := keys[lo:hi], values[lo:hi]
	restore := encodeKeys(wk)
	newKVSorter[K, V](cfg).qsort(wk, wv, maxDepth(len(wk)))
	restore()
	return nil
}

// KeyValueSelect is Select over keys with values kept beside their keys.
func KeyValueSelect[K, V hwy.Lanes](keys []K, values []V, k int, opts ...Option) (err error) {
	if err = checkLengths(len(keys), len(values)); err != nil {
		return err
	}
	if err = checkSelectIndex(k, len(keys)); err != nil {
		return err
	}
	defer recoverInternal(&err)
	cfg := newConfig(opts)
	lo, hi := nanWindowKV(keys, values, cfg)
	if k < lo || k >= hi {
		return nil
	}
	wk, wv := keys[lo:hi], values[lo:hi]
	restore := encodeKeys(wk)
	newKVSorter[K, V](cfg).qselect(wk, wv, k-lo, maxDepth(len(wk)))
	restore()
	return nil
}

// KeyValuePartialSort is PartialSort over keys with values kept beside
// their keys.
func KeyValuePartialSort[K, V hwy.Lanes](keys []K, values []V, k int, opts ...Option) (err error) {
	if err = checkLengths(len(keys), len(values)); err != nil {
		return err
	}
	if err = checkPartialIndex(k, len(keys)); err != nil {
		return err
	}
	if k == 0 {
		return nil
	}
	defer recoverInternal(&err)
	cfg := newConfig(opts)
	lo, hi := nanWindowKV(keys, values, cfg)
	if k <= lo {
		return nil
	}
	wk, wv := keys[lo:hi], values[lo:hi]
	restore := encodeKeys(wk)
	newKVSorter[K, V](cfg).partialSort(wk, wv, min(k, hi)-lo, maxDepth(len(wk)))
	restore()
	return nil
}
