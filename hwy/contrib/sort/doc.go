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

// Package sort provides vectorized sorting, selection and partial sorting
// of numeric slices, plus key-value variants that carry a second slice
// along with the keys.
//
// # Algorithm
//
// Large inputs are partitioned around the median of 16 evenly spaced
// samples. The partition kernel splits each register with two compressing
// stores, one for each side, so it never branches on element values.
// Partitioning stops once a segment fits in one register group (at most 32
// registers and 256 elements), which is then sorted by an optimal sorting
// network across registers followed by bitonic merges inside them.
// A depth limit of 2*log2(n) levels falls back to heapsort.
//
// Select and PartialSort use the same partition but only descend into the
// sides that can still affect the requested positions.
//
// # Supported Types
//
//   - int8, int16, int32, int64 and uint8 through uint64
//   - float32, float64
//   - hwy.Float16
//
// Values of a key-value call can be any of these types; they are moved,
// never compared.
//
// # Floating Point
//
// With the HasNaN option NaNs are moved to the end of an ascending result
// (the start of a descending one) with their bits preserved, and the rest is
// sorted. Without it the caller asserts there are no NaNs.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-simdsort/hwy/contrib/sort"
//
//	func Top10(scores []float32) error {
//	    return sort.PartialSort(scores, 10, sort.Descending(), sort.HasNaN())
//	}
//
// Register width follows the detected CPU (see hwy.CurrentLevel); the
// result never depends on it.
package sort
