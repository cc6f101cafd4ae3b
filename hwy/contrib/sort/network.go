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

// pair is one comparator of a sorting network: after it runs, register i
// holds the element that comes first and register j the one that comes last.
type pair struct {
	i, j uint8
}

// Networks with the fewest known comparators for 4, 8 and 16 inputs, one
// layer of independent comparators per line. The 32-input network sorts both
// halves with network16 and joins them with a Batcher odd-even merge.

var network2 = []pair{{0, 1}}

var network4 = []pair{
	{0, 1}, {2, 3},
	{0, 2}, {1, 3},
	{1, 2},
}

var network8 = []pair{
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{2, 4}, {3, 5},
	{1, 4}, {3, 6},
	{1, 2}, {3, 4}, {5, 6},
}

var network16 = []pair{
	{0, 13}, {1, 12}, {2, 15}, {3, 14}, {4, 8}, {5, 6}, {7, 11}, {9, 10},
	{0, 5}, {1, 7}, {2, 9}, {3, 4}, {6, 13}, {8, 14}, {10, 15}, {11, 12},
	{0, 1}, {2, 3}, {4, 5}, {6, 8}, {7, 9}, {10, 11}, {12, 13}, {14, 15},
	{0, 2}, {1, 3}, {4, 10}, {5, 11}, {6, 7}, {8, 9}, {12, 14}, {13, 15},
	{1, 2}, {3, 12}, {4, 6}, {5, 7}, {8, 10}, {9, 11}, {13, 14},
	{1, 4}, {2, 6}, {5, 8}, {7, 10}, {9, 13}, {11, 14},
	{2, 4}, {3, 6}, {9, 12}, {11, 13},
	{3, 5}, {6, 8}, {7, 9}, {10, 12},
	{3, 4}, {5, 6}, {7, 8}, {9, 10}, {11, 12},
	{6, 7}, {8, 9},
}

var network32 = []pair{
	// Lower half.
	{0, 13}, {1, 12}, {2, 15}, {3, 14}, {4, 8}, {5, 6}, {7, 11}, {9, 10},
	{0, 5}, {1, 7}, {2, 9}, {3, 4}, {6, 13}, {8, 14}, {10, 15}, {11, 12},
	{0, 1}, {2, 3}, {4, 5}, {6, 8}, {7, 9}, {10, 11}, {12, 13}, {14, 15},
	{0, 2}, {1, 3}, {4, 10}, {5, 11}, {6, 7}, {8, 9}, {12, 14}, {13, 15},
	{1, 2}, {3, 12}, {4, 6}, {5, 7}, {8, 10}, {9, 11}, {13, 14},
	{1, 4}, {2, 6}, {5, 8}, {7, 10}, {9, 13}, {11, 14},
	{2, 4}, {3, 6}, {9, 12}, {11, 13},
	{3, 5}, {6, 8}, {7, 9}, {10, 12},
	{3, 4}, {5, 6}, {7, 8}, {9, 10}, {11, 12},
	{6, 7}, {8, 9},
	// Upper half.
	{16, 29}, {17, 28}, {18, 31}, {19, 30}, {20, 24}, {21, 22}, {23, 27}, {25, 26},
	{16, 21}, {17, 23}, {18, 25}, {19, 20}, {22, 29}, {24, 30}, {26, 31}, {27, 28},
	{16, 17}, {18, 19}, {20, 21}, {22, 24}, {23, 25}, {26, 27}, {28, 29}, {30, 31},
	{16, 18}, {17, 19}, {20, 26}, {21, 27}, {22, 23}, {24, 25}, {28, 30}, {29, 31},
	{17, 18}, {19, 28}, {20, 22}, {21, 23}, {24, 26}, {25, 27}, {29, 30},
	{17, 20}, {18, 22}, {21, 24}, {23, 26}, {25, 29}, {27, 30},
	{18, 20}, {19, 22}, {25, 28}, {27, 29},
	{19, 21}, {22, 24}, {23, 25}, {26, 28},
	{19, 20}, {21, 22}, {23, 24}, {25, 26}, {27, 28},
	{22, 23}, {24, 25},
	// Odd-even merge of the halves.
	{0, 16}, {8, 24}, {8, 16}, {4, 20}, {12, 28}, {12, 20}, {4, 8}, {12, 16},
	{20, 24}, {2, 18}, {10, 26}, {10, 18}, {6, 22}, {14, 30}, {14, 22}, {6, 10},
	{14, 18}, {22, 26}, {2, 4}, {6, 8}, {10, 12}, {14, 16}, {18, 20}, {22, 24},
	{26, 28}, {1, 17}, {9, 25}, {9, 17}, {5, 21}, {13, 29}, {13, 21}, {5, 9},
	{13, 17}, {21, 25}, {3, 19}, {11, 27}, {11, 19}, {7, 23}, {15, 31}, {15, 23},
	{7, 11}, {15, 19}, {23, 27}, {3, 5}, {7, 9}, {11, 13}, {15, 17}, {19, 21},
	{23, 25}, {27, 29}, {1, 2}, {3, 4}, {5, 6}, {7, 8}, {9, 10}, {11, 12},
	{13, 14}, {15, 16}, {17, 18}, {19, 20}, {21, 22}, {23, 24}, {25, 26}, {27, 28},
	{29, 30},
}

// networkFor returns the network for a register group of n registers.
func networkFor(n int) []pair {
	switch n {
	case 2:
		return network2
	case 4:
		return network4
	case 8:
		return network8
	case 16:
		return network16
	case 32:
		return network32
	default:
		return nil
	}
}

// sortRegisters sorts the lanes*len(regs) elements held by a register group.
// len(regs) must be a power of two no larger than 32.
//
// The network sorts every column (lane l across all registers). The sorted
// columns are then merged pairwise, as runs of column-major positions
// p = l*len(regs)+r, until one run spans the group. Afterwards lane l of
// regs[r] holds the element of rank l*len(regs)+r.
func sortRegisters[T hwy.Lanes](o order[T], regs []hwy.Vec[T], lanes int) {
	n := len(regs)
	for _, p := range networkFor(n) {
		regs[p.i], regs[p.j] = o.coex(regs[p.i], regs[p.j])
	}
	for block := 2 * n; block <= n*lanes; block *= 2 {
		mergeRegisters(o, regs, lanes, block)
	}
}

// mergeRegisters merges adjacent sorted runs of block/2 positions into
// sorted runs of block positions. The first stage compares each run against
// the reverse of its neighbour, which leaves two bitonic halves; the
// remaining stages halve the comparison stride down to one position.
func mergeRegisters[T hwy.Lanes](o order[T], regs []hwy.Vec[T], lanes, block int) {
	n := len(regs)

	// Position p pairs with p^(block-1): register r with register n-1-r,
	// lane l with lane l^m.
	m := block/n - 1
	keep := hwy.LaneBitClear[T](lanes, (m+1)/2)
	for r := range max(n/2, 1) {
		s := n - 1 - r
		first, last := o.coex(regs[r], hwy.XorLanes(regs[s], m))
		regs[r] = hwy.IfThenElse(keep, first, last)
		if s != r {
			regs[s] = hwy.XorLanes(hwy.IfThenElse(keep, last, first), m)
		}
	}

	for stride := block / 4; stride >= 1; stride /= 2 {
		if stride < n {
			for r := range n {
				if r&stride == 0 {
					regs[r], regs[r|stride] = o.coex(regs[r], regs[r|stride])
				}
			}
			continue
		}
		d := stride / n
		keep := hwy.LaneBitClear[T](lanes, d)
		for r, v := range regs {
			regs[r] = o.blend(v, hwy.XorLanes(v, d), keep)
		}
	}
}

// sortRegistersKV is sortRegisters for a key register group with a value
// register group riding along.
func sortRegistersKV[K, V hwy.Lanes](o order[K], keys []hwy.Vec[K], vals []hwy.Vec[V], lanes int) {
	n := len(keys)
	for _, p := range networkFor(n) {
		keys[p.i], keys[p.j], vals[p.i], vals[p.j] = coexKV(o, keys[p.i], keys[p.j], vals[p.i], vals[p.j])
	}
	for block := 2 * n; block <= n*lanes; block *= 2 {
		mergeRegistersKV(o, keys, vals, lanes, block)
	}
}

func mergeRegistersKV[K, V hwy.Lanes](o order[K], keys []hwy.Vec[K], vals []hwy.Vec[V], lanes, block int) {
	n := len(keys)

	m := block/n - 1
	keep := hwy.LaneBitClear[K](lanes, (m+1)/2)
	for r := range max(n/2, 1) {
		s := n - 1 - r
		if s == r {
			keys[r], vals[r] = blendKV(o, keys[r], hwy.XorLanes(keys[r], m), vals[r], hwy.XorLanes(vals[r], m), keep)
			continue
		}
		ka, kb, va, vb := keys[r], hwy.XorLanes(keys[s], m), vals[r], hwy.XorLanes(vals[s], m)
		swap := hwy.MaskIfThenElse(keep, o.lt(kb, ka), o.lt(ka, kb))
		vswap := hwy.RebindMask[V](swap)
		keys[r], vals[r] = hwy.IfThenElse(swap, kb, ka), hwy.IfThenElse(vswap, vb, va)
		keys[s] = hwy.XorLanes(hwy.IfThenElse(swap, ka, kb), m)
		vals[s] = hwy.XorLanes(hwy.IfThenElse(vswap, va, vb), m)
	}

	for stride := block / 4; stride >= 1; stride /= 2 {
		if stride < n {
			for r := range n {
				if q := r | stride; r&stride == 0 {
					keys[r], keys[q], vals[r], vals[q] = coexKV(o, keys[r], keys[q], vals[r], vals[q])
				}
			}
			continue
		}
		d := stride / n
		keep := hwy.LaneBitClear[K](lanes, d)
		for r := range keys {
			keys[r], vals[r] = blendKV(o, keys[r], hwy.XorLanes(keys[r], d), vals[r], hwy.XorLanes(vals[r], d), keep)
		}
	}
}

// groupSize returns the smallest power-of-two register count holding n
// elements.
func groupSize(n, lanes int) int {
	regs := 1
	for regs*lanes < n {
		regs *= 2
	}
	return regs
}

// loadGroup loads data into regs registers, filling the tail with pad.
func loadGroup[T hwy.Lanes](data []T, regs, lanes int, pad T) []hwy.Vec[T] {
	group := make([]hwy.Vec[T], regs)
	for r := range group {
		start := r * lanes
		if start+lanes <= len(data) {
			group[r] = hwy.LoadN(data[start:], lanes)
			continue
		}
		buf := make([]T, lanes)
		for i := range buf {
			buf[i] = pad
		}
		if start < len(data) {
			copy(buf, data[start:])
		}
		group[r] = hwy.LoadN(buf, lanes)
	}
	return group
}
