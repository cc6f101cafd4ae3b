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

package hwy

import "testing"

// maskFromBits creates a lanes-wide mask where bit i of bits sets lane i.
func maskFromBits[T Lanes](bits uint64, lanes int) Mask[T] {
	result := make([]bool, lanes)
	for i := 0; i < lanes && i < 64; i++ {
		result[i] = bits&(1<<i) != 0
	}
	return Mask[T]{bits: result}
}

// bitsFromMask packs mask into an integer, lane i in bit i.
func bitsFromMask[T Lanes](mask Mask[T]) uint64 {
	var result uint64
	for i, bit := range mask.bits {
		if bit && i < 64 {
			result |= 1 << i
		}
	}
	return result
}

func TestMaskFromBitsRoundTrip(t *testing.T) {
	for _, bits := range []uint64{0, 1, 0xA5, 0xFFFF, 0x8001} {
		if got := bitsFromMask(maskFromBits[uint16](bits, 16)); got != bits {
			t.Errorf("round trip %x: got %x", bits, got)
		}
	}
}
