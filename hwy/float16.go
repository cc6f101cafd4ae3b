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

import "math"

// Float16 represents an IEEE 754 half-precision (binary16) floating-point number.
// It wraps uint16 for storage but provides float semantics.
//
// Format: Sign (1 bit) | Exponent (5 bits) | Mantissa (10 bits)
//
//	S | EEEEE | MMMMMMMMMM
type Float16 uint16

// Float16 constants for special values.
const (
	Float16Zero     Float16 = 0x0000 // Positive zero
	Float16NegZero  Float16 = 0x8000 // Negative zero
	Float16One      Float16 = 0x3C00 // 1.0
	Float16MaxValue Float16 = 0x7BFF // 65504 (max finite value)
	Float16Inf      Float16 = 0x7C00 // Positive infinity
	Float16NegInf   Float16 = 0xFC00 // Negative infinity
	Float16NaN      Float16 = 0x7E00 // Quiet NaN (canonical)

	float16SignMask = 0x8000
	float16ExpMask  = 0x7C00
	float16MantMask = 0x03FF
)

// Float16ToFloat32 converts h to float32. The conversion is exact.
func Float16ToFloat32(h Float16) float32 {
	sign := uint32(h&float16SignMask) << 16
	exp := uint32(h&float16ExpMask) >> 10
	mant := uint32(h & float16MantMask)

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal: shift the leading one into the implicit position.
		e := uint32(127 - 14)
		for mant&0x400 == 0 {
			mant <<= 1
			e--
		}
		return math.Float32frombits(sign | e<<23 | (mant&float16MantMask)<<13)
	case 0x1F:
		// Inf keeps a zero mantissa, NaN keeps its payload.
		return math.Float32frombits(sign | 0x7F800000 | mant<<13)
	default:
		return math.Float32frombits(sign | (exp+127-15)<<23 | mant<<13)
	}
}

// Float32ToFloat16 converts f with round-to-nearest-even. Values beyond the
// half range become infinity, values below the smallest subnormal become zero.
func Float32ToFloat16(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & float16SignMask
	exp := int32(bits>>23) & 0xFF
	mant := bits & 0x7FFFFF

	if exp == 0xFF {
		if mant != 0 {
			return Float16(sign | 0x7E00 | uint16(mant>>13))
		}
		return Float16(sign) | Float16Inf
	}

	e := exp - 127 + 15
	if e >= 0x1F {
		return Float16(sign) | Float16Inf
	}
	if e <= 0 {
		if e < -10 {
			return Float16(sign)
		}
		m := mant | 0x800000
		shift := uint32(14 - e)
		r := m >> shift
		rem := m & (1<<shift - 1)
		half := uint32(1) << (shift - 1)
		if rem > half || (rem == half && r&1 == 1) {
			r++
		}
		return Float16(sign | uint16(r))
	}

	h := uint32(e)<<10 | mant>>13
	rem := mant & 0x1FFF
	if rem > 0x1000 || (rem == 0x1000 && h&1 == 1) {
		// A carry out of the mantissa bumps the exponent, up to infinity.
		h++
	}
	return Float16(sign | uint16(h))
}

// NewFloat16 creates a Float16 from a float32 value.
func NewFloat16(f float32) Float16 {
	return Float32ToFloat16(f)
}

// Float16FromBits creates a Float16 from its IEEE bit pattern.
func Float16FromBits(bits uint16) Float16 {
	return Float16(bits)
}

// Bits returns the IEEE bit pattern.
func (h Float16) Bits() uint16 {
	return uint16(h)
}

// Float32 converts this Float16 to float32.
func (h Float16) Float32() float32 {
	return Float16ToFloat32(h)
}

// IsNaN returns true if h is a NaN value.
func (h Float16) IsNaN() bool {
	return h&float16ExpMask == float16ExpMask && h&float16MantMask != 0
}

// IsInf returns true if h is positive or negative infinity.
func (h Float16) IsInf() bool {
	return h&^float16SignMask == Float16Inf
}

// IsZero returns true if h is positive or negative zero.
func (h Float16) IsZero() bool {
	return h&^float16SignMask == 0
}

// SortKey maps h to an unsigned key whose integer order matches the numeric
// order of non-NaN values. -0 maps just below +0.
func (h Float16) SortKey() uint16 {
	if h&float16SignMask != 0 {
		return ^uint16(h)
	}
	return uint16(h) | float16SignMask
}

// Float16FromSortKey inverts SortKey.
func Float16FromSortKey(key uint16) Float16 {
	if key&float16SignMask != 0 {
		return Float16(key &^ float16SignMask)
	}
	return Float16(^key)
}
