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

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"unsafe"
)

// DispatchLevel represents the instruction set the kernels are sized for.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON

	// DispatchSVE indicates ARM SVE instructions (scalable vector).
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes for the level.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		// Scalar keeps 16-byte vectors so kernels see the same shape everywhere.
		return 16
	}
}

// ParseDispatchLevel parses a level name as printed by String.
func ParseDispatchLevel(s string) (DispatchLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return DispatchScalar, true
	case "sse2":
		return DispatchSSE2, true
	case "avx2":
		return DispatchAVX2, true
	case "avx512":
		return DispatchAVX512, true
	case "neon":
		return DispatchNEON, true
	case "sve":
		return DispatchSVE, true
	default:
		return DispatchScalar, false
	}
}

// Available reports whether the level can run with the given capabilities.
func (c Capabilities) Available(level DispatchLevel) bool {
	switch level {
	case DispatchScalar:
		return true
	case DispatchSSE2:
		return c.features[FeatureSSE2]
	case DispatchAVX2:
		return c.features[FeatureAVX2]
	case DispatchAVX512:
		return c.hasAVX512SKX()
	case DispatchNEON:
		return c.features[FeatureNEON]
	case DispatchSVE:
		return c.features[FeatureSVE]
	default:
		return false
	}
}

// BestLevel returns the widest level the capabilities allow.
func (c Capabilities) BestLevel() DispatchLevel {
	for _, level := range []DispatchLevel{DispatchAVX512, DispatchAVX2, DispatchSSE2, DispatchNEON} {
		if c.Available(level) {
			return level
		}
	}
	return DispatchScalar
}

// current is resolved once from the capability snapshot and the environment.
var current = sync.OnceValue(func() DispatchLevel {
	return selectLevel(DetectCapabilities(), os.Getenv)
})

// selectLevel applies HWY_NO_SIMD and HWY_TARGET on top of detection.
// A requested level the CPU cannot run is ignored.
func selectLevel(caps Capabilities, getenv func(string) string) DispatchLevel {
	if noSimd(getenv("HWY_NO_SIMD")) {
		return DispatchScalar
	}
	if name := getenv("HWY_TARGET"); name != "" {
		if level, ok := ParseDispatchLevel(name); ok && caps.Available(level) {
			return level
		}
	}
	return caps.BestLevel()
}

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return current()
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return current().Width()
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return current().String()
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the scalar-sized kernels are used regardless of CPU capabilities.
func NoSimdEnv() bool {
	return noSimd(os.Getenv("HWY_NO_SIMD"))
}

func noSimd(val string) bool {
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of lanes for type T with the current SIMD width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int32: 32/4 = 8 lanes
func MaxLanes[T Lanes]() int {
	return lanesFor[T](CurrentWidth())
}

func lanesFor[T Lanes](width int) int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return width / elementSize
}
