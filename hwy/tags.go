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

// Tag represents a vector size tag that determines how many lanes
// are used in SIMD operations.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("sse2", "avx2", etc.)
	Name() string
}

// ScalableTag adapts to the widest SIMD available at runtime.
// This is the recommended tag for most use cases.
type ScalableTag struct{}

// Width returns the current runtime SIMD width in bytes.
func (ScalableTag) Width() int {
	return CurrentWidth()
}

// Name returns the current runtime SIMD target name.
func (ScalableTag) Name() string {
	return CurrentName()
}

// FixedTag128 forces 128-bit vectors (SSE, NEON).
type FixedTag128 struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128) Width() int { return 16 }

// Name returns "128bit".
func (FixedTag128) Name() string { return "128bit" }

// FixedTag256 forces 256-bit vectors (AVX2).
type FixedTag256 struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256) Width() int { return 32 }

// Name returns "256bit".
func (FixedTag256) Name() string { return "256bit" }

// FixedTag512 forces 512-bit vectors (AVX-512).
type FixedTag512 struct{}

// Width returns 64 bytes (512 bits).
func (FixedTag512) Width() int { return 64 }

// Name returns "512bit".
func (FixedTag512) Name() string { return "512bit" }

// LanesFor returns how many T values fit in one vector of the tag's width.
// It never returns less than one lane.
func LanesFor[T Lanes](tag Tag) int {
	return max(lanesFor[T](tag.Width()), 1)
}
