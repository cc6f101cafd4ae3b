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
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestSelectLevel(t *testing.T) {
	avx512 := newCapabilities(map[string]bool{
		FeatureSSE2: true, FeatureAVX2: true,
		FeatureAVX512F: true, FeatureAVX512BW: true, FeatureAVX512DQ: true, FeatureAVX512VL: true,
	})
	avx2 := newCapabilities(map[string]bool{FeatureSSE2: true, FeatureAVX2: true})
	neon := newCapabilities(map[string]bool{FeatureNEON: true})
	none := newCapabilities(nil)

	tests := []struct {
		name string
		caps Capabilities
		env  map[string]string
		want DispatchLevel
	}{
		{"best avx512", avx512, nil, DispatchAVX512},
		{"best avx2", avx2, nil, DispatchAVX2},
		{"best neon", neon, nil, DispatchNEON},
		{"nothing", none, nil, DispatchScalar},
		{"no simd", avx512, map[string]string{"HWY_NO_SIMD": "1"}, DispatchScalar},
		{"no simd false", avx2, map[string]string{"HWY_NO_SIMD": "false"}, DispatchAVX2},
		{"no simd any value", avx2, map[string]string{"HWY_NO_SIMD": "yes please"}, DispatchScalar},
		{"target lower", avx512, map[string]string{"HWY_TARGET": "avx2"}, DispatchAVX2},
		{"target case", avx512, map[string]string{"HWY_TARGET": " SSE2 "}, DispatchSSE2},
		{"target unavailable", avx2, map[string]string{"HWY_TARGET": "avx512"}, DispatchAVX2},
		{"target unknown", avx2, map[string]string{"HWY_TARGET": "mmx"}, DispatchAVX2},
		{"no simd wins", avx2, map[string]string{"HWY_NO_SIMD": "1", "HWY_TARGET": "avx2"}, DispatchScalar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, selectLevel(tt.caps, fakeEnv(tt.env)))
		})
	}
}

func TestAVX512NeedsSKXSubset(t *testing.T) {
	partial := newCapabilities(map[string]bool{FeatureAVX2: true, FeatureAVX512F: true})
	assert.False(t, partial.Available(DispatchAVX512))
	assert.Equal(t, DispatchAVX2, partial.BestLevel())
}

func TestDispatchLevelNames(t *testing.T) {
	for _, level := range []DispatchLevel{DispatchScalar, DispatchSSE2, DispatchAVX2, DispatchAVX512, DispatchNEON, DispatchSVE} {
		parsed, ok := ParseDispatchLevel(level.String())
		require.True(t, ok, level.String())
		assert.Equal(t, level, parsed)
	}
	_, ok := ParseDispatchLevel("bogus")
	assert.False(t, ok)
	assert.Equal(t, "unknown", DispatchLevel(99).String())
}

func TestDispatchWidth(t *testing.T) {
	assert.Equal(t, 16, DispatchScalar.Width())
	assert.Equal(t, 16, DispatchNEON.Width())
	assert.Equal(t, 32, DispatchAVX2.Width())
	assert.Equal(t, 64, DispatchAVX512.Width())
}

func TestCurrentLevel(t *testing.T) {
	level := CurrentLevel()
	assert.True(t, DetectCapabilities().Available(level), "current level %s not available", level)
	assert.Equal(t, level.Width(), CurrentWidth())
	assert.Equal(t, level.String(), CurrentName())
	if NoSimdEnv() {
		assert.Equal(t, DispatchScalar, level)
	}
}

func TestMaxLanes(t *testing.T) {
	width := CurrentWidth()
	assert.Equal(t, width/4, MaxLanes[float32]())
	assert.Equal(t, width/8, MaxLanes[int64]())
	assert.Equal(t, width, MaxLanes[uint8]())
}

func TestCapabilities(t *testing.T) {
	caps := newCapabilities(map[string]bool{FeatureAVX2: true, FeatureFMA: true, FeatureSSE2: false})
	assert.True(t, caps.Supports("avx2"))
	assert.True(t, caps.Supports(" AVX2 "))
	assert.False(t, caps.Supports("sse2"))
	assert.False(t, caps.Supports("quantum"))
	assert.Equal(t, []string{"avx2", "fma"}, caps.Features())
}

func TestDetectCapabilities(t *testing.T) {
	caps := DetectCapabilities()
	switch runtime.GOARCH {
	case "amd64":
		assert.True(t, caps.Supports(FeatureSSE2), "every amd64 CPU has SSE2")
		assert.False(t, caps.Supports(FeatureNEON))
	case "arm64":
		assert.False(t, caps.Supports(FeatureAVX2))
	}
	assert.Equal(t, caps.Supports(FeatureAVX2), Supports("avx2"))
}
