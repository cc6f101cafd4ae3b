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
	"slices"
	"strings"
	"sync"
)

// Feature names understood by Supports.
const (
	FeatureSSE2        = "sse2"
	FeatureSSE41       = "sse4.1"
	FeatureSSE42       = "sse4.2"
	FeatureAVX         = "avx"
	FeatureAVX2        = "avx2"
	FeatureFMA         = "fma"
	FeatureBMI2        = "bmi2"
	FeaturePOPCNT      = "popcnt"
	FeatureAVX512F     = "avx512f"
	FeatureAVX512BW    = "avx512bw"
	FeatureAVX512CD    = "avx512cd"
	FeatureAVX512DQ    = "avx512dq"
	FeatureAVX512VL    = "avx512vl"
	FeatureAVX512VBMI  = "avx512vbmi"
	FeatureAVX512VBMI2 = "avx512vbmi2"
	FeatureAVX512BF16  = "avx512bf16"
	FeatureNEON        = "neon"
	FeatureFP16        = "fp16"
	FeatureSVE         = "sve"
	FeatureSVE2        = "sve2"
)

// Capabilities is an immutable snapshot of the instruction-set extensions
// available on the running CPU.
type Capabilities struct {
	features map[string]bool
}

func newCapabilities(features map[string]bool) Capabilities {
	present := make(map[string]bool, len(features))
	for name, ok := range features {
		if ok {
			present[name] = true
		}
	}
	return Capabilities{features: present}
}

// Supports reports whether the named extension is present. Names are
// case-insensitive; unknown names report false.
func (c Capabilities) Supports(name string) bool {
	return c.features[strings.ToLower(strings.TrimSpace(name))]
}

// Features returns the names of all present extensions in sorted order.
func (c Capabilities) Features() []string {
	names := make([]string, 0, len(c.features))
	for name := range c.features {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// hasAVX512SKX matches the Skylake-X subset the 512-bit kernels rely on.
func (c Capabilities) hasAVX512SKX() bool {
	return c.features[FeatureAVX512F] && c.features[FeatureAVX512BW] &&
		c.features[FeatureAVX512DQ] && c.features[FeatureAVX512VL]
}

// detected is computed on first use and never modified afterwards.
var detected = sync.OnceValue(func() Capabilities {
	return newCapabilities(detectFeatures())
})

// DetectCapabilities returns the process-wide capability snapshot.
// It is safe for concurrent use.
func DetectCapabilities() Capabilities {
	return detected()
}

// Supports reports whether the running CPU has the named extension.
func Supports(name string) bool {
	return detected().Supports(name)
}
