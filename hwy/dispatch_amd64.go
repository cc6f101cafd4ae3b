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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

func detectFeatures() map[string]bool {
	return map[string]bool{
		FeatureSSE2:        cpu.X86.HasSSE2,
		FeatureSSE41:       cpu.X86.HasSSE41,
		FeatureSSE42:       cpu.X86.HasSSE42,
		FeatureAVX:         cpu.X86.HasAVX,
		FeatureAVX2:        cpu.X86.HasAVX2,
		FeatureFMA:         cpu.X86.HasFMA,
		FeatureBMI2:        cpu.X86.HasBMI2,
		FeaturePOPCNT:      cpu.X86.HasPOPCNT,
		FeatureAVX512F:     cpu.X86.HasAVX512F,
		FeatureAVX512BW:    cpu.X86.HasAVX512BW,
		FeatureAVX512CD:    cpu.X86.HasAVX512CD,
		FeatureAVX512DQ:    cpu.X86.HasAVX512DQ,
		FeatureAVX512VL:    cpu.X86.HasAVX512VL,
		FeatureAVX512VBMI:  cpu.X86.HasAVX512VBMI,
		FeatureAVX512VBMI2: cpu.X86.HasAVX512VBMI2,
		FeatureAVX512BF16:  cpu.X86.HasAVX512BF16,
	}
}
