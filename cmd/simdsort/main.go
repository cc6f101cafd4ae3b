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

// Command simdsort sorts, selects and partially sorts numbers read from a
// file or stdin with the vectorized kernels of hwy/contrib/sort.
//
// Usage:
//
//	simdsort features                       # detected target and CPU features
//	simdsort features --check avx512f       # exit status reports support
//	simdsort sort -t int32 --desc data.txt  # sort, largest first
//	simdsort select -k 100 data.txt.zst     # the value of rank 100
//	simdsort partial -k 10 --nan < data.gz  # the 10 smallest, NaNs last
//
// Input is whitespace or comma separated. Gzip and zstd input is detected
// from its magic bytes and decompressed on the fly.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
