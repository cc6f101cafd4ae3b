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

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/ajroetker/go-simdsort/hwy"
)

// TestMain prints which register width the kernels run with, so a CI log
// shows what was exercised.
func TestMain(m *testing.M) {
	fmt.Printf("=== sort dispatch ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("HWY_NO_SIMD=%q HWY_TARGET=%q\n", os.Getenv("HWY_NO_SIMD"), os.Getenv("HWY_TARGET"))
	fmt.Printf("Level: %s (%d bytes)\n", hwy.CurrentName(), hwy.CurrentWidth())
	fmt.Printf("Features: %s\n", strings.Join(hwy.DetectCapabilities().Features(), " "))
	fmt.Printf("=====================\n\n")

	os.Exit(m.Run())
}
