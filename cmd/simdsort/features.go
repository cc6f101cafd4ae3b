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

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-simdsort/hwy"
	"github.com/ajroetker/go-simdsort/hwy/contrib/sort"
)

var errUnsupported = errors.New("feature not supported")

func newFeaturesCmd() *cobra.Command {
	var check string
	cmd := &cobra.Command{
		Use:   "features",
		Short: "Show the detected SIMD target and CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if check != "" {
				ok := sort.Supports(check)
				fmt.Fprintf(out, "%s: %v\n", strings.ToLower(check), ok)
				if !ok {
					return fmt.Errorf("%w: %s", errUnsupported, check)
				}
				return nil
			}

			caps := hwy.DetectCapabilities()
			fmt.Fprintf(out, "target:   %s (%d-bit)\n", hwy.CurrentName(), hwy.CurrentWidth()*8)
			fmt.Fprintf(out, "features: %s\n", strings.Join(caps.Features(), " "))
			lanes := lo.Map(typeNames(), func(name string, _ int) string {
				return fmt.Sprintf("%s=%d", name, runners[name].lanes())
			})
			fmt.Fprintf(out, "lanes:    %s\n", strings.Join(lanes, " "))
			if hwy.NoSimdEnv() {
				fmt.Fprintln(out, "HWY_NO_SIMD is set")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&check, "check", "", "report whether one feature is supported and fail if it is not")
	return cmd
}
