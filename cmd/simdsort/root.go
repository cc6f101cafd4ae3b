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
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
	jobs    int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "simdsort",
		Short:        "Vectorized sort, select and partial sort over numeric input",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log dispatch and timing details to stderr")
	root.PersistentFlags().IntVarP(&opts.jobs, "jobs", "j", 0, "parser goroutines, 0 for GOMAXPROCS")

	root.AddCommand(
		newFeaturesCmd(),
		newSortCmd(opts, modeSort),
		newSortCmd(opts, modeSelect),
		newSortCmd(opts, modePartial),
	)
	return root
}

// logger returns a text logger on w; debug records only show with --verbose.
func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
