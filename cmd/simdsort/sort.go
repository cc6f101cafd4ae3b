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
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-simdsort/hwy/contrib/sort"
	"github.com/ajroetker/go-simdsort/hwy/contrib/workerpool"
)

type mode int

const (
	modeSort mode = iota
	modeSelect
	modePartial
)

func (m mode) String() string {
	switch m {
	case modeSelect:
		return "select"
	case modePartial:
		return "partial"
	default:
		return "sort"
	}
}

// elemType is a pflag.Value restricted to the supported element types.
type elemType string

var _ pflag.Value = (*elemType)(nil)

func (e *elemType) String() string { return string(*e) }

func (e *elemType) Set(s string) error {
	s = strings.ToLower(s)
	if !lo.Contains(typeNames(), s) {
		return fmt.Errorf("unknown type %q, want one of %s", s, strings.Join(typeNames(), ", "))
	}
	*e = elemType(s)
	return nil
}

func (e *elemType) Type() string { return "type" }

type sortOptions struct {
	typ   elemType
	desc  bool
	nan   bool
	input string
	k     int
}

var shortHelp = map[mode]string{
	modeSort:    "Sort all values",
	modeSelect:  "Print the value of rank k",
	modePartial: "Print the k first values in order",
}

func newSortCmd(root *rootOptions, m mode) *cobra.Command {
	opts := &sortOptions{typ: "float64", input: "-"}
	cmd := &cobra.Command{
		Use:   m.String() + " [file]",
		Short: shortHelp[m],
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.input = args[0]
			}
			return runSort(cmd, root, opts, m)
		},
	}

	f := cmd.Flags()
	f.VarP(&opts.typ, "type", "t", "element type ("+strings.Join(typeNames(), ", ")+")")
	f.BoolVar(&opts.desc, "desc", false, "largest first")
	f.BoolVar(&opts.nan, "nan", false, "input may hold NaN; NaNs are placed last (first with --desc)")
	f.StringVarP(&opts.input, "input", "i", opts.input, "input file, - for stdin")
	if m != modeSort {
		f.IntVarP(&opts.k, "k", "k", 0, "rank to select or number of values to order")
		_ = cmd.MarkFlagRequired("k")
	}
	return cmd
}

func runSort(cmd *cobra.Command, root *rootOptions, opts *sortOptions, m mode) (err error) {
	log := root.logger(cmd.ErrOrStderr()).With("cmd", m.String(), "type", opts.typ.String())

	in, err := openInput(opts.input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, in.Close()) }()

	tokens, err := readTokens(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.input, err)
	}

	pool := workerpool.New(root.jobs)
	defer pool.Close()

	j := job{mode: m, k: opts.k, pool: pool}
	if opts.desc {
		j.opts = append(j.opts, sort.Descending())
	}
	j.opts = append(j.opts, sort.WithNaN(opts.nan))

	out := bufio.NewWriter(cmd.OutOrStdout())
	start := time.Now()
	if err := runners[opts.typ.String()].run(tokens, j, out); err != nil {
		return err
	}
	log.Debug("done", "count", len(tokens), "k", opts.k, "workers", pool.Workers(), "elapsed", time.Since(start))
	return out.Flush()
}
