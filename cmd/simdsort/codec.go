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
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/samber/lo"

	"github.com/ajroetker/go-simdsort/hwy"
	"github.com/ajroetker/go-simdsort/hwy/contrib/sort"
	"github.com/ajroetker/go-simdsort/hwy/contrib/workerpool"
)

// runner parses, processes and prints one element type.
type runner interface {
	run(tokens []string, job job, w io.Writer) error
	lanes() int
}

type job struct {
	mode mode
	k    int
	opts []sort.Option
	pool *workerpool.Pool
}

// parseChunk is the fewest tokens one worker parses at a time.
const parseChunk = 1 << 14

type codec[T hwy.Lanes] struct {
	parse  func(string) (T, error)
	format func(T) string
}

func intCodec[T hwy.SignedInts](bits int) codec[T] {
	return codec[T]{
		parse: func(s string) (T, error) {
			v, err := strconv.ParseInt(s, 10, bits)
			return T(v), err
		},
		format: func(v T) string { return strconv.FormatInt(int64(v), 10) },
	}
}

func uintCodec[T hwy.UnsignedInts](bits int) codec[T] {
	return codec[T]{
		parse: func(s string) (T, error) {
			v, err := strconv.ParseUint(s, 10, bits)
			return T(v), err
		},
		format: func(v T) string { return strconv.FormatUint(uint64(v), 10) },
	}
}

func floatCodec[T hwy.Floats](bits int) codec[T] {
	return codec[T]{
		parse: func(s string) (T, error) {
			v, err := strconv.ParseFloat(s, bits)
			return T(v), err
		},
		format: func(v T) string { return strconv.FormatFloat(float64(v), 'g', -1, bits) },
	}
}

func float16Codec() codec[hwy.Float16] {
	return codec[hwy.Float16]{
		parse: func(s string) (hwy.Float16, error) {
			v, err := strconv.ParseFloat(s, 32)
			return hwy.NewFloat16(float32(v)), err
		},
		format: func(v hwy.Float16) string {
			return strconv.FormatFloat(float64(v.Float32()), 'g', -1, 32)
		},
	}
}

func (c codec[T]) lanes() int { return hwy.MaxLanes[T]() }

func (c codec[T]) run(tokens []string, j job, w io.Writer) error {
	data := make([]T, len(tokens))
	err := j.pool.Run(len(tokens), parseChunk, func(start, end int) error {
		for i := start; i < end; i++ {
			v, err := c.parse(tokens[i])
			if err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
			data[i] = v
		}
		return nil
	})
	if err != nil {
		return err
	}

	out, err := process(data, j)
	if err != nil {
		return err
	}
	for _, line := range lo.Map(out, func(v T, _ int) string { return c.format(v) }) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// process runs the job in place and returns the part of data to print.
func process[T hwy.Lanes](data []T, j job) ([]T, error) {
	switch j.mode {
	case modeSelect:
		if err := sort.Select(data, j.k, j.opts...); err != nil {
			return nil, err
		}
		return data[j.k : j.k+1], nil
	case modePartial:
		if err := sort.PartialSort(data, j.k, j.opts...); err != nil {
			return nil, err
		}
		return data[:j.k], nil
	default:
		if err := sort.Sort(data, j.opts...); err != nil {
			return nil, err
		}
		return data, nil
	}
}

var runners = map[string]runner{
	"int8":    intCodec[int8](8),
	"int16":   intCodec[int16](16),
	"int32":   intCodec[int32](32),
	"int64":   intCodec[int64](64),
	"uint8":   uintCodec[uint8](8),
	"uint16":  uintCodec[uint16](16),
	"uint32":  uintCodec[uint32](32),
	"uint64":  uintCodec[uint64](64),
	"float16": float16Codec(),
	"float32": floatCodec[float32](32),
	"float64": floatCodec[float64](64),
}

// typeNames returns the supported element type names in sorted order.
func typeNames() []string {
	names := lo.Keys(runners)
	slices.Sort(names)
	return names
}
