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
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/samber/lo"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error { return r.close() }

// openInput opens name, or stdin for "-", and unwraps gzip or zstd framing
// recognized by its magic bytes.
func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	var src io.Reader = stdin
	closeSrc := func() error { return nil }
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		src, closeSrc = f, f.Close
	}

	br := bufio.NewReader(src)
	// A short input peeks fewer bytes and simply matches no magic.
	head, _ := br.Peek(len(zstdMagic))
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, errors.Join(err, closeSrc())
		}
		rc := dec.IOReadCloser()
		return readCloser{rc, func() error {
			return errors.Join(rc.Close(), closeSrc())
		}}, nil
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Join(err, closeSrc())
		}
		return readCloser{zr, func() error {
			return errors.Join(zr.Close(), closeSrc())
		}}, nil
	default:
		return readCloser{br, closeSrc}, nil
	}
}

// readTokens splits r on whitespace and commas.
func readTokens(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)
	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lo.FlatMap(words, func(w string, _ int) []string {
		return lo.Compact(strings.Split(w, ","))
	}), nil
}
