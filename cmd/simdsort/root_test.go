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
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Fields(s)
}

func TestSortCommand(t *testing.T) {
	out, err := execute(t, "5 3, 9\n1 7", "sort", "-t", "int32")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "5", "7", "9"}, lines(out))
}

func TestSortCommandDescending(t *testing.T) {
	out, err := execute(t, "2.5 -1 10", "sort", "--desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "2.5", "-1"}, lines(out))
}

func TestSortCommandNaN(t *testing.T) {
	out, err := execute(t, "3 NaN 1 2", "sort", "-t", "float32", "--nan")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "NaN"}, lines(out))
}

func TestSortCommandFloat16(t *testing.T) {
	out, err := execute(t, "0.5 -2 1", "sort", "-t", "float16")
	require.NoError(t, err)
	assert.Equal(t, []string{"-2", "0.5", "1"}, lines(out))
}

func TestSelectCommand(t *testing.T) {
	out, err := execute(t, "9 8 7 6 5 4 3 2 1 0", "select", "-t", "uint8", "-k", "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, lines(out))
}

func TestPartialCommand(t *testing.T) {
	out, err := execute(t, "9 8 7 6 5 4 3 2 1 0", "partial", "-t", "int64", "-k", "4", "--desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"9", "8", "7", "6"}, lines(out))
}

func TestSelectRequiresK(t *testing.T) {
	_, err := execute(t, "1 2", "select")
	require.Error(t, err)
}

func TestSelectOutOfRange(t *testing.T) {
	_, err := execute(t, "1 2", "select", "-k", "2")
	require.Error(t, err)
}

func TestUnknownType(t *testing.T) {
	_, err := execute(t, "1", "sort", "-t", "complex64")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}

func TestParseError(t *testing.T) {
	_, err := execute(t, "1 x 3", "sort", "-t", "int16")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 1")
}

func TestCompressedInput(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("4 2 3 1\n")

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zst := enc.EncodeAll(payload, nil)
	require.NoError(t, enc.Close())

	files := map[string][]byte{
		"plain.txt": payload,
		"data.gz":   gz.Bytes(),
		"data.zst":  zst,
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, content, 0o644))
			out, err := execute(t, "", "sort", "-t", "int8", path)
			require.NoError(t, err)
			assert.Equal(t, []string{"1", "2", "3", "4"}, lines(out))
		})
	}
}

func TestMissingInput(t *testing.T) {
	_, err := execute(t, "", "sort", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestReadTokens(t *testing.T) {
	got, err := readTokens(strings.NewReader(" 1,2 ,3\n\t4,,5 "))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, got)
}

func TestFeaturesCommand(t *testing.T) {
	out, err := execute(t, "", "features")
	require.NoError(t, err)
	assert.Contains(t, out, "target:")
	assert.Contains(t, out, "float64=")

	_, err = execute(t, "", "features", "--check", "no-such-feature")
	require.ErrorIs(t, err, errUnsupported)
}

func TestVerboseLogging(t *testing.T) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs([]string{"sort", "-v"})
	cmd.SetIn(strings.NewReader("2 1"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "count=2")
}

func TestSortCommandParallelParse(t *testing.T) {
	const n = 50000
	var in strings.Builder
	for i := n - 1; i >= 0; i-- {
		in.WriteString(strconv.Itoa(i))
		in.WriteByte('\n')
	}
	out, err := execute(t, in.String(), "sort", "-t", "uint32", "-j", "4")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, n)
	for i, s := range got {
		require.Equal(t, strconv.Itoa(i), s)
	}

	bad := in.String() + "oops\n"
	_, err = execute(t, bad, "sort", "-t", "uint32", "-j", "4")
	require.ErrorContains(t, err, "element 50000")
}

func TestNaNFlagHelp(t *testing.T) {
	cmd := newRootCmd()
	sortCmd, _, err := cmd.Find([]string{"sort"})
	require.NoError(t, err)
	assert.Contains(t, sortCmd.Flags().Lookup("nan").Usage, "first with --desc")

	out, err := execute(t, "1 NaN 3", "sort", "--nan", "--desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"NaN", "3", "1"}, lines(out))
}

func TestOpenInputCloseReportsSourceError(t *testing.T) {
	dir := t.TempDir()

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write([]byte("1 2"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	files := map[string][]byte{
		"plain.txt": []byte("1 2"),
		"data.gz":   gz.Bytes(),
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, content, 0o644))
			in, err := openInput(path, nil)
			require.NoError(t, err)
			require.NoError(t, in.Close())
			// The file is already closed, so its error must come through.
			require.ErrorIs(t, in.Close(), os.ErrClosed)
		})
	}
}
