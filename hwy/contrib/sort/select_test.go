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
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectScenario(t *testing.T) {
	data := []int32{5, 3, 1, 4, 2}
	require.NoError(t, Select(data, 2))
	assert.Equal(t, int32(3), data[2])
}

func TestSelect(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	for _, tag := range testTags {
		for _, desc := range []bool{false, true} {
			for _, n := range []int{1, 2, 10, 300, 5000} {
				for _, distinct := range []int{4, 100000} {
					data := randomData[int64](rng, n, distinct)
					want := sortedCopy(data, desc)
					o := order[int64]{descending: desc}
					for _, k := range []int{0, n / 3, n / 2, n - 1} {
						name := fmt.Sprintf("%s/desc=%v/n=%d/k=%d", tag.Name(), desc, n, k)
						got := slices.Clone(data)
						require.NoError(t, Select(got, k, WithTag(tag), descIf(desc)), name)
						require.Equal(t, want[k], got[k], name)
						for _, x := range got[:k] {
							require.False(t, o.less(got[k], x), name)
						}
						for _, x := range got[k+1:] {
							require.False(t, o.less(x, got[k]), name)
						}
						require.Equal(t, want, sortedCopy(got, desc), name)
					}
				}
			}
		}
	}
}

// TestNthElement tests selection on a shuffled permutation
func TestNthElement(t *testing.T) {
	ref := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	for k := range ref {
		data := make([]float32, len(ref))
		copy(data, ref)
		rand.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })

		require.NoError(t, Select(data, k))

		if data[k] != ref[k] {
			t.Errorf("Select(k=%d): got %v, want %v", k, data[k], ref[k])
		}
	}
}

func TestSelectNaN(t *testing.T) {
	nan := math.NaN()
	data := []float64{nan, 3, nan, 1, 2}
	require.NoError(t, Select(slices.Clone(data), 4, HasNaN()))

	got := slices.Clone(data)
	require.NoError(t, Select(got, 1, HasNaN()))
	assert.Equal(t, 2.0, got[1])
	assert.True(t, math.IsNaN(got[3]))
	assert.True(t, math.IsNaN(got[4]))

	got = slices.Clone(data)
	require.NoError(t, Select(got, 0, HasNaN(), Descending()))
	assert.True(t, math.IsNaN(got[0]))
	require.NoError(t, Select(got, 2, HasNaN(), Descending()))
	assert.Equal(t, 3.0, got[2])
}

func TestPartialSortScenario(t *testing.T) {
	data := []int32{5, 3, 1, 4, 2}
	require.NoError(t, PartialSort(data, 3))
	assert.Equal(t, []int32{1, 2, 3}, data[:3])
	assert.ElementsMatch(t, []int32{4, 5}, data[3:])
}

func TestPartialSort(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for _, tag := range testTags {
		for _, desc := range []bool{false, true} {
			for _, n := range []int{1, 17, 300, 5000} {
				data := randomData[float32](rng, n, 700)
				want := sortedCopy(data, desc)
				for _, k := range []int{0, 1, n / 4, n / 2, n - 1, n} {
					name := fmt.Sprintf("%s/desc=%v/n=%d/k=%d", tag.Name(), desc, n, k)
					got := slices.Clone(data)
					require.NoError(t, PartialSort(got, k, WithTag(tag), descIf(desc)), name)
					require.Equal(t, want[:k], got[:k], name)
					require.Equal(t, want[k:], sortedCopy(got[k:], desc), name)
				}
			}
		}
	}
}

func TestPartialSortNaN(t *testing.T) {
	nan := float32(math.NaN())
	data := []float32{nan, 4, 1, nan, 3, 2}

	got := slices.Clone(data)
	require.NoError(t, PartialSort(got, 2, HasNaN()))
	assert.Equal(t, []float32{1, 2}, got[:2])

	got = slices.Clone(data)
	require.NoError(t, PartialSort(got, 5, HasNaN()))
	assert.Equal(t, []float32{1, 2, 3, 4}, got[:4])
	assert.True(t, math.IsNaN(float64(got[4])))

	got = slices.Clone(data)
	require.NoError(t, PartialSort(got, 3, HasNaN(), Descending()))
	assert.True(t, math.IsNaN(float64(got[0])))
	assert.True(t, math.IsNaN(float64(got[1])))
	assert.Equal(t, float32(4), got[2])
}

func TestIndexErrors(t *testing.T) {
	data := []int32{3, 1, 2}

	require.ErrorIs(t, Select(data, -1), ErrIndexOutOfRange)
	require.ErrorIs(t, Select(data, 3), ErrIndexOutOfRange)
	require.ErrorIs(t, Select([]int32{}, 0), ErrIndexOutOfRange)
	require.ErrorIs(t, PartialSort(data, -1), ErrIndexOutOfRange)
	require.ErrorIs(t, PartialSort(data, 4), ErrIndexOutOfRange)
	// Failed calls leave the data alone.
	assert.Equal(t, []int32{3, 1, 2}, data)

	require.NoError(t, PartialSort(data, 0))
	assert.Equal(t, []int32{3, 1, 2}, data)
	require.NoError(t, PartialSort(data, 3))
	assert.Equal(t, []int32{1, 2, 3}, data)
}
