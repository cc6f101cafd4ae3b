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

package workerpool

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	assert.Equal(t, 4, pool.Workers())

	def := New(0)
	defer def.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), def.Workers())
}

func TestRunCoversRange(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 7, 100, 1001} {
		for _, minChunk := range []int{0, 1, 16, 5000} {
			hits := make([]int32, n)
			err := pool.Run(n, minChunk, func(start, end int) error {
				for i := start; i < end; i++ {
					atomic.AddInt32(&hits[i], 1)
				}
				return nil
			})
			require.NoError(t, err)
			for i, h := range hits {
				require.EqualValues(t, 1, h, "n=%d minChunk=%d index %d", n, minChunk, i)
			}
		}
	}
}

func TestRunEmpty(t *testing.T) {
	pool := New(2)
	defer pool.Close()
	called := false
	require.NoError(t, pool.Run(0, 1, func(int, int) error {
		called = true
		return nil
	}))
	assert.False(t, called)
}

func TestRunSmallIsSequential(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var calls atomic.Int32
	require.NoError(t, pool.Run(10, 100, func(start, end int) error {
		calls.Add(1)
		assert.Equal(t, 0, start)
		assert.Equal(t, 10, end)
		return nil
	}))
	assert.EqualValues(t, 1, calls.Load())
}

func TestRunFirstError(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	errLow := errors.New("low")
	errHigh := errors.New("high")
	err := pool.Run(400, 1, func(start, end int) error {
		switch {
		case start == 0:
			return errLow
		case end == 400:
			return errHigh
		}
		return nil
	})
	require.ErrorIs(t, err, errLow)
}

func TestRunAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	sum := 0
	require.NoError(t, pool.Run(100, 1, func(start, end int) error {
		for i := start; i < end; i++ {
			sum += i
		}
		return nil
	}))
	assert.Equal(t, 4950, sum)
}

func TestRunConcurrentCallers(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var wg sync.WaitGroup
	results := make([]int64, 8)
	for g := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var sum atomic.Int64
			_ = pool.Run(1000, 10, func(start, end int) error {
				for i := start; i < end; i++ {
					sum.Add(int64(i))
				}
				return nil
			})
			results[g] = sum.Load()
		}()
	}
	wg.Wait()
	for _, r := range results {
		assert.EqualValues(t, 499500, r)
	}
}

func TestCloseDuringRun(t *testing.T) {
	for range 50 {
		pool := New(4)
		var wg sync.WaitGroup
		sums := make([]int64, 16)
		for g := range sums {
			wg.Add(1)
			go func() {
				defer wg.Done()
				var sum atomic.Int64
				err := pool.Run(1000, 1, func(start, end int) error {
					for i := start; i < end; i++ {
						sum.Add(int64(i))
					}
					return nil
				})
				assert.NoError(t, err)
				sums[g] = sum.Load()
			}()
		}
		pool.Close()
		wg.Wait()
		for _, sum := range sums {
			assert.EqualValues(t, 499500, sum)
		}
	}
}

func BenchmarkRun(b *testing.B) {
	pool := New(0)
	defer pool.Close()
	data := make([]float64, 1<<16)
	for b.Loop() {
		_ = pool.Run(len(data), 1024, func(start, end int) error {
			for i := start; i < end; i++ {
				data[i] = float64(i) * 0.5
			}
			return nil
		})
	}
}
