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

// Package workerpool runs chunked loops on a fixed set of goroutines that
// live as long as the Pool.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	err := pool.Run(len(tokens), 4096, func(start, end int) error {
//	    return parse(tokens[start:end], out[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
)

// Pool is a persistent set of workers. A Pool may serve many Run calls,
// including concurrent ones, and Close may race with them.
type Pool struct {
	workers int
	tasks   chan task

	// mu is held shared while a Run enqueues and exclusively by Close, so
	// tasks is never sent on after it is closed.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts a pool of n workers, or GOMAXPROCS workers when n <= 0.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: n,
		tasks:   make(chan task, n*2),
	}
	for range n {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	for t := range p.tasks {
		t.fn()
		t.done.Done()
	}
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers once queued chunks finish. It is idempotent; Run
// on a closed pool executes on the calling goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
}

// Run splits [0, n) into contiguous chunks of at least minChunk indices and
// calls fn on each, blocking until all return. The error of the lowest
// failing chunk is returned.
func (p *Pool) Run(n, minChunk int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}
	minChunk = max(minChunk, 1)
	chunks := min(p.workers, (n+minChunk-1)/minChunk)
	if chunks <= 1 {
		return fn(0, n)
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return fn(0, n)
	}

	size := (n + chunks - 1) / chunks
	errs := make([]error, chunks)
	var wg sync.WaitGroup
	for c := range chunks {
		start := c * size
		if start >= n {
			break
		}
		end := min(start+size, n)
		wg.Add(1)
		p.tasks <- task{
			fn:   func() { errs[c] = fn(start, end) },
			done: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
