// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting large
// slice operations across goroutines. A Pool is created once and reused, so
// repeated calls do not pay for spawning goroutines.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(src), func(start, end int) {
//	    d.DivideSlice(dst[start:end], src[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once by New and
// live until Close.
type Pool struct {
	numWorkers int
	workC      chan task

	// mu guards closed and the sends on workC: submitters hold it for
	// reading, Close for writing.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with numWorkers workers.
// If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after pending work completes. It is safe to call
// more than once and concurrently with ParallelFor; a closed pool runs work
// on the calling goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
}

// submit queues runs on the workers and adds them to wg. It queues nothing
// and returns false if the pool is closed.
func (p *Pool) submit(wg *sync.WaitGroup, runs []func()) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	wg.Add(len(runs))
	for _, run := range runs {
		p.workC <- task{run: run, done: wg}
	}
	return true
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. It blocks until all ranges are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	runs := make([]func(), 0, workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		runs = append(runs, func() { fn(start, end) })
	}
	var wg sync.WaitGroup
	if !p.submit(&wg, runs) {
		fn(0, n)
		return
	}
	wg.Wait()
}

// ParallelForBatched hands out [0, n) in batches of batchSize. Workers grab
// the next batch with an atomic counter, so uneven batches balance out.
// Every batch except the last starts and ends on a multiple of batchSize.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)
	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 {
		fn(0, n)
		return
	}

	var next atomic.Int64
	grab := func() {
		for {
			start := int(next.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	}
	runs := make([]func(), workers)
	for i := range runs {
		runs[i] = grab
	}
	var wg sync.WaitGroup
	if !p.submit(&wg, runs) {
		fn(0, n)
		return
	}
	wg.Wait()
}
