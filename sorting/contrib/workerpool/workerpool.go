// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool used to run
// independent verification cases side by side.
//
// The sorting algorithms themselves never run in parallel; the pool only
// spreads whole cases (generate input, sort, compare with the reference)
// across goroutines.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForAtomic(len(cases), func(i int) {
//	    results[i] = cases[i].Run()
//	})
package workerpool

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	taskC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one unit of work handed to a worker.
type task struct {
	fn    func()
	batch *batch
}

// batch tracks one ParallelFor* call: its completion and the first panic
// raised by any of its tasks.
type batch struct {
	wg       sync.WaitGroup
	panicked atomic.Pointer[PanicError]
}

// PanicError wraps a value recovered from a panicking task. It is re-panicked
// on the goroutine that called ParallelFor or ParallelForAtomic.
type PanicError struct {
	Value any
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("workerpool: task panicked: %v", p.Value)
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		taskC:      make(chan task, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for t := range p.taskC {
		t.run()
	}
}

func (t task) run() {
	defer t.batch.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			t.batch.panicked.CompareAndSwap(nil, &PanicError{Value: r})
		}
	}()
	t.fn()
}

// wait blocks until every task of b finished and re-raises the first panic.
func (b *batch) wait() {
	b.wg.Wait()
	if pe := b.panicked.Load(); pe != nil {
		panic(pe)
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.taskC)
	})
}

// ParallelFor calls fn over contiguous chunks covering [0, n), one chunk per
// worker, and blocks until all of them return.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	b := &batch{}
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		b.wg.Add(1)
		p.taskC <- task{fn: func() { fn(start, end) }, batch: b}
	}

	b.wait()
}

// ParallelForAtomic calls fn once for every index in [0, n). Workers claim
// indices one at a time, which balances load when items take uneven time.
// Blocks until all work completes.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	b := &batch{}
	b.wg.Add(workers)
	for range workers {
		p.taskC <- task{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			batch: b,
		}
	}

	b.wait()
}
