// Package visiogen designs hybridization probes: it tiles target sequences
// into k-mers, scores and filters them, and screens the survivors against
// exact-membership indexes of off-target genomes.
package visiogen

import (
	"runtime"
	"sync"
)

// Pool is the execution context for every parallel step of the pipeline.
// It is built once by the entry point and passed to each component that
// fans work out, so the degree of concurrency is explicit per call rather
// than hidden process-wide state.
type Pool struct {
	workers int
}

// NewPool returns a pool that runs work across the passed number of
// goroutines. 0 or less means one per available CPU.
func NewPool(threads int) *Pool {
	if threads < 1 {
		threads = runtime.NumCPU()
	}
	return &Pool{workers: threads}
}

// Workers returns the pool's concurrency degree.
func (p *Pool) Workers() int {
	return p.workers
}

// Each calls fn for every index in [0, n) across the pool's workers and
// blocks until all calls have returned. fn must be safe to call
// concurrently and must not depend on call order.
func (p *Pool) Each(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := p.workers
	if workers > n {
		workers = n
	}

	jobs := make(chan int, workers*2)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// chunks splits [0, n) into at most p.workers contiguous ranges for steps
// that accumulate into a per-worker structure before a merge.
func (p *Pool) chunks(n int) [][2]int {
	if n <= 0 {
		return nil
	}

	workers := p.workers
	if workers > n {
		workers = n
	}

	size := n / workers
	rem := n % workers

	ranges := make([][2]int, 0, workers)
	start := 0
	for w := 0; w < workers; w++ {
		end := start + size
		if w < rem {
			end++
		}
		ranges = append(ranges, [2]int{start, end})
		start = end
	}
	return ranges
}
