// Package parallel provides the data-parallel loop used by the matrix kernels.
package parallel

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns defaults sized to the physical core count, or the
// logical count when cpuid cannot tell.
func DefaultConfig() Config {
	n := cpuid.CPU.PhysicalCores
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// Sequential returns a config that always runs on the calling goroutine.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
//
// Every index is visited by exactly one goroutine, so callers that write
// disjoint outputs per index observe the same values as a sequential loop.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForWork is For with the chunk threshold expressed in scalar operations
// rather than loop iterations: rows that each cost cost operations are
// only split across goroutines once the total work is worth it.
func ForWork(n, cost int, f func(i int), cfg Config) {
	if cost < 1 {
		cost = 1
	}
	scaled := cfg
	scaled.MinChunkSize = max(1, (cfg.MinChunkSize*cfg.MinChunkSize)/cost)
	if n*cost < cfg.MinChunkSize*cfg.MinChunkSize {
		scaled.Enabled = false
	}
	For(n, f, scaled)
}
