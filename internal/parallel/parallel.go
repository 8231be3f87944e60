// Package parallel fans independent work out across goroutines.
//
// Callers must only hand out work that touches disjoint data; nothing here
// synchronizes access to shared tensors.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// WithWorkers returns a copy of cfg using n workers. n <= 0 keeps the
// current count; a single worker disables parallelism.
func (cfg Config) WithWorkers(n int) Config {
	if n > 0 {
		cfg.NumWorkers = n
	}
	cfg.Enabled = cfg.NumWorkers > 1
	return cfg
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForChunks(n, cfg, func(_, start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	})
}

// ForChunks splits [0, n) into contiguous ranges and calls f(worker, start, end)
// once per range, each on its own goroutine. worker numbers the ranges from 0
// and is smaller than cfg.NumWorkers. ForChunks returns when every call has.
func ForChunks(n int, cfg Config, f func(worker, start, end int)) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		// Sequential fallback.
		f(0, 0, n)
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	worker := 0
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(w, s, e int) {
			defer wg.Done()
			f(w, s, e)
		}(worker, start, end)
		worker++
	}
	wg.Wait()
}
