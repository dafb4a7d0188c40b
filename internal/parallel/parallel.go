// Package parallel splits index ranges across goroutines.
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

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 256, // A forward pass is cheap; keep chunks coarse.
	}
}

// Range is a half-open interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns End - Start.
func (r Range) Len() int { return r.End - r.Start }

// Chunks returns the ranges ForChunks hands to its goroutines. A single range
// covering [0, n) is returned when parallelism is off or n is too small.
func Chunks(n int, cfg Config) []Range {
	if n <= 0 {
		return nil
	}
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		return []Range{{0, n}}
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
	chunks := make([]Range, 0, (n+chunkSize-1)/chunkSize)
	for start := 0; start < n; start += chunkSize {
		chunks = append(chunks, Range{start, min(start+chunkSize, n)})
	}
	return chunks
}

// ForChunks calls f once per range returned by Chunks(n, cfg), concurrently
// when there is more than one. chunk is the index of r in that slice, so
// callers can keep per-chunk state without locking.
func ForChunks(n int, cfg Config, f func(chunk int, r Range)) {
	chunks := Chunks(n, cfg)
	if len(chunks) == 1 {
		f(0, chunks[0])
		return
	}

	var wg sync.WaitGroup
	for i, r := range chunks {
		i, r := i, r // per-iteration copies (go directive < 1.22)
		wg.Add(1)
		go func() {
			defer wg.Done()
			f(i, r)
		}()
	}
	wg.Wait()
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, cfg Config, f func(i int)) {
	ForChunks(n, cfg, func(_ int, r Range) {
		for i := r.Start; i < r.End; i++ {
			f(i)
		}
	})
}
