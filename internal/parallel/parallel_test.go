package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = 4
	cfg.MinChunkSize = 10

	var counter int64
	seen := make([]int32, 1000)
	For(len(seen), cfg, func(i int) {
		atomic.AddInt64(&counter, 1)
		atomic.AddInt32(&seen[i], 1)
	})

	if counter != int64(len(seen)) {
		t.Errorf("Expected %d, got %d", len(seen), counter)
	}
	for i, v := range seen {
		if v != 1 {
			t.Fatalf("index %d visited %d times", i, v)
		}
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	For(100, cfg, func(i int) {
		order = append(order, i)
	})

	if len(order) != 100 {
		t.Fatalf("Expected 100, got %d", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("sequential For visited %d at position %d", v, i)
		}
	}
}

func TestChunks(t *testing.T) {
	tests := []struct {
		name string
		n    int
		cfg  Config
		want int
	}{
		{"empty", 0, Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}, 0},
		{"disabled", 100, Config{Enabled: false, NumWorkers: 4, MinChunkSize: 1}, 1},
		{"below min chunk", 9, Config{Enabled: true, NumWorkers: 4, MinChunkSize: 10}, 1},
		{"one worker", 100, Config{Enabled: true, NumWorkers: 1, MinChunkSize: 1}, 1},
		{"even split", 100, Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}, 4},
		{"min chunk limits workers", 100, Config{Enabled: true, NumWorkers: 8, MinChunkSize: 40}, 3},
		{"zero min chunk", 10, Config{Enabled: true, NumWorkers: 3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Chunks(tt.n, tt.cfg)
			if len(chunks) != tt.want {
				t.Fatalf("Chunks(%d) returned %d ranges, want %d", tt.n, len(chunks), tt.want)
			}

			// Ranges must tile [0, n) in order.
			next := 0
			for _, r := range chunks {
				if r.Start != next || r.Len() <= 0 {
					t.Fatalf("bad range %+v after %d", r, next)
				}
				next = r.End
			}
			if tt.n > 0 && next != tt.n {
				t.Errorf("ranges end at %d, want %d", next, tt.n)
			}
		})
	}
}

func TestForChunks_PerChunkState(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 5}
	n := 103

	sums := make([]int, len(Chunks(n, cfg)))
	ForChunks(n, cfg, func(chunk int, r Range) {
		for i := r.Start; i < r.End; i++ {
			sums[chunk] += i
		}
	})

	total := 0
	for _, s := range sums {
		total += s
	}
	if want := n * (n - 1) / 2; total != want {
		t.Errorf("Expected %d, got %d", want, total)
	}
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, cfg, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			})
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, cfgSeq, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			})
		}
	})
}
