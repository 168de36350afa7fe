//go:build test

package suggest_test

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bastiangx/prosecomplete/pkg/dictionary"
	"github.com/bastiangx/prosecomplete/pkg/suggest"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var longPatterns = [][]string{
	{"a", "ab", "abo", "abou", "about"},
	{"h", "he", "hel", "hell", "hello"},
	{"w", "wo", "wor", "worl", "world"},
	{"p", "pr", "pro", "prog", "progr", "progra", "program"},
	{"t", "th", "the", "ther", "there"},
	{"c", "co", "com", "comp", "compu", "comput", "computer"},
	{"i", "in", "int", "inte", "inter", "intern", "interna", "internat", "internati", "internatio", "internation", "internationa", "international"},
}

func heapAlloc() int64 {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	return int64(m.Alloc)
}

func buildEmbedded(t *testing.T, backend suggest.Backend) *suggest.Index {
	t.Helper()
	idx, err := suggest.Build(dictionary.Embedded(), suggest.WithBackend(backend))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return idx
}

func TestMemoryLeakBasic(t *testing.T) {
	for _, backend := range []suggest.Backend{suggest.BackendPatricia, suggest.BackendRadix} {
		for _, iterations := range []int{100, 1000} {
			t.Run(fmt.Sprintf("%s_iterations_%d", backend, iterations), func(t *testing.T) {
				idx := buildEmbedded(t, backend)

				baseline := heapAlloc()
				baselineGoroutines := runtime.NumGoroutine()

				ops := 0
				for i := 0; i < iterations; i++ {
					for _, pattern := range longPatterns {
						for _, query := range pattern {
							if _, err := idx.Lookup(query); err != nil {
								t.Fatalf("lookup %q: %v", query, err)
							}
							ops++
						}
					}
				}

				memDelta := heapAlloc() - baseline
				goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
				memPerOp := float64(memDelta) / float64(ops)
				t.Logf("ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d", ops, memDelta, memPerOp, goroutineDelta)

				if memPerOp > 100 {
					t.Errorf("retained memory per lookup: %.2f bytes", memPerOp)
				}
				if goroutineDelta > 2 {
					t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
				}
				runtime.KeepAlive(idx)
			})
		}
	}
}

func TestMemoryLeakConcurrent(t *testing.T) {
	configs := []struct {
		workers             int
		iterationsPerWorker int
	}{
		{workers: 2, iterationsPerWorker: 250},
		{workers: 8, iterationsPerWorker: 60},
	}

	for _, config := range configs {
		t.Run(fmt.Sprintf("workers_%d_iter_%d", config.workers, config.iterationsPerWorker), func(t *testing.T) {
			idx := buildEmbedded(t, suggest.BackendPatricia)

			baseline := heapAlloc()
			baselineGoroutines := runtime.NumGoroutine()

			var (
				wg  sync.WaitGroup
				ops atomic.Int64
			)
			for w := 0; w < config.workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for iter := 0; iter < config.iterationsPerWorker; iter++ {
						for _, pattern := range longPatterns {
							for _, query := range pattern {
								if _, err := idx.Lookup(query); err != nil {
									t.Errorf("lookup %q: %v", query, err)
									return
								}
								ops.Add(1)
							}
						}
					}
				}()
			}
			wg.Wait()

			memDelta := heapAlloc() - baseline
			goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
			memPerOp := float64(memDelta) / float64(ops.Load())
			t.Logf("workers=%d total_ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
				config.workers, ops.Load(), memDelta, memPerOp, goroutineDelta)

			if memPerOp > 100 {
				t.Errorf("retained memory per lookup: %.2f bytes", memPerOp)
			}
			if goroutineDelta > 3 {
				t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
			}
			runtime.KeepAlive(idx)
		})
	}
}
