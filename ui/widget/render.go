package widget

import (
	"runtime"
	"sync"
)

// parallelMap computes fn(0..n-1) across a bounded set of goroutines and
// returns the results indexed by input position, independent of which
// goroutine finishes first.
func parallelMap(n int, fn func(i int) string) []string {
	out := make([]string, n)
	workers := min(runtime.GOMAXPROCS(0), n)
	if workers <= 1 {
		for i := 0; i < n; i++ {
			out[i] = fn(i)
		}
		return out
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		start := start
		end := min(start+chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = fn(i)
			}
		}()
	}
	wg.Wait()
	return out
}
