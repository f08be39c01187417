package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight CPU timing for world generation and meshing passes.

type entry struct {
	total time.Duration
	calls int
}

var (
	mu     sync.Mutex
	totals = make(map[string]entry)
)

// Track returns a stop function that records the elapsed time under name.
// Usage: defer profiling.Track("meshing.BuildChunkMesh")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		e := totals[name]
		e.total += d
		e.calls++
		totals[name] = e
		mu.Unlock()
	}
}

// Reset clears all recorded totals.
func Reset() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// Snapshot returns a copy of the accumulated durations.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, e := range totals {
		out[k] = e.total
	}
	return out
}

// Calls returns how many times name was tracked.
func Calls(name string) int {
	mu.Lock()
	defer mu.Unlock()
	return totals[name].calls
}

// TopN formats the n most expensive entries, e.g.
// "world.Generate:12.4ms(1), meshing.BuildChunkMesh:8.1ms(2048)"
func TopN(n int) string {
	mu.Lock()
	type pair struct {
		name string
		e    entry
	}
	list := make([]pair, 0, len(totals))
	for k, e := range totals {
		list = append(list, pair{name: k, e: e})
	}
	mu.Unlock()

	sort.Slice(list, func(i, j int) bool { return list[i].e.total > list[j].e.total })
	n = min(n, len(list))
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		ms := float64(p.e.total.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms(%d)", p.name, ms, p.e.calls))
	}
	return strings.Join(parts, ", ")
}
