// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelForCoversRange(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 7, 16, 100, 1001} {
		hits := make([]int32, n)
		pool.ParallelFor(n, 1, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, h)
			}
		}
	}
}

func TestParallelForGrain(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	const n, grain = 103, 8
	var mu sync.Mutex
	var starts []int
	total := 0
	pool.ParallelFor(n, grain, func(start, end int) {
		mu.Lock()
		defer mu.Unlock()
		starts = append(starts, start)
		total += end - start
	})

	if total != n {
		t.Errorf("covered %d elements, want %d", total, n)
	}
	if len(starts) > pool.NumWorkers() {
		t.Errorf("got %d ranges, want at most %d", len(starts), pool.NumWorkers())
	}
	for _, s := range starts {
		if s%grain != 0 {
			t.Errorf("range start %d is not a multiple of %d", s, grain)
		}
	}
}

func TestParallelForEach(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelForEach(n, func(i int) {
		results[i] = i * 2
	})

	for i := range n {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestEmpty(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, 1, func(_, _ int) { called = true })
	pool.ParallelForEach(-1, func(int) { called = true })
	if called {
		t.Error("fn called for an empty range")
	}
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	calls := 0
	pool.ParallelFor(50, 1, func(start, end int) {
		calls++
		if start != 0 || end != 50 {
			t.Errorf("got range [%d, %d), want [0, 50)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("closed pool: got %d calls, want 1", calls)
	}

	sum := 0
	pool.ParallelForEach(10, func(i int) { sum += i })
	if sum != 45 {
		t.Errorf("closed pool ParallelForEach: sum %d, want 45", sum)
	}
}
