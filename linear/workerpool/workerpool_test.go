// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
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

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// n == 1 should degrade to a sequential call
	var calls atomic.Int32
	pool.ParallelFor(1, func(start, end int) {
		calls.Add(1)
		if start != 0 || end != 1 {
			t.Errorf("range = [%d, %d), want [0, 1)", start, end)
		}
	})
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestParallelForZero(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) { called = true })
	if called {
		t.Errorf("ParallelFor(0) invoked fn")
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()

	// Must not hang or panic: sequential fallback
	n := 50
	results := make([]int, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i)
		}
	}
}

func TestCloseIdempotent(t *testing.T) {
	pool := New(2)
	pool.Close()
	pool.Close() // must not panic
}

func TestStats(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	pool.ParallelFor(1000, func(start, end int) {})

	stats := pool.Stats()
	if stats.Workers != 4 {
		t.Errorf("Stats().Workers = %d, want 4", stats.Workers)
	}
	if stats.Submitted == 0 {
		t.Errorf("Stats().Submitted = 0, want > 0")
	}
	if stats.Completed != stats.Submitted {
		t.Errorf("Stats().Completed = %d, want %d", stats.Completed, stats.Submitted)
	}
}

func TestParallelForConcurrentReuse(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var total atomic.Int64
	for iter := 0; iter < 10; iter++ {
		pool.ParallelFor(100, func(start, end int) {
			total.Add(int64(end - start))
		})
	}

	if total.Load() != 1000 {
		t.Errorf("total = %d, want 1000", total.Load())
	}
}
