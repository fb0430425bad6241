package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_Create(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("pool should be running after creation")
	}
}

func TestPool_DefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewPool(n)
		if pool.Workers() != runtime.GOMAXPROCS(0) {
			t.Errorf("NewPool(%d).Workers() = %d, want GOMAXPROCS", n, pool.Workers())
		}
		pool.Close()
	}
}

func TestPool_Run(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	const n = 100
	var counter atomic.Int64
	seen := make([]bool, n)
	pool.Run(n, func(i int) {
		seen[i] = true
		counter.Add(1)
	})

	if counter.Load() != n {
		t.Errorf("ran %d jobs, want %d", counter.Load(), n)
	}
	for i, ok := range seen {
		if !ok {
			t.Errorf("job %d did not run", i)
		}
	}
}

func TestPool_RunUnbalanced(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	pool.Run(16, func(i int) {
		if i%4 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		counter.Add(1)
	})
	if counter.Load() != 16 {
		t.Errorf("ran %d jobs, want 16", counter.Load())
	}
}

func TestPool_RunConcurrentCallers(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.Run(10, func(int) { counter.Add(1) })
		}()
	}
	wg.Wait()
	if counter.Load() != 80 {
		t.Errorf("ran %d jobs, want 80", counter.Load())
	}
}

func TestPool_NilAndClosed(t *testing.T) {
	var nilPool *Pool
	count := 0
	nilPool.Run(3, func(int) { count++ })
	if count != 3 {
		t.Errorf("nil pool ran %d jobs, want 3", count)
	}

	pool := NewPool(2)
	pool.Close()
	pool.Close()
	if pool.IsRunning() {
		t.Error("closed pool reports running")
	}
	count = 0
	pool.Run(5, func(int) { count++ })
	if count != 5 {
		t.Errorf("closed pool ran %d jobs, want 5", count)
	}
}

func BenchmarkPool_Run(b *testing.B) {
	pool := NewPool(0)
	defer pool.Close()
	for b.Loop() {
		pool.Run(64, func(int) {})
	}
}
