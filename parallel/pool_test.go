package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixkit/parallel"
)

// TestParallelFor_CoversAllIndices: every index in [0,n) is visited
// exactly once across the disjoint chunks.
func TestParallelFor_CoversAllIndices(t *testing.T) {
	pool := parallel.NewPool(4)
	defer pool.Close()

	const n = 1000
	marks := make([]int32, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&marks[i], 1)
		}
	})
	for i, m := range marks {
		require.Equal(t, int32(1), m, "index %d visited %d times", i, m)
	}
}

// TestParallelFor_NilPool: a nil pool runs the whole range sequentially.
func TestParallelFor_NilPool(t *testing.T) {
	var pool *parallel.Pool
	var total int
	pool.ParallelFor(10, func(start, end int) {
		require.Equal(t, 0, start)
		require.Equal(t, 10, end)
		total = end - start
	})
	require.Equal(t, 10, total)
	require.Equal(t, 0, pool.Workers())
}

// TestParallelFor_ZeroWork: n <= 0 never invokes the body.
func TestParallelFor_ZeroWork(t *testing.T) {
	pool := parallel.NewPool(2)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(int, int) { called = true })
	require.False(t, called)
}

// TestClose_Idempotent: Close twice is safe, and a closed pool degrades
// to sequential execution instead of deadlocking.
func TestClose_Idempotent(t *testing.T) {
	pool := parallel.NewPool(2)
	pool.Close()
	pool.Close()

	var total atomic.Int32
	pool.ParallelFor(8, func(start, end int) {
		total.Add(int32(end - start))
	})
	require.Equal(t, int32(8), total.Load())
}

// TestWorkers_Default: n <= 0 falls back to GOMAXPROCS.
func TestWorkers_Default(t *testing.T) {
	pool := parallel.NewPool(0)
	defer pool.Close()
	require.Greater(t, pool.Workers(), 0)
}

// TestReuse: the same pool survives many ParallelFor rounds.
func TestReuse(t *testing.T) {
	pool := parallel.NewPool(3)
	defer pool.Close()

	var total atomic.Int64
	for round := 0; round < 50; round++ {
		pool.ParallelFor(100, func(start, end int) {
			total.Add(int64(end - start))
		})
	}
	require.Equal(t, int64(50*100), total.Load())
}
