// Package parallel provides a persistent, reusable worker pool for the
// pixel-parallel stages of pixkit (convolution, warping). A Pool is
// created once and reused across many operations, so per-call goroutine
// spawning never dominates the per-row arithmetic it fans out.
//
// Usage:
//
//	pool := parallel.NewPool(0) // 0 → GOMAXPROCS workers
//	defer pool.Close()
//
//	pool.ParallelFor(height, func(start, end int) {
//		for y := start; y < end; y++ {
//			processRow(y)
//		}
//	})
//
// Every engine accepting a *Pool also accepts nil, which runs the body
// sequentially — correct, just not parallel. Workers never share mutable
// state: ParallelFor hands each worker a disjoint contiguous index range.
package parallel
