// Package pixkit is a toolbox of raster image-processing primitives
// (pixel-buffer filtering, geometric warping, and region/edge analysis)
// meant as building blocks for higher-level vision applications.
//
// 🚀 What does pixkit give you?
//
//	A small, composable set of pure transformation functions:
//		• Generic pixel buffers: one Image[T] type over uint8…float64 channels
//		• Convolution: full 2D and separable kernels, three border policies
//		• Integral images: constant-time rectangular area sums
//		• Geometric warps: affine & projective, nearest/bilinear resampling
//		• Edge detection: Canny-style gradient → NMS → hysteresis pipeline
//		• Connected components: two-pass union-find labeling, Conn4/Conn8
//
// ✨ Why choose pixkit?
//
//   - Pure functions – no operation mutates its inputs, no hidden state
//   - Deterministic – identical inputs always yield identical outputs
//   - Parallel where it pays – row-parallel filtering and warping via a
//     reusable worker pool, sequential where the data demands it
//   - Explicit errors – every precondition violation is a sentinel error,
//     never a mid-computation panic
//
// The library is organized as flat subpackages, leaves first:
//
//	raster/   — Image[T] pixel buffers, border policies, connectivity
//	parallel/ — persistent worker pool for row-parallel stages
//	convolve/ — kernels and the convolution engine
//	integral/ — summed-area tables and box filtering
//	warp/     — invertible geometric transforms with interpolation
//	edges/    — Canny-style edge pipeline
//	label/    — connected-component labeling
//	draw/     — overlay drawing: lines, rectangles, text
//	pipeline/ — staged runners with structured per-stage logging
//	display/  — optional interactive window for any buffer
//
// Quick example — count the blobs in a thresholded buffer:
//
//	img, _ := raster.FromRows([][]uint8{
//		{0, 255, 255, 0, 0},
//		{0, 255, 255, 0, 255},
//		{0, 0, 0, 0, 255},
//	})
//	labels, n, _ := label.Label(img, raster.Conn4)
//	fmt.Println(n) // 2
//
// See each subpackage's documentation for contracts, errors, and
// complexity notes.
package pixkit
