// Package raster defines the pixel-buffer contract shared by every pixkit
// operation: a generic, immutable-by-convention 2D image over a numeric
// channel type, plus the border policies and grid connectivities that
// neighborhood-based algorithms require.
//
// The central type is Image[T], a flat row-major buffer:
//
//	img, err := raster.New[uint8](640, 480)
//	img.Set(10, 20, 255)
//	v := img.At(10, 20)
//
// Supported channel types are uint8, uint16, int32, float32 and float64
// (the Channel constraint). Operations elsewhere in pixkit accumulate in
// float64 and quantize back through Quantize, so integer channels never
// overflow mid-computation.
//
// Border policies resolve out-of-range access for sliding-window
// operations:
//
//   - Extend()      — replicate the nearest edge pixel
//   - Constant(v)   — return a fixed fill value
//   - Wrap()        — tile the image toroidally
//
// Connectivity (Conn4 / Conn8) selects the neighbor set used by
// region-growing algorithms (label, edges hysteresis).
//
// All constructors deep-copy their inputs; functions in this package never
// retain or mutate caller-owned slices.
package raster
