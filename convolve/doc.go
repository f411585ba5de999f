// Package convolve implements the pixkit convolution engine: sliding-window
// weighted sums of a pixel neighborhood under a configurable border policy.
//
// A Kernel is a rectangular grid of float64 weights with an anchor offset.
// Kernels built with NewSeparable carry their 1D factors, and Convolve then
// runs the cheaper row-pass/column-pass scheme, which matches full 2D
// convolution up to rounding while reducing the per-pixel cost from
// O(w·h) to O(w+h).
//
//	k, _ := convolve.Gaussian(5, 1.4)
//	out, err := convolve.Convolve(img, k, raster.Extend(), pool)
//
// Accumulation is always float64, wide enough that no supported channel
// type can overflow mid-sum; outputs are rounded and clamped back to the
// channel type in one place (raster.Quantize). Out-of-range neighborhood
// samples go through the border policy and never touch memory outside the
// buffer.
//
// Stock kernels: Identity, Box, Gaussian, SobelX, SobelY.
package convolve
