package convolve

import (
	"github.com/katalvlaran/pixkit/parallel"
	"github.com/katalvlaran/pixkit/raster"
)

// Convolve applies kernel k to img under border policy b, returning a new
// buffer of identical dimensions. Accumulation runs in float64 and the
// result is rounded and clamped to T via raster.Quantize. Rows are
// partitioned across pool; a nil pool runs sequentially.
//
// Separable kernels (NewSeparable) are filtered as a row pass followed by
// a column pass, equal to the full 2D result up to rounding.
//
// Returns ErrEmptyKernel for a nil kernel and raster.ErrEmptyBuffer for a
// degenerate image.
// Complexity: O(W·H·(kw+kh)) separable, O(W·H·kw·kh) otherwise.
func Convolve[T raster.Channel](img *raster.Image[T], k *Kernel, b raster.Border, pool *parallel.Pool) (*raster.Image[T], error) {
	acc, err := ConvolveFloat(img, k, b, pool)
	if err != nil {
		return nil, err
	}
	out := &raster.Image[T]{Width: img.Width, Height: img.Height, Pix: make([]T, len(acc.Pix))}
	pool.ParallelFor(img.Height, func(start, end int) {
		for i := start * img.Width; i < end*img.Width; i++ {
			out.Pix[i] = raster.Quantize[T](acc.Pix[i])
		}
	})

	return out, nil
}

// ConvolveFloat is Convolve without the final quantization: the raw
// float64 accumulator buffer is returned. Multi-stage consumers (edge
// gradients) use it to avoid intermediate rounding.
func ConvolveFloat[T raster.Channel](img *raster.Image[T], k *Kernel, b raster.Border, pool *parallel.Pool) (*raster.Image[float64], error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, raster.ErrEmptyBuffer
	}
	if k == nil || k.Width <= 0 || k.Height <= 0 {
		return nil, ErrEmptyKernel
	}

	if row, col, ok := k.Separable(); ok {
		return convolveSeparable(img, k, row, col, b, pool), nil
	}

	return convolveFull(img, k, b, pool), nil
}

// convolveFull walks the complete 2D kernel per output pixel.
func convolveFull[T raster.Channel](img *raster.Image[T], k *Kernel, b raster.Border, pool *parallel.Pool) *raster.Image[float64] {
	w, h := img.Width, img.Height
	out := &raster.Image[float64]{Width: w, Height: h, Pix: make([]float64, w*h)}
	pool.ParallelFor(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				var sum float64
				for ky := 0; ky < k.Height; ky++ {
					sy := y + ky - k.AnchorY
					for kx := 0; kx < k.Width; kx++ {
						sx := x + kx - k.AnchorX
						sum += k.Weights[ky*k.Width+kx] * raster.Sample(img, sx, sy, b)
					}
				}
				out.Pix[y*w+x] = sum
			}
		}
	})

	return out
}

// convolveSeparable runs the horizontal factor, then the vertical factor
// over the intermediate. Under a constant border the second pass must see
// the constant folded through the row pass, i.e. scaled by the row weight
// sum; extend and wrap commute with the row pass unchanged.
func convolveSeparable[T raster.Channel](img *raster.Image[T], k *Kernel, row, col []float64, b raster.Border, pool *parallel.Pool) *raster.Image[float64] {
	w, h := img.Width, img.Height

	mid := &raster.Image[float64]{Width: w, Height: h, Pix: make([]float64, w*h)}
	pool.ParallelFor(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				var sum float64
				for kx := 0; kx < len(row); kx++ {
					sum += row[kx] * raster.Sample(img, x+kx-k.AnchorX, y, b)
				}
				mid.Pix[y*w+x] = sum
			}
		}
	})

	vb := b
	if b.Mode == raster.BorderConstant {
		var rowSum float64
		for _, f := range row {
			rowSum += f
		}
		vb.Value = b.Value * rowSum
	}

	out := &raster.Image[float64]{Width: w, Height: h, Pix: make([]float64, w*h)}
	pool.ParallelFor(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				var sum float64
				for ky := 0; ky < len(col); ky++ {
					sum += col[ky] * raster.Sample(mid, x, y+ky-k.AnchorY, vb)
				}
				out.Pix[y*w+x] = sum
			}
		}
	})

	return out
}

// AddWeighted returns wa·a + wb·b per pixel, quantized to T.
// Returns raster.ErrDimensionMismatch when a and b differ in size.
// Complexity: O(W·H).
func AddWeighted[T raster.Channel](a, b *raster.Image[T], wa, wb float64) (*raster.Image[T], error) {
	if a == nil || b == nil || a.Width <= 0 || a.Height <= 0 {
		return nil, raster.ErrEmptyBuffer
	}
	if err := raster.SameSize(a, b); err != nil {
		return nil, err
	}
	out := &raster.Image[T]{Width: a.Width, Height: a.Height, Pix: make([]T, len(a.Pix))}
	for i := range a.Pix {
		out.Pix[i] = raster.Quantize[T](wa*float64(a.Pix[i]) + wb*float64(b.Pix[i]))
	}

	return out, nil
}
