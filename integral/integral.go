package integral

import (
	"errors"

	"github.com/katalvlaran/pixkit/raster"
)

// ErrBadRegion indicates an AreaSum rectangle outside [0,W]×[0,H] or with
// inverted corners.
var ErrBadRegion = errors.New("integral: region corners must satisfy 0 ≤ x0 ≤ x1 ≤ W, 0 ≤ y0 ≤ y1 ≤ H")

// Table is a summed-area table over a W×H source buffer. Sum is
// (W+1)×(H+1) row-major; Sum[(y)*(W+1)+x] holds the total of all source
// pixels in [0,x)×[0,y), so the first row and column are zero.
type Table struct {
	Width, Height int // source dimensions
	Sum           []float64
}

// Build constructs the summed-area table for img in two passes: row-wise
// prefix sums, then column-wise prefix sums over the row result.
// Returns raster.ErrEmptyBuffer for a degenerate image.
// Complexity: O(W·H) time and memory.
func Build[T raster.Channel](img *raster.Image[T]) (*Table, error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, raster.ErrEmptyBuffer
	}
	w, h := img.Width, img.Height
	stride := w + 1
	sum := make([]float64, stride*(h+1))

	// Row pass: each table row is the prefix sum of the source row above-left.
	for y := 1; y <= h; y++ {
		var acc float64
		src := img.Pix[(y-1)*w:]
		dst := sum[y*stride:]
		for x := 1; x <= w; x++ {
			acc += float64(src[x-1])
			dst[x] = acc
		}
	}
	// Column pass: accumulate each row onto the one above.
	for y := 2; y <= h; y++ {
		prev := sum[(y-1)*stride:]
		cur := sum[y*stride:]
		for x := 1; x <= w; x++ {
			cur[x] += prev[x]
		}
	}

	return &Table{Width: w, Height: h, Sum: sum}, nil
}

// At returns the cumulative sum over [0,x)×[0,y). Valid for
// 0 ≤ x ≤ W, 0 ≤ y ≤ H; At(0,·) and At(·,0) are zero.
// Complexity: O(1).
func (t *Table) At(x, y int) float64 {
	return t.Sum[y*(t.Width+1)+x]
}

// AreaSum returns the sum of source pixels in the half-open rectangle
// [x0,x1)×[y0,y1) via inclusion–exclusion:
//
//	I(x1,y1) − I(x0,y1) − I(x1,y0) + I(x0,y0)
//
// Returns ErrBadRegion on inverted or out-of-range corners.
// Complexity: O(1).
func (t *Table) AreaSum(x0, y0, x1, y1 int) (float64, error) {
	if x0 < 0 || y0 < 0 || x1 < x0 || y1 < y0 || x1 > t.Width || y1 > t.Height {
		return 0, ErrBadRegion
	}

	return t.At(x1, y1) - t.At(x0, y1) - t.At(x1, y0) + t.At(x0, y0), nil
}

// Total returns the sum of every source pixel: AreaSum over the full
// extent, which by construction is the bottom-right table cell.
func (t *Table) Total() float64 {
	return t.At(t.Width, t.Height)
}

// BoxMean mean-filters img with a (2r+1)×(2r+1) window using the
// summed-area table, so the cost per pixel is constant in r. Windows are
// clipped at the borders and normalized by the clipped area (shrinking
// window), matching edge-replication behavior on locally constant images.
// Returns raster.ErrEmptyBuffer for a degenerate image; r < 0 is treated
// as 0 (identity).
// Complexity: O(W·H) regardless of r.
func BoxMean[T raster.Channel](img *raster.Image[T], r int) (*raster.Image[T], error) {
	t, err := Build(img)
	if err != nil {
		return nil, err
	}
	if r < 0 {
		r = 0
	}
	w, h := img.Width, img.Height
	out := &raster.Image[T]{Width: w, Height: h, Pix: make([]T, w*h)}
	for y := 0; y < h; y++ {
		y0, y1 := maxInt(y-r, 0), minInt(y+r+1, h)
		for x := 0; x < w; x++ {
			x0, x1 := maxInt(x-r, 0), minInt(x+r+1, w)
			s := t.At(x1, y1) - t.At(x0, y1) - t.At(x1, y0) + t.At(x0, y0)
			area := float64((x1 - x0) * (y1 - y0))
			out.Pix[y*w+x] = raster.Quantize[T](s / area)
		}
	}

	return out, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
