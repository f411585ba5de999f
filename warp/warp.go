package warp

import (
	"math"

	"github.com/katalvlaran/pixkit/parallel"
	"github.com/katalvlaran/pixkit/raster"
)

// Interpolation selects the resampling strategy for fractional source
// coordinates.
type Interpolation int

const (
	// Nearest rounds the fractional coordinate to the closest integer
	// sample.
	Nearest Interpolation = iota
	// Bilinear blends the four integer neighbors weighted by the
	// fractional parts, per channel.
	Bilinear
)

// FillMode selects how source coordinates outside the buffer resolve.
type FillMode int

const (
	// FillModeConstant substitutes a fixed value.
	FillModeConstant FillMode = iota
	// FillModeExtend samples the nearest edge pixel.
	FillModeExtend
)

// Fill is the out-of-bounds policy for resampling. Value is only
// consulted under FillModeConstant.
type Fill struct {
	Mode  FillMode
	Value float64
}

// FillConstant returns the constant-value fill policy.
func FillConstant(v float64) Fill { return Fill{Mode: FillModeConstant, Value: v} }

// FillExtend returns the edge-clamped sampling policy.
func FillExtend() Fill { return Fill{Mode: FillModeExtend} }

// Options configures a Warp call.
type Options struct {
	// Interp selects Nearest or Bilinear resampling.
	Interp Interpolation
	// Fill resolves out-of-bounds source coordinates.
	Fill Fill
	// Width and Height fix the output dimensions; non-positive values
	// default to the source dimensions.
	Width, Height int
	// FitBounds sizes the output to the axis-aligned bounding box of the
	// forward-transformed input corners, overriding Width/Height, and
	// shifts the output origin accordingly.
	FitBounds bool
	// Pool partitions output rows; nil runs sequentially.
	Pool *parallel.Pool
}

// DefaultOptions returns Bilinear resampling, constant-zero fill, and
// source-sized output.
func DefaultOptions() Options {
	return Options{Interp: Bilinear, Fill: FillConstant(0)}
}

// Warp maps img through tr, resampling each output pixel from the inverse
// transform's source coordinate. The input is never mutated.
// Returns ErrSingularTransform before any pixel work when tr has no
// inverse, and raster.ErrEmptyBuffer for a degenerate image.
// Complexity: O(outW·outH).
func Warp[T raster.Channel](img *raster.Image[T], tr Transform, opts Options) (*raster.Image[T], error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, raster.ErrEmptyBuffer
	}
	inv, err := tr.Invert()
	if err != nil {
		return nil, err
	}

	outW, outH := opts.Width, opts.Height
	if outW <= 0 {
		outW = img.Width
	}
	if outH <= 0 {
		outH = img.Height
	}
	// Shift applied to output coordinates before inverse mapping, so a
	// FitBounds output starts at the transformed bounding box origin.
	var shiftX, shiftY float64
	if opts.FitBounds {
		// The epsilon keeps float noise in the corner mapping (e.g. a
		// cos(π/2) residue) from inflating the frame by a full pixel.
		const boundsEps = 1e-9
		minX, minY, maxX, maxY := transformedBounds(img.Width, img.Height, tr)
		outW = int(math.Ceil(maxX - minX - boundsEps))
		outH = int(math.Ceil(maxY - minY - boundsEps))
		if outW <= 0 || outH <= 0 {
			return nil, raster.ErrEmptyBuffer
		}
		shiftX, shiftY = minX, minY
	}

	out := &raster.Image[T]{Width: outW, Height: outH, Pix: make([]T, outW*outH)}
	opts.Pool.ParallelFor(outH, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < outW; x++ {
				sx, sy := inv.Apply(float64(x)+shiftX, float64(y)+shiftY)
				var v float64
				if opts.Interp == Nearest {
					v = sampleNearest(img, sx, sy, opts.Fill)
				} else {
					v = sampleBilinear(img, sx, sy, opts.Fill)
				}
				out.Pix[y*outW+x] = raster.Quantize[T](v)
			}
		}
	})

	return out, nil
}

// transformedBounds maps the four source corners forward and returns the
// axis-aligned bounding box.
func transformedBounds(w, h int, tr Transform) (minX, minY, maxX, maxY float64) {
	corners := [4][2]float64{{0, 0}, {float64(w), 0}, {0, float64(h)}, {float64(w), float64(h)}}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		x, y := tr.Apply(c[0], c[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	return minX, minY, maxX, maxY
}

// samplePoint resolves a single integer source coordinate under the fill
// policy, widened to float64.
func samplePoint[T raster.Channel](img *raster.Image[T], x, y int, f Fill) float64 {
	if img.InBounds(x, y) {
		return float64(img.Pix[y*img.Width+x])
	}
	if f.Mode == FillModeExtend {
		return raster.Sample(img, x, y, raster.Extend())
	}

	return f.Value
}

// finiteCoord folds NaN/±Inf source coordinates (projective divide by ~0)
// into finite values far outside any buffer, so the int conversion below
// stays defined and the fill policy takes over.
func finiteCoord(s float64) float64 {
	const far = 1e9
	if math.IsNaN(s) {
		return -far
	}

	return clampF(s, -far, far)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func sampleNearest[T raster.Channel](img *raster.Image[T], sx, sy float64, f Fill) float64 {
	sx, sy = finiteCoord(sx), finiteCoord(sy)

	return samplePoint(img, int(math.Round(sx)), int(math.Round(sy)), f)
}

func sampleBilinear[T raster.Channel](img *raster.Image[T], sx, sy float64, f Fill) float64 {
	sx, sy = finiteCoord(sx), finiteCoord(sy)
	x0, y0 := math.Floor(sx), math.Floor(sy)
	fx, fy := sx-x0, sy-y0
	ix, iy := int(x0), int(y0)

	v00 := samplePoint(img, ix, iy, f)
	v10 := samplePoint(img, ix+1, iy, f)
	v01 := samplePoint(img, ix, iy+1, f)
	v11 := samplePoint(img, ix+1, iy+1, f)

	top := v00*(1-fx) + v10*fx
	bot := v01*(1-fx) + v11*fx

	return top*(1-fy) + bot*fy
}
