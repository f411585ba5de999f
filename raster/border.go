package raster

// BorderMode selects how out-of-range coordinate access is resolved.
type BorderMode int

const (
	// BorderExtend replicates the nearest edge pixel.
	BorderExtend BorderMode = iota
	// BorderConstant substitutes a fixed fill value.
	BorderConstant
	// BorderWrap tiles the image toroidally.
	BorderWrap
)

// Border is the out-of-range access policy applied by every
// neighborhood-based operation. Value is only consulted under
// BorderConstant.
type Border struct {
	Mode  BorderMode
	Value float64
}

// Extend returns the edge-replication policy.
func Extend() Border { return Border{Mode: BorderExtend} }

// Constant returns the constant-fill policy with the given value.
func Constant(v float64) Border { return Border{Mode: BorderConstant, Value: v} }

// Wrap returns the toroidal wrap-around policy.
func Wrap() Border { return Border{Mode: BorderWrap} }

// Sample reads the pixel at (x, y), resolving out-of-range coordinates via
// the policy b. It never indexes outside the backing buffer. The value is
// widened to float64, matching the accumulator type used by the filtering
// engines.
// Complexity: O(1).
func Sample[T Channel](img *Image[T], x, y int, b Border) float64 {
	if img.InBounds(x, y) {
		return float64(img.Pix[y*img.Width+x])
	}
	switch b.Mode {
	case BorderConstant:
		return b.Value
	case BorderWrap:
		x = ((x % img.Width) + img.Width) % img.Width
		y = ((y % img.Height) + img.Height) % img.Height
	default: // BorderExtend
		x = clampInt(x, 0, img.Width-1)
		y = clampInt(y, 0, img.Height-1)
	}

	return float64(img.Pix[y*img.Width+x])
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
