package label

import (
	"errors"

	"github.com/katalvlaran/pixkit/raster"
)

// ErrBadLabelMap indicates a label map holding negative ids or ids above
// the declared component count.
var ErrBadLabelMap = errors.New("label: label map values must lie in [0, n]")

// Stats summarizes one labeled component: its id, pixel count, and
// tight bounding box (inclusive corners).
type Stats struct {
	Label                  int32
	Area                   int
	MinX, MinY, MaxX, MaxY int
}

// Regions computes per-component statistics for a label map produced by
// Label with component count n. The result is indexed by label-1 and
// ordered by label id, i.e. by first raster appearance.
// Returns ErrBadLabelMap when the map contradicts n.
// Complexity: O(W·H).
func Regions(labels *raster.Image[int32], n int) ([]Stats, error) {
	if labels == nil || labels.Width <= 0 || labels.Height <= 0 {
		return nil, raster.ErrEmptyBuffer
	}
	stats := make([]Stats, n)
	for i := range stats {
		stats[i] = Stats{
			Label: int32(i + 1),
			MinX:  labels.Width,
			MinY:  labels.Height,
			MaxX:  -1,
			MaxY:  -1,
		}
	}
	w := labels.Width
	for i, l := range labels.Pix {
		if l == 0 {
			continue
		}
		if l < 0 || int(l) > n {
			return nil, ErrBadLabelMap
		}
		s := &stats[l-1]
		x, y := i%w, i/w
		s.Area++
		if x < s.MinX {
			s.MinX = x
		}
		if x > s.MaxX {
			s.MaxX = x
		}
		if y < s.MinY {
			s.MinY = y
		}
		if y > s.MaxY {
			s.MaxY = y
		}
	}

	return stats, nil
}
