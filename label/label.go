package label

import (
	"github.com/katalvlaran/pixkit/raster"
)

// Label partitions the foreground of img (any nonzero pixel) into
// connected components under conn, returning a label map of identical
// dimensions and the component count. Background pixels map to 0;
// component ids are dense 1..k ordered by first appearance in a raster
// scan, so the assignment is deterministic.
//
// Two-pass union-find: pass 1 scans in row-major order, assigning each
// foreground pixel the smallest label among its already-visited neighbors
// (or a fresh one) and unioning the rest; pass 2 resolves every
// provisional label to its canonical root and renumbers densely.
//
// Returns raster.ErrBadConnectivity for an unsupported conn and
// raster.ErrEmptyBuffer for a degenerate image.
// Complexity: O(W·H·α(W·H)) time, O(W·H) memory.
func Label[T raster.Channel](img *raster.Image[T], conn raster.Connectivity) (*raster.Image[int32], int, error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, 0, raster.ErrEmptyBuffer
	}
	if !conn.Valid() {
		return nil, 0, raster.ErrBadConnectivity
	}

	w, h := img.Width, img.Height
	labels := &raster.Image[int32]{Width: w, Height: h, Pix: make([]int32, w*h)}

	// Already-visited neighbors of (x,y) in a row-major scan: left and up,
	// plus the two upper diagonals when diagonal adjacency counts.
	prev := [][2]int{{-1, 0}, {0, -1}}
	if conn == raster.Conn8 {
		prev = [][2]int{{-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	}

	forest := newDSU(w*h/2 + 1)

	// Pass 1: provisional labels + equivalences.
	var zero T
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if img.Pix[i] == zero {
				continue
			}
			best := int32(0)
			for _, d := range prev {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= w || ny < 0 {
					continue
				}
				nl := labels.Pix[ny*w+nx]
				if nl == 0 {
					continue
				}
				if best == 0 || nl < best {
					best = nl
				}
			}
			if best == 0 {
				labels.Pix[i] = forest.makeSet()
				continue
			}
			labels.Pix[i] = best
			for _, d := range prev {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= w || ny < 0 {
					continue
				}
				if nl := labels.Pix[ny*w+nx]; nl != 0 {
					forest.union(best, nl)
				}
			}
		}
	}

	// Pass 2: resolve roots and renumber densely by first appearance.
	dense := make([]int32, len(forest.parent))
	var k int32
	for i, l := range labels.Pix {
		if l == 0 {
			continue
		}
		root := forest.find(l)
		if dense[root] == 0 {
			k++
			dense[root] = k
		}
		labels.Pix[i] = dense[root]
	}

	return labels, int(k), nil
}
