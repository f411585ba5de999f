package draw

import (
	"github.com/katalvlaran/pixkit/raster"
)

// Line returns a copy of img with a straight segment from (x0,y0) to
// (x1,y1) drawn in value v, using Bresenham's algorithm. Out-of-bounds
// portions are clipped.
// Complexity: O(W·H) for the clone plus O(max(|dx|,|dy|)) for the stroke.
func Line[T raster.Channel](img *raster.Image[T], x0, y0, x1, y1 int, v T) *raster.Image[T] {
	out := img.Clone()
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if out.InBounds(x0, y0) {
			out.Set(x0, y0, v)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}

	return out
}

// Rect returns a copy of img with the one-pixel outline of the rectangle
// spanning (x0,y0)–(x1,y1) inclusive drawn in value v, clipped to the
// buffer.
func Rect[T raster.Channel](img *raster.Image[T], x0, y0, x1, y1 int, v T) *raster.Image[T] {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	out := img.Clone()
	for x := x0; x <= x1; x++ {
		setClipped(out, x, y0, v)
		setClipped(out, x, y1, v)
	}
	for y := y0; y <= y1; y++ {
		setClipped(out, x0, y, v)
		setClipped(out, x1, y, v)
	}

	return out
}

// FillRect returns a copy of img with the rectangle spanning
// (x0,y0)–(x1,y1) inclusive filled with value v, clipped to the buffer.
func FillRect[T raster.Channel](img *raster.Image[T], x0, y0, x1, y1 int, v T) *raster.Image[T] {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	out := img.Clone()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			setClipped(out, x, y, v)
		}
	}

	return out
}

func setClipped[T raster.Channel](img *raster.Image[T], x, y int, v T) {
	if img.InBounds(x, y) {
		img.Set(x, y, v)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
