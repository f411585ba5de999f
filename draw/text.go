package draw

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/pixkit/raster"
)

// Text returns a copy of img with s rendered in value v, the top-left of
// the text box at (x, y), using the built-in 7×13 basicfont face.
// Portions outside the buffer are clipped.
func Text[T raster.Channel](img *raster.Image[T], x, y int, s string, v T) (*raster.Image[T], error) {
	return TextFace(img, x, y, s, v, basicfont.Face7x13)
}

// TextFace is Text with a caller-supplied font.Face. The glyphs are
// rasterized to an alpha mask via x/image/font and every covered mask
// pixel is stamped onto the output in value v.
func TextFace[T raster.Channel](img *raster.Image[T], x, y int, s string, v T, face font.Face) (*raster.Image[T], error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, raster.ErrEmptyBuffer
	}
	out := img.Clone()
	if s == "" {
		return out, nil
	}

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := metrics.Height.Ceil()
	width := font.MeasureString(face, s).Ceil()
	if width <= 0 || height <= 0 {
		return out, nil
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.NewUniform(color.Alpha{A: 0xff}),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(s)

	for my := 0; my < height; my++ {
		for mx := 0; mx < width; mx++ {
			if mask.AlphaAt(mx, my).A >= 0x80 {
				setClipped(out, x+mx, y+my, v)
			}
		}
	}

	return out, nil
}
