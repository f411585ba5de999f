// Package display is an optional debug surface: it shows any pixkit
// buffer in an interactive Fyne window. It consumes algorithm outputs and
// never influences them; nothing else in pixkit depends on it.
//
//	edgesMap, _ := edges.Detect(img, edges.DefaultOptions())
//	display.Show("edges", edgesMap) // blocks until the window closes
//
// ToImage, the buffer-to-image.Gray conversion Show is built on, is
// exported for callers that want to feed buffers into their own UI or
// encoder.
package display

import (
	"image"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/katalvlaran/pixkit/raster"
)

// ToImage converts a buffer to an 8-bit grayscale image.Image. uint8
// channels map directly; uint16 scale down by 8 bits; int32, float32 and
// float64 are min-max normalized to [0,255] (a constant buffer renders
// black). Returns raster.ErrEmptyBuffer for a degenerate buffer.
func ToImage[T raster.Channel](img *raster.Image[T]) (*image.Gray, error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, raster.ErrEmptyBuffer
	}
	out := image.NewGray(image.Rect(0, 0, img.Width, img.Height))

	var zero T
	switch any(zero).(type) {
	case uint8:
		for i, v := range img.Pix {
			out.Pix[i] = uint8(v)
		}
	case uint16:
		for i, v := range img.Pix {
			out.Pix[i] = uint8(uint16(v) >> 8)
		}
	default:
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, v := range img.Pix {
			f := float64(v)
			lo, hi = math.Min(lo, f), math.Max(hi, f)
		}
		scale := 0.0
		if hi > lo {
			scale = 255 / (hi - lo)
		}
		for i, v := range img.Pix {
			out.Pix[i] = uint8(math.Round((float64(v) - lo) * scale))
		}
	}

	return out, nil
}

// Show opens a window titled title rendering img and blocks until the
// user closes it. Must run on the main goroutine (a Fyne requirement).
func Show[T raster.Channel](title string, img *raster.Image[T]) error {
	gray, err := ToImage(img)
	if err != nil {
		return err
	}

	a := app.New()
	w := a.NewWindow(title)
	ci := canvas.NewImageFromImage(gray)
	ci.FillMode = canvas.ImageFillContain
	ci.ScaleMode = canvas.ImageScalePixels
	w.SetContent(ci)
	w.Resize(fyne.NewSize(float32(img.Width), float32(img.Height)))
	w.ShowAndRun()

	return nil
}
