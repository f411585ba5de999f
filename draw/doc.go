// Package draw provides overlay drawing primitives for pixkit buffers:
// lines, rectangles, and text labels. Like every pixkit operation, the
// drawing functions are pure — they clone the input and return a new
// buffer with the overlay applied.
//
//	out := draw.Line(img, 0, 0, 50, 20, uint8(255))
//	out, _ = draw.Text(out, 4, 4, "frame 12", uint8(255))
//
// Coordinates outside the buffer are clipped silently, so annotating near
// the border is safe. Text is rasterized through golang.org/x/image/font;
// Text uses the built-in basicfont face and TextFace accepts any
// font.Face.
package draw
