// Package warp implements the pixkit geometric transform engine: mapping
// a pixel buffer through an invertible affine or projective coordinate
// transform with configurable interpolation and out-of-bounds fill.
//
// A Transform is a 3×3 homogeneous coefficient matrix. Constructors cover
// the common cases (Translate, Scale, Rotate, Shear, Affine, Projective)
// and compose algebraically:
//
//	tr := warp.RotateAbout(math.Pi/6, cx, cy).Compose(warp.Scale(2, 2))
//	out, err := warp.Warp(img, tr, warp.DefaultOptions())
//
// Warp inverse-maps every output pixel to a (generally fractional) source
// coordinate and resamples with Nearest or Bilinear interpolation. Source
// coordinates outside the buffer resolve through the fill policy (a
// constant value or the edge-clamped sample), never an error. A singular
// matrix is rejected up front as ErrSingularTransform before any pixel
// work begins.
//
// Output dimensions default to the source's; Options.Width/Height
// override them, and Options.FitBounds sizes the output to the transformed
// bounding box of the input instead.
package warp
