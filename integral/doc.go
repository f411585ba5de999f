// Package integral implements summed-area tables: a one-time O(W·H)
// precomputation over a pixel buffer that answers the sum of any
// axis-aligned rectangle in O(1) via the four-corner
// inclusion–exclusion formula.
//
//	t, _ := integral.Build(img)
//	s, _ := t.AreaSum(x0, y0, x1, y1) // sum over [x0,x1)×[y0,y1)
//
// The table carries one padding row and column of zeros at the origin, so
// queries need no boundary special-casing: T.At(x, y) is the sum of all
// source pixels in the half-open rectangle [0,x)×[0,y).
//
// BoxMean uses the table to mean-filter a buffer with a cost independent
// of the window radius.
package integral
