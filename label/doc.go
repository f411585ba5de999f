// Package label partitions the foreground of a pixel buffer into
// connected components using the classic two-pass raster-scan union-find
// algorithm.
//
// Any nonzero pixel is foreground. Label returns a map of the same
// dimensions where 0 is background and positive int32 values identify
// components, renumbered to a dense 1..k in order of first appearance in
// a raster scan — so identical inputs always produce identical label
// assignments.
//
//	labels, n, err := label.Label(img, raster.Conn8)
//
// Connectivity is an explicit required parameter (raster.Conn4 or
// raster.Conn8); there is no default.
//
// The disjoint-set forest is an index arena with path compression and
// union by rank, allocated and discarded inside one Label call.
package label
