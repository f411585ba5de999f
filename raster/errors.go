package raster

import "errors"

// Sentinel errors for buffer construction and access.
var (
	// ErrEmptyBuffer indicates a zero-area buffer: no rows, no columns,
	// or non-positive requested dimensions.
	ErrEmptyBuffer = errors.New("raster: buffer must have at least one row and one column")
	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
	// ErrBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrBounds = errors.New("raster: coordinate out of bounds")
	// ErrDimensionMismatch indicates two buffers of different sizes were
	// given to an operation that requires equal dimensions.
	ErrDimensionMismatch = errors.New("raster: buffers must have identical dimensions")
	// ErrBadConnectivity indicates a connectivity other than Conn4 or Conn8.
	ErrBadConnectivity = errors.New("raster: connectivity must be Conn4 or Conn8")
)
