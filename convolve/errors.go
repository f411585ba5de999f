package convolve

import "errors"

// Sentinel errors for kernel construction and filtering.
var (
	// ErrEmptyKernel indicates a kernel with zero rows or zero columns.
	ErrEmptyKernel = errors.New("convolve: kernel must have at least one row and one column")
	// ErrRaggedKernel indicates kernel rows of differing lengths.
	ErrRaggedKernel = errors.New("convolve: all kernel rows must have the same length")
	// ErrBadAnchor indicates an anchor outside the kernel extent.
	ErrBadAnchor = errors.New("convolve: anchor must lie within the kernel")
)
