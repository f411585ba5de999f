package raster

// Channel enumerates the pixel numeric types every pixkit operation
// supports: unsigned 8/16-bit, signed 32-bit, and floating-point channels.
type Channel interface {
	uint8 | uint16 | int32 | float32 | float64
}

// Image is a 2D pixel buffer with a fixed width and height and a flat
// row-major backing slice: the pixel at (x, y) lives at Pix[y*Width+x].
//
// Invariants: Width > 0, Height > 0, len(Pix) == Width*Height, and all
// logical rows have identical length by construction. Coordinates are
// zero-based and bounded [0,Width)×[0,Height).
//
// Operations across pixkit treat images as immutable: they read their
// inputs and return freshly allocated outputs.
type Image[T Channel] struct {
	Width, Height int
	Pix           []T
}

// New allocates a zero-filled w×h image.
// Returns ErrEmptyBuffer if w or h is not positive.
// Complexity: O(w×h).
func New[T Channel](w, h int) (*Image[T], error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyBuffer
	}

	return &Image[T]{Width: w, Height: h, Pix: make([]T, w*h)}, nil
}

// FromRows builds an image from a non-empty rectangular 2D slice,
// deep-copying the input so later caller mutation cannot leak in.
// Returns ErrEmptyBuffer for zero rows/columns, ErrNonRectangular if any
// row length differs from the first.
// Complexity: O(w×h) time and memory.
func FromRows[T Channel](rows [][]T) (*Image[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyBuffer
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	img := &Image[T]{Width: w, Height: h, Pix: make([]T, w*h)}
	for y := 0; y < h; y++ {
		copy(img.Pix[y*w:(y+1)*w], rows[y])
	}

	return img, nil
}

// Index maps (x, y) to the row-major offset y*Width + x.
// Complexity: O(1).
func (img *Image[T]) Index(x, y int) int {
	return y*img.Width + x
}

// InBounds reports whether (x, y) lies within the image boundaries.
// Complexity: O(1).
func (img *Image[T]) InBounds(x, y int) bool {
	return x >= 0 && x < img.Width && y >= 0 && y < img.Height
}

// At returns the pixel value at (x, y). The coordinate must be in bounds;
// use AtChecked when the caller cannot guarantee that.
func (img *Image[T]) At(x, y int) T {
	return img.Pix[y*img.Width+x]
}

// AtChecked returns the pixel at (x, y), or ErrBounds when the coordinate
// falls outside the image.
func (img *Image[T]) AtChecked(x, y int) (T, error) {
	if !img.InBounds(x, y) {
		var zero T
		return zero, ErrBounds
	}

	return img.Pix[y*img.Width+x], nil
}

// Set stores v at (x, y). The coordinate must be in bounds.
func (img *Image[T]) Set(x, y int, v T) {
	img.Pix[y*img.Width+x] = v
}

// Clone returns an independent deep copy of the image.
// Complexity: O(w×h).
func (img *Image[T]) Clone() *Image[T] {
	pix := make([]T, len(img.Pix))
	copy(pix, img.Pix)

	return &Image[T]{Width: img.Width, Height: img.Height, Pix: pix}
}

// Fill sets every pixel to v, in place. Intended for freshly allocated
// buffers; operations never call it on caller-owned images.
func (img *Image[T]) Fill(v T) {
	for i := range img.Pix {
		img.Pix[i] = v
	}
}

// Map returns a new image with f applied to every pixel.
// Complexity: O(w×h).
func (img *Image[T]) Map(f func(T) T) *Image[T] {
	out := &Image[T]{Width: img.Width, Height: img.Height, Pix: make([]T, len(img.Pix))}
	for i, v := range img.Pix {
		out.Pix[i] = f(v)
	}

	return out
}

// Row returns the y-th row as a subslice of the backing buffer.
// The slice aliases the image; callers must not modify it.
func (img *Image[T]) Row(y int) []T {
	return img.Pix[y*img.Width : (y+1)*img.Width]
}

// Equal reports whether a and b have identical dimensions and pixel data.
func Equal[T Channel](a, b *Image[T]) bool {
	if a.Width != b.Width || a.Height != b.Height {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}

	return true
}

// SameSize returns nil when a and b share dimensions, ErrDimensionMismatch
// otherwise. Multi-input operations call it before touching pixel data.
func SameSize[T, U Channel](a *Image[T], b *Image[U]) error {
	if a.Width != b.Width || a.Height != b.Height {
		return ErrDimensionMismatch
	}

	return nil
}
