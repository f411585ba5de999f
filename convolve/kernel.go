package convolve

import "math"

// Kernel is a rectangular grid of signed weights plus an anchor offset.
// The anchor is the kernel cell aligned with the output pixel; for
// odd-sized kernels it defaults to the exact center, and even-sized
// kernels are permitted with an explicit anchor via WithAnchor.
//
// Kernels constructed by NewSeparable additionally carry their rank-1
// factors, enabling the two-pass filtering scheme in Convolve.
type Kernel struct {
	Weights          []float64 // flat row-major, len = Width*Height
	Width, Height    int
	AnchorX, AnchorY int

	sepRow, sepCol []float64 // non-nil only for separable kernels
}

// NewKernel builds a kernel from a non-empty rectangular 2D slice of
// weights, deep-copying the input. The anchor defaults to
// (Width/2, Height/2).
// Returns ErrEmptyKernel or ErrRaggedKernel on malformed input.
func NewKernel(rows [][]float64) (*Kernel, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyKernel
	}
	h, w := len(rows), len(rows[0])
	weights := make([]float64, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrRaggedKernel
		}
		weights = append(weights, row...)
	}

	return &Kernel{
		Weights: weights,
		Width:   w,
		Height:  h,
		AnchorX: w / 2,
		AnchorY: h / 2,
	}, nil
}

// NewSeparable builds the outer-product kernel col·rowᵀ while retaining
// both 1D factors, so Convolve can run the row pass then the column pass.
// Returns ErrEmptyKernel if either factor is empty.
func NewSeparable(row, col []float64) (*Kernel, error) {
	if len(row) == 0 || len(col) == 0 {
		return nil, ErrEmptyKernel
	}
	w, h := len(row), len(col)
	weights := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			weights[y*w+x] = col[y] * row[x]
		}
	}

	return &Kernel{
		Weights: weights,
		Width:   w,
		Height:  h,
		AnchorX: w / 2,
		AnchorY: h / 2,
		sepRow:  append([]float64(nil), row...),
		sepCol:  append([]float64(nil), col...),
	}, nil
}

// WithAnchor returns a copy of k anchored at (ax, ay).
// Returns ErrBadAnchor when the anchor falls outside the kernel extent.
func (k *Kernel) WithAnchor(ax, ay int) (*Kernel, error) {
	if ax < 0 || ax >= k.Width || ay < 0 || ay >= k.Height {
		return nil, ErrBadAnchor
	}
	out := *k
	out.AnchorX, out.AnchorY = ax, ay

	return &out, nil
}

// Separable returns the 1D factors when the kernel was built via
// NewSeparable; ok is false otherwise.
func (k *Kernel) Separable() (row, col []float64, ok bool) {
	if k.sepRow == nil || k.sepCol == nil {
		return nil, nil, false
	}

	return k.sepRow, k.sepCol, true
}

// Sum returns the sum of all kernel weights.
func (k *Kernel) Sum() float64 {
	var s float64
	for _, w := range k.Weights {
		s += w
	}

	return s
}

// Identity returns the 1×1 kernel with a single weight of 1; convolving
// with it returns the input unchanged.
func Identity() *Kernel {
	k, _ := NewKernel([][]float64{{1}})

	return k
}

// Box returns the normalized n×n averaging kernel (each weight 1/n²),
// built separably. Returns ErrEmptyKernel if n is not positive.
func Box(n int) (*Kernel, error) {
	if n <= 0 {
		return nil, ErrEmptyKernel
	}
	f := make([]float64, n)
	for i := range f {
		f[i] = 1.0 / float64(n)
	}

	return NewSeparable(f, f)
}

// Gaussian returns the normalized separable n×n Gaussian kernel with the
// given standard deviation. Returns ErrEmptyKernel if n is not positive;
// sigma <= 0 defaults to 0.3·((n−1)/2 − 1) + 0.8, the conventional
// size-derived value.
func Gaussian(n int, sigma float64) (*Kernel, error) {
	if n <= 0 {
		return nil, ErrEmptyKernel
	}
	if sigma <= 0 {
		sigma = 0.3*(float64(n-1)/2-1) + 0.8
	}
	f := make([]float64, n)
	mid := float64(n-1) / 2
	var sum float64
	for i := range f {
		d := float64(i) - mid
		f[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += f[i]
	}
	for i := range f {
		f[i] /= sum
	}

	return NewSeparable(f, f)
}

// SobelX returns the 3×3 horizontal derivative kernel
//
//	-1  0  1
//	-2  0  2
//	-1  0  1
func SobelX() *Kernel {
	k, _ := NewSeparable([]float64{-1, 0, 1}, []float64{1, 2, 1})

	return k
}

// SobelY returns the 3×3 vertical derivative kernel
//
//	-1 -2 -1
//	 0  0  0
//	 1  2  1
func SobelY() *Kernel {
	k, _ := NewSeparable([]float64{1, 2, 1}, []float64{-1, 0, 1})

	return k
}
