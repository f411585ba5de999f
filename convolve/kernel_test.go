package convolve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixkit/convolve"
)

// TestNewKernel_Errors rejects empty and ragged weight grids.
func TestNewKernel_Errors(t *testing.T) {
	_, err := convolve.NewKernel(nil)
	require.ErrorIs(t, err, convolve.ErrEmptyKernel)

	_, err = convolve.NewKernel([][]float64{{}})
	require.ErrorIs(t, err, convolve.ErrEmptyKernel)

	_, err = convolve.NewKernel([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, convolve.ErrRaggedKernel)
}

// TestNewKernel_DefaultAnchor: odd sizes anchor at the exact center.
func TestNewKernel_DefaultAnchor(t *testing.T) {
	k, err := convolve.NewKernel([][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	require.Equal(t, 1, k.AnchorX)
	require.Equal(t, 1, k.AnchorY)
}

// TestWithAnchor validates explicit anchors for even-sized kernels.
func TestWithAnchor(t *testing.T) {
	k, err := convolve.NewKernel([][]float64{{1, 1}, {1, 1}})
	require.NoError(t, err)

	anchored, err := k.WithAnchor(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, anchored.AnchorX)
	require.Equal(t, 1, k.AnchorX, "WithAnchor must not mutate the receiver")

	_, err = k.WithAnchor(2, 0)
	require.ErrorIs(t, err, convolve.ErrBadAnchor)
	_, err = k.WithAnchor(0, -1)
	require.ErrorIs(t, err, convolve.ErrBadAnchor)
}

// TestNewSeparable: the 2D weights equal the outer product of the factors.
func TestNewSeparable(t *testing.T) {
	k, err := convolve.NewSeparable([]float64{1, 2, 3}, []float64{4, 5})
	require.NoError(t, err)
	require.Equal(t, 3, k.Width)
	require.Equal(t, 2, k.Height)
	require.Equal(t, []float64{4, 8, 12, 5, 10, 15}, k.Weights)

	row, col, ok := k.Separable()
	require.True(t, ok)
	require.Equal(t, []float64{1, 2, 3}, row)
	require.Equal(t, []float64{4, 5}, col)

	full, err := convolve.NewKernel([][]float64{{1}})
	require.NoError(t, err)
	_, _, ok = full.Separable()
	require.False(t, ok)
}

// TestBox: normalized weights summing to 1.
func TestBox(t *testing.T) {
	k, err := convolve.Box(3)
	require.NoError(t, err)
	require.Equal(t, 3, k.Width)
	require.InDelta(t, 1.0, k.Sum(), 1e-12)

	_, err = convolve.Box(0)
	require.ErrorIs(t, err, convolve.ErrEmptyKernel)
}

// TestGaussian: normalized, symmetric, peaked at the center.
func TestGaussian(t *testing.T) {
	k, err := convolve.Gaussian(5, 1.4)
	require.NoError(t, err)
	require.InDelta(t, 1.0, k.Sum(), 1e-12)

	row, col, ok := k.Separable()
	require.True(t, ok)
	require.Equal(t, row, col)
	require.Equal(t, row[0], row[4], "factor must be symmetric")
	require.Greater(t, row[2], row[1], "factor must peak at center")

	_, err = convolve.Gaussian(0, 1)
	require.ErrorIs(t, err, convolve.ErrEmptyKernel)
}

// TestSobel: derivative kernels have zero sum and the textbook weights.
func TestSobel(t *testing.T) {
	kx := convolve.SobelX()
	require.Equal(t, []float64{-1, 0, 1, -2, 0, 2, -1, 0, 1}, kx.Weights)
	require.InDelta(t, 0, kx.Sum(), 1e-12)

	ky := convolve.SobelY()
	require.Equal(t, []float64{-1, -2, -1, 0, 0, 0, 1, 2, 1}, ky.Weights)
	require.InDelta(t, 0, ky.Sum(), 1e-12)
}

// TestGaussian_DerivedSigma: sigma <= 0 derives from the size without NaN.
func TestGaussian_DerivedSigma(t *testing.T) {
	k, err := convolve.Gaussian(7, 0)
	require.NoError(t, err)
	require.False(t, math.IsNaN(k.Sum()))
	require.InDelta(t, 1.0, k.Sum(), 1e-12)
}

// TestIdentity returns the single-weight kernel.
func TestIdentity(t *testing.T) {
	k := convolve.Identity()
	require.Equal(t, 1, k.Width)
	require.Equal(t, 1, k.Height)
	require.Equal(t, []float64{1}, k.Weights)
}
