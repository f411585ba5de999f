package display_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixkit/display"
	"github.com/katalvlaran/pixkit/raster"
)

func TestToImage_Uint8Direct(t *testing.T) {
	img, err := raster.FromRows([][]uint8{
		{0, 128, 255},
		{10, 20, 30},
	})
	require.NoError(t, err)

	gray, err := display.ToImage(img)
	require.NoError(t, err)
	require.Equal(t, 3, gray.Bounds().Dx())
	require.Equal(t, 2, gray.Bounds().Dy())
	require.Equal(t, uint8(0), gray.GrayAt(0, 0).Y)
	require.Equal(t, uint8(128), gray.GrayAt(1, 0).Y)
	require.Equal(t, uint8(255), gray.GrayAt(2, 0).Y)
	require.Equal(t, uint8(30), gray.GrayAt(2, 1).Y)
}

func TestToImage_Uint16ScalesDown(t *testing.T) {
	img, err := raster.FromRows([][]uint16{
		{0, 0x8000, 0xffff},
	})
	require.NoError(t, err)

	gray, err := display.ToImage(img)
	require.NoError(t, err)
	require.Equal(t, uint8(0), gray.GrayAt(0, 0).Y)
	require.Equal(t, uint8(0x80), gray.GrayAt(1, 0).Y)
	require.Equal(t, uint8(0xff), gray.GrayAt(2, 0).Y)
}

func TestToImage_Float64Normalizes(t *testing.T) {
	img, err := raster.FromRows([][]float64{
		{-1.0, 0.0, 1.0},
	})
	require.NoError(t, err)

	gray, err := display.ToImage(img)
	require.NoError(t, err)
	require.Equal(t, uint8(0), gray.GrayAt(0, 0).Y)
	require.Equal(t, uint8(128), gray.GrayAt(1, 0).Y)
	require.Equal(t, uint8(255), gray.GrayAt(2, 0).Y)
}

func TestToImage_ConstantFloatRendersBlack(t *testing.T) {
	img, err := raster.New[float32](3, 3)
	require.NoError(t, err)
	img.Fill(7.5)

	gray, err := display.ToImage(img)
	require.NoError(t, err)
	for _, v := range gray.Pix {
		require.Equal(t, uint8(0), v)
	}
}

func TestToImage_Int32Normalizes(t *testing.T) {
	img, err := raster.FromRows([][]int32{
		{0, 5, 10},
	})
	require.NoError(t, err)

	gray, err := display.ToImage(img)
	require.NoError(t, err)
	require.Equal(t, uint8(0), gray.GrayAt(0, 0).Y)
	require.Equal(t, uint8(128), gray.GrayAt(1, 0).Y)
	require.Equal(t, uint8(255), gray.GrayAt(2, 0).Y)
}

func TestToImage_NilImage(t *testing.T) {
	_, err := display.ToImage[uint8](nil)
	require.ErrorIs(t, err, raster.ErrEmptyBuffer)
}
