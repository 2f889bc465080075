package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestDecodeFormats(t *testing.T) {
	src := solid(8, 6, color.NRGBA{R: 120, G: 90, B: 60, A: 255})

	var pngBuf, jpgBuf, bmpBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, src))
	require.NoError(t, jpeg.Encode(&jpgBuf, src, &jpeg.Options{Quality: 95}))
	require.NoError(t, bmp.Encode(&bmpBuf, src))

	for name, buf := range map[string]*bytes.Buffer{"png": &pngBuf, "jpeg": &jpgBuf, "bmp": &bmpBuf} {
		img, format, err := Decode(buf)
		require.NoError(t, err, name)
		assert.Equal(t, name, format)
		assert.Equal(t, 8, img.Bounds().Dx())
	}
}

func TestDecodeCorruptBytes(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("definitely not an image")))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestFitDownsamplesLongSide(t *testing.T) {
	src := solid(400, 100, color.NRGBA{R: 50, G: 60, B: 70, A: 255})

	out := Fit(src, 100)
	assert.Equal(t, 100, out.Bounds().Dx())
	assert.Equal(t, 25, out.Bounds().Dy())

	f, err := ExtractImage(out)
	require.NoError(t, err)
	assert.InDelta(t, 50, f.MeanR, 1)
}

func TestFitLeavesSmallAndGrayImages(t *testing.T) {
	small := solid(10, 10, color.NRGBA{A: 255})
	assert.Same(t, small, Fit(small, 100))
	assert.Same(t, small, Fit(small, 0))

	gray := image.NewGray(image.Rect(0, 0, 500, 500))
	assert.Same(t, gray, Fit(gray, 100))
}
