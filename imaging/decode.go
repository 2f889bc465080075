// Package imaging decodes uploaded soil photos and reduces them to the
// color statistics used by the soil classifier.
package imaging

import (
	"bufio"
	"errors"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads an image in any registered format (png, jpeg, gif, bmp, tiff, webp)
// and returns it with its format name.
func Decode(r io.Reader) (image.Image, string, error) {
	if r == nil {
		return nil, "", &DecodeError{Err: errors.New("nil reader")}
	}
	img, format, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, "", &DecodeError{Err: err}
	}
	return img, format, nil
}

// Fit downsamples img so that its longer side is at most maxDim pixels.
// A maxDim of zero or less, an image already small enough, or a single
// channel image is returned unchanged.
func Fit(img image.Image, maxDim int) image.Image {
	if maxDim <= 0 || img == nil || channelCount(img.ColorModel()) < 3 {
		return img
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	var dw, dh int
	if w >= h {
		dw = maxDim
		dh = max(1, h*maxDim/w)
	} else {
		dh = maxDim
		dw = max(1, w*maxDim/h)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// channelCount reports how many channels an image of the given color model
// exposes when flattened into an array.
func channelCount(m color.Model) int {
	switch m {
	case color.GrayModel, color.Gray16Model, color.AlphaModel, color.Alpha16Model:
		return 1
	case color.RGBAModel, color.RGBA64Model, color.NRGBAModel, color.NRGBA64Model:
		return 4
	default:
		return 3
	}
}
