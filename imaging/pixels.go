package imaging

import (
	"image"
	"image/color"
)

// Pixels is a decoded image flattened into a height × width × channels
// array of 8-bit intensities, row-major with interleaved channels.
type Pixels struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// At returns the intensity of channel ch at (x, y).
func (p Pixels) At(x, y, ch int) uint8 {
	return p.Pix[(y*p.Width+x)*p.Channels+ch]
}

// PixelsFromImage flattens img. Gray and alpha-only images yield a single
// channel; colour images yield RGB, plus A when the model carries alpha.
// Colour values are un-premultiplied.
func PixelsFromImage(img image.Image) Pixels {
	b := img.Bounds()
	channels := channelCount(img.ColorModel())
	p := Pixels{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels,
		Pix:      make([]uint8, b.Dx()*b.Dy()*channels),
	}

	if src, ok := img.(*image.NRGBA); ok && channels == 4 {
		for y := 0; y < p.Height; y++ {
			start := (y+b.Min.Y-src.Rect.Min.Y)*src.Stride + (b.Min.X-src.Rect.Min.X)*4
			copy(p.Pix[y*p.Width*4:(y+1)*p.Width*4], src.Pix[start:start+p.Width*4])
		}
		return p
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			if channels == 1 {
				if a, ok := c.(color.Alpha); ok {
					p.Pix[i] = a.A
				} else if a16, ok := c.(color.Alpha16); ok {
					p.Pix[i] = uint8(a16.A >> 8)
				} else {
					p.Pix[i] = color.GrayModel.Convert(c).(color.Gray).Y
				}
				i++
				continue
			}
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			p.Pix[i], p.Pix[i+1], p.Pix[i+2] = n.R, n.G, n.B
			if channels == 4 {
				p.Pix[i+3] = n.A
			}
			i += channels
		}
	}
	return p
}
