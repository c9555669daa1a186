package frame

import (
	"image"
	"strings"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/mat"
)

const hexDigits = "0123456789abcdef"

// Dump returns a text visualization of the Frame: one line per row,
// one hexadecimal digit (intensity / 16) per pixel.
func (f *Frame) Dump() string {
	var b strings.Builder
	b.Grow(f.size * (f.size + 1))
	for row := 0; row < f.size; row++ {
		for col := 0; col < f.size; col++ {
			b.WriteByte(hexDigits[f.At(row, col)/16])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Matrix returns the Frame as a Size() x Size() matrix of intensities
func (f *Frame) Matrix() *mat.Dense {
	data := make([]float64, f.Len())
	f.Flatten(data)
	return mat.NewDense(f.size, f.size, data)
}

// context draws the Frame, one grayscale pixel per intensity
func (f *Frame) context() *gg.Context {
	dc := gg.NewContext(f.size, f.size)
	for y := 0; y < f.size; y++ {
		for x := 0; x < f.size; x++ {
			v := int(f.At(y, x))
			dc.SetRGB255(v, v, v)
			dc.SetPixel(x, y)
		}
	}
	return dc
}

// Image returns the Frame as an image
func (f *Frame) Image() image.Image {
	return f.context().Image()
}

// SavePNG renders the Frame to a PNG file
func (f *Frame) SavePNG(path string) error {
	return f.context().SavePNG(path)
}
