package ale

import "fmt"

// Screen is a raw emulator screen. Each pixel is a palette code as
// emitted by the console's video hardware, stored row-major.
type Screen struct {
	Width  int
	Height int
	Pixels []uint8
}

// NewScreen returns a new Screen of the given dimensions, filled with
// palette code fill
func NewScreen(width, height int, fill uint8) Screen {
	pixels := make([]uint8, width*height)
	if fill != 0 {
		for i := range pixels {
			pixels[i] = fill
		}
	}
	return Screen{Width: width, Height: height, Pixels: pixels}
}

// At returns the palette code at column x and row y
func (s Screen) At(x, y int) uint8 {
	return s.Pixels[y*s.Width+x]
}

// Set sets the palette code at column x and row y
func (s Screen) Set(x, y int, code uint8) {
	s.Pixels[y*s.Width+x] = code
}

// Validate returns an error if the pixel buffer does not match the
// screen dimensions
func (s Screen) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("validate: invalid screen dimensions %vx%v",
			s.Width, s.Height)
	}
	if len(s.Pixels) != s.Width*s.Height {
		return fmt.Errorf("validate: invalid number of pixels\n\twant(%v)"+
			"\n\thave(%v)", s.Width*s.Height, len(s.Pixels))
	}
	return nil
}
