// Package frame implements fixed-size grayscale frames and the stacks
// of recent frames that form the input of a model.
//
// Frames are immutable once created. Many transitions in a replay
// memory may point to the same Frame; a Frame is released by the
// garbage collector once nothing refers to it.
package frame

import (
	"fmt"
)

// Frame is an immutable square grid of grayscale intensities stored in
// row-major order
type Frame struct {
	size int
	data []uint8
}

// New returns a new Frame with edge length size. The data is copied so
// that later changes to data do not affect the Frame.
func New(size int, data []uint8) (*Frame, error) {
	if size <= 0 {
		return nil, fmt.Errorf("new: frame size must be > 0")
	}
	if len(data) != size*size {
		return nil, fmt.Errorf("new: invalid number of pixels\n\twant(%v)"+
			"\n\thave(%v)", size*size, len(data))
	}
	f := &Frame{size: size, data: make([]uint8, len(data))}
	copy(f.data, data)
	return f, nil
}

// Zeros returns an all-black Frame
func Zeros(size int) *Frame {
	return &Frame{size: size, data: make([]uint8, size*size)}
}

// Generate returns a new Frame whose intensity at row i and column j
// is fn(i, j)
func Generate(size int, fn func(i, j int) uint8) *Frame {
	data := make([]uint8, size*size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			data[i*size+j] = fn(i, j)
		}
	}
	return &Frame{size: size, data: data}
}

// Size returns the edge length of the Frame
func (f *Frame) Size() int {
	return f.size
}

// Len returns the number of pixels in the Frame
func (f *Frame) Len() int {
	return len(f.data)
}

// At returns the intensity at row i and column j
func (f *Frame) At(i, j int) uint8 {
	return f.data[i*f.size+j]
}

// Pixels returns a copy of the Frame's intensities in row-major order
func (f *Frame) Pixels() []uint8 {
	pixels := make([]uint8, len(f.data))
	copy(pixels, f.data)
	return pixels
}

// Flatten writes the Frame's intensities as float64 values into dst,
// which must have length Len()
func (f *Frame) Flatten(dst []float64) {
	if len(dst) != len(f.data) {
		panic(fmt.Sprintf("flatten: invalid destination length\n\twant(%v)"+
			"\n\thave(%v)", len(f.data), len(dst)))
	}
	for i, v := range f.data {
		dst[i] = float64(v)
	}
}

// Equal returns whether two Frames hold the same intensities
func (f *Frame) Equal(other *Frame) bool {
	if other == nil || f.size != other.size {
		return false
	}
	for i := range f.data {
		if f.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
