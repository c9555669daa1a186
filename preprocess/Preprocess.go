// Package preprocess converts raw emulator screens into fixed-size
// grayscale Frames.
//
// A screen is processed in four deterministic steps: each palette code
// is decoded to RGB, RGB is reduced to a grayscale intensity, the
// screen is cropped, and the cropped region is resampled to a square
// grid by area-weighted averaging.
package preprocess

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/nextframe/ale"
	"github.com/samuelfneumann/nextframe/frame"
	"github.com/samuelfneumann/nextframe/palette"
)

// Preprocessor converts raw screens into Frames. A Preprocessor holds
// no mutable state and may be shared freely.
type Preprocessor struct {
	size        int
	keepPercent int
	leftColumns int
}

// New returns a new Preprocessor with the given configuration
func New(c Config) (*Preprocessor, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid configuration: %v", err)
	}
	return &Preprocessor{
		size:        c.FrameSize,
		keepPercent: c.KeepPercent,
		leftColumns: c.LeftColumns,
	}, nil
}

// FrameSize returns the edge length of produced Frames
func (p *Preprocessor) FrameSize() int {
	return p.size
}

// crop returns the origin and dimensions of the region of a
// width x height screen that is kept
func (p *Preprocessor) crop(width, height int) (startX, startY, w, h int) {
	h = height * p.keepPercent / 100
	startY = (height - h) / 2
	startX = p.leftColumns
	w = width - startX
	return
}

// Process converts a raw screen into a Frame.
//
// Process panics if the screen is not taller than it is wide, if its
// pixel buffer does not match its dimensions, or if nothing remains
// after cropping. These all indicate wrongly wired emulator geometry.
func (p *Preprocessor) Process(screen ale.Screen) *frame.Frame {
	if err := screen.Validate(); err != nil {
		panic(fmt.Sprintf("process: %v", err))
	}
	if screen.Height <= screen.Width {
		panic(fmt.Sprintf("process: screen height must exceed width, have "+
			"%vx%v", screen.Width, screen.Height))
	}

	startX, startY, croppedW, croppedH := p.crop(screen.Width, screen.Height)
	if croppedW < 1 || croppedH < 1 {
		panic(fmt.Sprintf("process: nothing left of %vx%v screen after "+
			"cropping", screen.Width, screen.Height))
	}

	xRatio := float64(croppedW) / float64(p.size)
	yRatio := float64(croppedH) / float64(p.size)

	columns := make([]span, p.size)
	rows := make([]span, p.size)
	for k := 0; k < p.size; k++ {
		columns[k] = newSpan(k, xRatio, croppedW)
		rows[k] = newSpan(k, yRatio, croppedH)
	}

	return frame.Generate(p.size, func(i, j int) uint8 {
		col, row := columns[j], rows[i]

		var value float64
		for dy, yWeight := range row.weights {
			offset := (startY+row.first+dy)*screen.Width + startX + col.first
			for dx, xWeight := range col.weights {
				gray := palette.Gray(screen.Pixels[offset+dx])
				value += (xWeight / xRatio) * (yWeight / yRatio) * float64(gray)
			}
		}
		return uint8(math.Round(value))
	})
}

// span is the run of source pixels along one axis that an output
// cell covers, together with the overlap of each pixel with the cell
type span struct {
	first   int
	weights []float64
}

// newSpan returns the source pixels covered by output cell index along
// an axis of length pixels, where each output cell is ratio source
// pixels wide.
//
// A pixel's weight is the length of its overlap with the ideal cell
// interval [index*ratio, (index+1)*ratio]. Interior pixels have weight
// 1 and the first and last pixels have their fractional overlap.
func newSpan(index int, ratio float64, length int) span {
	lo := float64(index) * ratio
	hi := float64(index+1) * ratio

	first := int(math.Floor(lo))
	last := int(math.Floor(hi))

	// The pixel just past the final cell boundary never overlaps it
	if last > length-1 {
		last = length - 1
	}

	weights := make([]float64, last-first+1)
	for x := first; x <= last; x++ {
		w := math.Min(float64(x+1), hi) - math.Max(float64(x), lo)
		if w < 0 || w > 1 {
			panic(fmt.Sprintf("newSpan: weight %v of pixel %v in cell %v "+
				"outside [0, 1]", w, x, index))
		}
		weights[x-first] = w
	}
	return span{first: first, weights: weights}
}
