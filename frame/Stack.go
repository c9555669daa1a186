package frame

import "fmt"

// Stack is an immutable, ordered sequence of Frames, oldest first. A
// Stack is the unit of model input.
type Stack struct {
	frames []*Frame
}

// NewStack returns a Stack of the given Frames, oldest first. All
// Frames must have the same size.
func NewStack(frames ...*Frame) (Stack, error) {
	if len(frames) == 0 {
		return Stack{}, fmt.Errorf("newStack: stack must hold at least " +
			"one frame")
	}
	for i, f := range frames {
		if f == nil {
			return Stack{}, fmt.Errorf("newStack: frame %v is nil", i)
		}
	}
	size := frames[0].Size()
	for i, f := range frames {
		if f.Size() != size {
			return Stack{}, fmt.Errorf("newStack: frame %v has size %v, "+
				"want %v", i, f.Size(), size)
		}
	}
	s := make([]*Frame, len(frames))
	copy(s, frames)
	return Stack{frames: s}, nil
}

// Len returns the number of Frames in the Stack
func (s Stack) Len() int {
	return len(s.frames)
}

// At returns the i-th oldest Frame in the Stack
func (s Stack) At(i int) *Frame {
	return s.frames[i]
}

// Last returns the most recent Frame in the Stack
func (s Stack) Last() *Frame {
	return s.frames[len(s.frames)-1]
}

// FrameSize returns the edge length of the Frames in the Stack
func (s Stack) FrameSize() int {
	if len(s.frames) == 0 {
		return 0
	}
	return s.frames[0].Size()
}

// DataLen returns the number of values produced by Flatten
func (s Stack) DataLen() int {
	size := s.FrameSize()
	return len(s.frames) * size * size
}

// Flatten writes the Frames of the Stack, oldest first and each
// flattened row-major, into dst. The length of dst must be DataLen().
func (s Stack) Flatten(dst []float64) {
	if len(dst) != s.DataLen() {
		panic(fmt.Sprintf("flatten: invalid destination length\n\twant(%v)"+
			"\n\thave(%v)", s.DataLen(), len(dst)))
	}
	frameLen := s.FrameSize() * s.FrameSize()
	for i, f := range s.frames {
		f.Flatten(dst[i*frameLen : (i+1)*frameLen])
	}
}

// History is a fixed-depth sliding window over the most recent Frames.
// Pushing a Frame onto a full History drops the oldest Frame.
type History struct {
	depth  int
	frames []*Frame
}

// NewHistory returns an empty History holding at most depth Frames
func NewHistory(depth int) *History {
	if depth <= 0 {
		panic(fmt.Sprintf("newHistory: depth must be > 0, have %v", depth))
	}
	return &History{depth: depth, frames: make([]*Frame, 0, depth)}
}

// Depth returns the number of Frames in a warm History
func (h *History) Depth() int {
	return h.depth
}

// Len returns the number of Frames currently held
func (h *History) Len() int {
	return len(h.frames)
}

// Warm returns whether Depth() Frames have been pushed
func (h *History) Warm() bool {
	return len(h.frames) == h.depth
}

// Push appends a Frame, dropping the oldest Frame if the History is
// already warm
func (h *History) Push(f *Frame) {
	if f == nil {
		panic("push: cannot push nil frame")
	}
	if len(h.frames) > 0 && h.frames[0].Size() != f.Size() {
		panic(fmt.Sprintf("push: frame size %v does not match history frame "+
			"size %v", f.Size(), h.frames[0].Size()))
	}
	if h.Warm() {
		copy(h.frames, h.frames[1:])
		h.frames[len(h.frames)-1] = f
		return
	}
	h.frames = append(h.frames, f)
}

// Reset empties the History, e.g. at the start of an episode
func (h *History) Reset() {
	for i := range h.frames {
		h.frames[i] = nil
	}
	h.frames = h.frames[:0]
}

// Stack returns an immutable snapshot of the History. The Frames
// themselves are shared, not copied.
//
// Stack panics if the History is not warm.
func (h *History) Stack() Stack {
	if !h.Warm() {
		panic(fmt.Sprintf("stack: history not warm, have %v of %v frames",
			len(h.frames), h.depth))
	}
	s := make([]*Frame, h.depth)
	copy(s, h.frames)
	return Stack{frames: s}
}
