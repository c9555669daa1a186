package dqn

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/samuelfneumann/nextframe/timestep"
)

// Transitions is an indexed collection of Transitions, such as a
// replay memory
type Transitions interface {
	At(i int) timestep.Transition
	Len() int
}

// Minibatch assembles sampled Transitions into training tensors. For
// a batch of M stacks of K frames of edge length S, the input tensor
// has shape (M, K, S, S) and the target tensor has shape (M, S, S).
type Minibatch struct {
	batch, depth, size int
}

// NewMinibatch returns a new Minibatch assembling batch Transitions
// whose states hold depth frames of edge length size
func NewMinibatch(batch, depth, size int) *Minibatch {
	if batch < 1 || depth < 1 || size < 1 {
		panic(fmt.Sprintf("newMinibatch: batch, depth, and size must be "+
			"> 0, have (%v, %v, %v)", batch, depth, size))
	}
	return &Minibatch{batch: batch, depth: depth, size: size}
}

// InputShape returns the shape of assembled input tensors
func (m *Minibatch) InputShape() tensor.Shape {
	return tensor.Shape{m.batch, m.depth, m.size, m.size}
}

// TargetShape returns the shape of assembled target tensors
func (m *Minibatch) TargetShape() tensor.Shape {
	return tensor.Shape{m.batch, m.size, m.size}
}

// Assemble returns the input and target tensors for the Transitions of
// ts at indices. Row i of the input holds the state of the Transition
// at indices[i], its frames oldest first. Row i of the target holds the
// frame following that state, or zeros if the Transition is terminal.
func (m *Minibatch) Assemble(ts Transitions, indices []int) (input,
	target *tensor.Dense, err error) {
	if len(indices) != m.batch {
		return nil, nil, fmt.Errorf("assemble: invalid number of indices"+
			"\n\twant(%v)\n\thave(%v)", m.batch, len(indices))
	}

	stackLen := m.depth * m.size * m.size
	frameLen := m.size * m.size
	inputData := make([]float64, m.batch*stackLen)
	targetData := make([]float64, m.batch*frameLen)

	for row, index := range indices {
		if index < 0 || index >= ts.Len() {
			return nil, nil, fmt.Errorf("assemble: index %v out of range "+
				"[0, %v)", index, ts.Len())
		}

		t := ts.At(index)
		if t.State.Len() != m.depth || t.State.FrameSize() != m.size {
			return nil, nil, fmt.Errorf("assemble: invalid state shape for "+
				"transition %v\n\twant(%v x %v)\n\thave(%v x %v)", index,
				m.depth, m.size, t.State.Len(), t.State.FrameSize())
		}
		t.State.Flatten(inputData[row*stackLen : (row+1)*stackLen])

		// Terminal rows keep their zero target
		if !t.Terminal() {
			t.Next.Flatten(targetData[row*frameLen : (row+1)*frameLen])
		}
	}

	input = tensor.New(
		tensor.WithShape(m.InputShape()...),
		tensor.WithBacking(inputData),
	)
	target = tensor.New(
		tensor.WithShape(m.TargetShape()...),
		tensor.WithBacking(targetData),
	)
	return input, target, nil
}
