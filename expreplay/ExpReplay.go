// Package expreplay implements a bounded experience replay memory
package expreplay

import (
	"fmt"

	"github.com/gammazero/deque"

	"github.com/samuelfneumann/nextframe/timestep"
)

// Memory is a bounded store of Transitions. Once the Memory holds
// Capacity() Transitions, adding a Transition first evicts the single
// oldest one. Indices returned by Sample are positions in insertion
// order, with index 0 the oldest stored Transition.
type Memory struct {
	transitions *deque.Deque[timestep.Transition]
	sampler     Selector
	capacity    int
}

// New returns a new, empty Memory holding at most capacity Transitions
// and sampling indices with sampler
func New(capacity int, sampler Selector) (*Memory, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("new: capacity must be >= 1\n\thave(%v)",
			capacity)
	}
	if sampler == nil {
		return nil, fmt.Errorf("new: sampler must not be nil")
	}

	return &Memory{
		transitions: deque.New[timestep.Transition](),
		sampler:     sampler,
		capacity:    capacity,
	}, nil
}

// Add adds a Transition to the Memory, evicting the oldest Transition
// if the Memory is full
func (m *Memory) Add(t timestep.Transition) error {
	if t.State.Len() == 0 {
		return fmt.Errorf("add: transition has empty state")
	}
	if m.transitions.Len() > 0 {
		want := m.transitions.Front().State
		if t.State.Len() != want.Len() ||
			t.State.FrameSize() != want.FrameSize() {
			return fmt.Errorf("add: invalid state shape\n\twant(%v x %v)"+
				"\n\thave(%v x %v)", want.Len(), want.FrameSize(),
				t.State.Len(), t.State.FrameSize())
		}
	}

	if m.transitions.Len() == m.capacity {
		m.transitions.PopFront()
	}
	m.transitions.PushBack(t)
	return nil
}

// Sample returns n indices into the Memory, chosen by the Memory's
// Selector. Indices may repeat.
func (m *Memory) Sample(n int) ([]int, error) {
	if n < 1 {
		return nil, &ExpReplayError{Op: "sample", Err: errInvalidBatch}
	}
	if m.transitions.Len() == 0 {
		return nil, &ExpReplayError{Op: "sample", Err: errEmptyCache}
	}
	return m.sampler.Choose(n, m.transitions.Len()), nil
}

// At returns the i-th oldest Transition in the Memory
func (m *Memory) At(i int) timestep.Transition {
	return m.transitions.At(i)
}

// Len returns the current number of Transitions in the Memory
func (m *Memory) Len() int {
	return m.transitions.Len()
}

// Capacity returns the maximum number of Transitions in the Memory
func (m *Memory) Capacity() int {
	return m.capacity
}

// Full returns whether the next Add will evict a Transition
func (m *Memory) Full() bool {
	return m.transitions.Len() == m.capacity
}

// String returns the string representation of the Memory
func (m *Memory) String() string {
	return fmt.Sprintf("Memory | Transitions: %v  |  Capacity: %v",
		m.Len(), m.Capacity())
}
