package timestep

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/nextframe/ale"
	"github.com/samuelfneumann/nextframe/frame"
)

func stackOf(t *testing.T, size, depth int) frame.Stack {
	frames := make([]*frame.Frame, depth)
	for i := range frames {
		frames[i] = frame.Zeros(size)
	}
	s, err := frame.NewStack(frames...)
	require.NoError(t, err)
	return s
}

func TestNewTransition(t *testing.T) {
	state := stackOf(t, 2, 3)
	next := frame.Zeros(2)

	tr, err := NewTransition(state, ale.Fire, 0.5, next)
	require.NoError(t, err)
	require.False(t, tr.Terminal())
	require.Same(t, next, tr.Next)
	require.Equal(t, ale.Fire, tr.Action)
	require.Equal(t, 0.5, tr.Reward)

	term, err := NewTerminal(state, ale.Noop, -1)
	require.NoError(t, err)
	require.True(t, term.Terminal())
}

func TestRewardBounds(t *testing.T) {
	state := stackOf(t, 2, 1)

	for _, r := range []float64{-1, 0, 1} {
		_, err := NewTransition(state, ale.Noop, r, frame.Zeros(2))
		require.NoError(t, err)
	}

	for _, r := range []float64{-1.01, 1.5, 100, math.NaN(), math.Inf(1)} {
		_, err := NewTransition(state, ale.Noop, r, frame.Zeros(2))
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrRewardRange))

		_, err = NewTerminal(state, ale.Noop, r)
		require.ErrorIs(t, err, ErrRewardRange)
	}
}

func TestTransitionValidation(t *testing.T) {
	state := stackOf(t, 2, 2)

	_, err := NewTransition(state, ale.Noop, 0, nil)
	require.Error(t, err)

	_, err = NewTransition(state, ale.Noop, 0, frame.Zeros(3))
	require.Error(t, err)

	_, err = NewTransition(state, ale.Action(42), 0, frame.Zeros(2))
	require.Error(t, err)

	_, err = NewTerminal(frame.Stack{}, ale.Noop, 0)
	require.Error(t, err)
}

func TestTimeStepType(t *testing.T) {
	ts := New(Last, 1, ale.NewScreen(2, 3, 0), 7)
	require.True(t, ts.Last())
	require.False(t, ts.First())
	require.Equal(t, Last, ts.StepType())
	require.Equal(t, "Last", ts.StepType().String())
}

func TestSetLast(t *testing.T) {
	ts := New(Mid, 0, ale.NewScreen(2, 3, 0), 3)
	require.True(t, ts.Mid())
	ts.SetLast()
	require.True(t, ts.Last())
}
