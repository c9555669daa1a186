package timestep

import (
	"errors"
	"fmt"

	"github.com/samuelfneumann/nextframe/ale"
	"github.com/samuelfneumann/nextframe/frame"
)

// Reward bounds accepted by a Transition
const (
	MinReward = -1.0
	MaxReward = 1.0
)

// ErrRewardRange is returned when a Transition is constructed with a
// reward outside [MinReward, MaxReward], including NaN
var ErrRewardRange = errors.New("reward outside [-1, 1]")

// Transition is a single observed step: the stack of frames the agent
// acted on, the action it took, the clipped reward it received, and the
// frame that followed. Next is nil for terminal transitions.
//
// Frames are shared by pointer with the frame history and other
// transitions and are never mutated.
type Transition struct {
	State  frame.Stack
	Action ale.Action
	Reward float64
	Next   *frame.Frame
}

// NewTransition returns a new non-terminal Transition
func NewTransition(state frame.Stack, action ale.Action, reward float64,
	next *frame.Frame) (Transition, error) {
	if next == nil {
		return Transition{}, fmt.Errorf("newTransition: next frame must not "+
			"be nil, use NewTerminal for terminal transitions")
	}
	if next.Size() != state.FrameSize() {
		return Transition{}, fmt.Errorf("newTransition: next frame size "+
			"must match state frame size\n\twant(%v)\n\thave(%v)",
			state.FrameSize(), next.Size())
	}
	return newTransition("newTransition", state, action, reward, next)
}

// NewTerminal returns a new Transition which ends an episode
func NewTerminal(state frame.Stack, action ale.Action,
	reward float64) (Transition, error) {
	return newTransition("newTerminal", state, action, reward, nil)
}

func newTransition(op string, state frame.Stack, action ale.Action,
	reward float64, next *frame.Frame) (Transition, error) {
	if state.Len() == 0 {
		return Transition{}, fmt.Errorf("%v: empty state", op)
	}
	if !action.Valid() {
		return Transition{}, fmt.Errorf("%v: invalid action %d", op, action)
	}
	if !(reward >= MinReward && reward <= MaxReward) {
		return Transition{}, fmt.Errorf("%v: %w\n\thave(%v)", op,
			ErrRewardRange, reward)
	}

	return Transition{
		State:  state,
		Action: action,
		Reward: reward,
		Next:   next,
	}, nil
}

// Terminal returns whether the Transition ends an episode
func (t Transition) Terminal() bool {
	return t.Next == nil
}

func (t Transition) String() string {
	return fmt.Sprintf("Transition | Action: %v  |  Reward: %.2f  |  "+
		"Terminal: %v", t.Action, t.Reward, t.Terminal())
}
