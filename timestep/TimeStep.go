// Package timestep implements timesteps of the agent-environment interaction
// and the transitions stored for learning
package timestep

import (
	"fmt"

	"github.com/samuelfneumann/nextframe/ale"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// TimeStep packages together a single timestep in an environment. The
// Observation is the raw screen the emulator produced on this step.
type TimeStep struct {
	stepType    StepType
	Reward      float64
	Observation ale.Screen
	Number      int
}

// New returns a new TimeStep
func New(t StepType, r float64, o ale.Screen, n int) TimeStep {
	return TimeStep{t, r, o, n}
}

// StepType returns the type of the TimeStep
func (t TimeStep) StepType() StepType {
	return t.stepType
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.stepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.stepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.stepType == Last
}

// SetLast marks the TimeStep as the last step of its episode
func (t *TimeStep) SetLast() {
	t.stepType = Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Screen: %vx%v  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.stepType, t.Reward, t.Observation.Width,
		t.Observation.Height, t.Number)
}
