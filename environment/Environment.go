// Package environment outlines the interfaces needed to implement
// concrete environments that emit raw screens
package environment

import (
	"github.com/samuelfneumann/nextframe/ale"
	"github.com/samuelfneumann/nextframe/timestep"
)

// Environment implements a simulated environment that produces a raw
// screen on every step
type Environment interface {
	// Reset starts a new episode and returns its first TimeStep
	Reset() (timestep.TimeStep, error)

	// Step takes an action and returns the resulting TimeStep and
	// whether the episode has ended
	Step(action ale.Action) (timestep.TimeStep, bool, error)

	// LegalActions returns the actions that may be passed to Step
	LegalActions() []ale.Action
}

// Ender determines when episodes should end
type Ender interface {
	// End returns whether the episode should end at t, marking t as
	// the last step of its episode if so
	End(t *timestep.TimeStep) bool
}
