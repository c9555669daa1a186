// Package agent defines an agent interface
package agent

import (
	"github.com/samuelfneumann/nextframe/ale"
	"github.com/samuelfneumann/nextframe/frame"
	"github.com/samuelfneumann/nextframe/timestep"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns from observed
// transitions, and a Policy which chooses actions from stacks of
// frames.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how weights are
// updated.
type Learner interface {
	// Step performs a single update to the learner
	Step() error

	// Observe records a transition and updates the learner if it is
	// due for an update
	Observe(t timestep.Transition) error

	// EndEpisode performs cleanup at the end of an episode
	EndEpisode()
}

// Policy represents a policy that an agent can have.
type Policy interface {
	SelectAction(stack frame.Stack) ale.Action
	Eval()        // Set policy to evaluation mode
	Train()       // Set policy to training mode
	IsEval() bool // Indicates if in evaluation mode
}
