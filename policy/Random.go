package policy

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/nextframe/ale"
	"github.com/samuelfneumann/nextframe/frame"
)

// Random selects uniformly at random from a fixed set of legal actions.
// It ignores both the frames and epsilon and serves as a placeholder
// until a learned policy is available.
type Random struct {
	actions []ale.Action
	dist    distuv.Categorical
}

// NewRandom returns a new Random policy over actions, seeded with seed
func NewRandom(actions []ale.Action, seed uint64) (*Random, error) {
	if len(actions) == 0 {
		return nil, fmt.Errorf("newRandom: no legal actions")
	}
	for _, a := range actions {
		if !a.Valid() {
			return nil, fmt.Errorf("newRandom: invalid action %d", a)
		}
	}

	weights := make([]float64, len(actions))
	for i := range weights {
		weights[i] = 1.0
	}

	legal := make([]ale.Action, len(actions))
	copy(legal, actions)
	return &Random{
		actions: legal,
		dist:    distuv.NewCategorical(weights, rand.NewSource(seed)),
	}, nil
}

// SelectAction implements the Selector interface
func (r *Random) SelectAction(_ frame.Stack, _ float64) ale.Action {
	return r.actions[int(r.dist.Rand())]
}

// Actions returns the legal actions
func (r *Random) Actions() []ale.Action {
	actions := make([]ale.Action, len(r.actions))
	copy(actions, r.actions)
	return actions
}
