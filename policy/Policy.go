// Package policy implements action selection from stacks of frames
package policy

import (
	"github.com/samuelfneumann/nextframe/ale"
	"github.com/samuelfneumann/nextframe/frame"
)

// Selector selects an action given the most recent stack of frames.
// Epsilon is the exploration rate for Selectors that explore.
type Selector interface {
	SelectAction(stack frame.Stack, epsilon float64) ale.Action
}
