package network

import (
	"fmt"

	"github.com/samuelfneumann/nextframe/initwfn"
	"github.com/samuelfneumann/nextframe/solver"
)

// DefaultScale maps 8-bit intensities into [0, 1]
const DefaultScale = 1.0 / 255.0

// Config describes a ForwardModel
type Config struct {
	Hidden      []int         // Sizes of hidden layers
	Activations []*Activation // Activation of each hidden layer

	// Output is the activation of the output layer, the identity if nil
	Output *Activation

	InitWFn *initwfn.InitWFn // Weight initialisation
	Solver  *solver.Solver   // Solver for learning weights

	// Scale multiplies intensities before they enter the network.
	// Predictions are divided by Scale on the way out.
	Scale float64
}

// Validate returns an error describing whether the Config is invalid
func (c Config) Validate() error {
	if len(c.Hidden) != len(c.Activations) {
		return fmt.Errorf("validate: invalid number of activations"+
			"\n\twant(%v)\n\thave(%v)", len(c.Hidden), len(c.Activations))
	}
	for i, size := range c.Hidden {
		if size < 1 {
			return fmt.Errorf("validate: hidden layer %v must have > 0 "+
				"units\n\thave(%v)", i, size)
		}
		if c.Activations[i] == nil {
			return fmt.Errorf("validate: hidden layer %v has no activation",
				i)
		}
	}
	if c.InitWFn == nil {
		return fmt.Errorf("validate: no weight initializer")
	}
	if c.Solver == nil {
		return fmt.Errorf("validate: no solver")
	}
	if c.Scale <= 0 {
		return fmt.Errorf("validate: scale must be > 0\n\thave(%v)", c.Scale)
	}
	return nil
}
