package dqn

import (
	"fmt"

	"github.com/samuelfneumann/nextframe/ale"
	"github.com/samuelfneumann/nextframe/expreplay"
)

// Config implements a configuration for a DQN agent
type Config struct {
	BatchSize int // Transitions per update, M
	Depth     int // Frames per stack, K
	FrameSize int // Frame edge length, S

	Actions []ale.Action // Legal actions
	Epsilon float64      // Behaviour policy epsilon

	// Experience replay parameters
	ExpReplay expreplay.Config

	// Update schedule. Updates start once the replay memory holds
	// MinReplay transitions and then happen every UpdateEvery
	// observed transitions.
	MinReplay   int
	UpdateEvery int
}

// Validate checks a Config to ensure it is a valid configuration of a
// DQN agent.
func (c Config) Validate() error {
	if c.BatchSize < 1 {
		return fmt.Errorf("validate: batch size must be > 0\n\thave(%v)",
			c.BatchSize)
	}
	if c.Depth < 1 {
		return fmt.Errorf("validate: depth must be > 0\n\thave(%v)", c.Depth)
	}
	if c.FrameSize < 1 {
		return fmt.Errorf("validate: frame size must be > 0\n\thave(%v)",
			c.FrameSize)
	}
	if len(c.Actions) == 0 {
		return fmt.Errorf("validate: no legal actions")
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("validate: epsilon must be in [0, 1]\n\thave(%v)",
			c.Epsilon)
	}
	if err := c.ExpReplay.Validate(); err != nil {
		return fmt.Errorf("validate: experience replay: %v", err)
	}
	if c.MinReplay < 1 || c.MinReplay > c.ExpReplay.Capacity {
		return fmt.Errorf("validate: minimum replay size must be in "+
			"[1, %v]\n\thave(%v)", c.ExpReplay.Capacity, c.MinReplay)
	}
	if c.UpdateEvery < 1 {
		return fmt.Errorf("validate: updates must happen at positive "+
			"intervals\n\twant(>0)\n\thave(%v)", c.UpdateEvery)
	}
	return nil
}
