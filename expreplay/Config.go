package expreplay

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Config implements a specific configuration of a Memory
type Config struct {
	// Capacity is the maximum number of stored transitions
	Capacity int

	// Seed seeds the uniform sampler
	Seed uint64
}

// Validate returns an error describing whether the Config is invalid
func (c Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("validate: capacity must be >= 1\n\thave(%v)",
			c.Capacity)
	}
	return nil
}

// Create creates and returns the Memory with the specified Config.
// The Memory samples uniformly with replacement.
func (c Config) Create() (*Memory, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}
	return New(c.Capacity, NewUniformSelector(rand.NewSource(c.Seed)))
}
