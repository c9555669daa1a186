// Package wrappers implements environment wrappers which alter the
// behaviour of an environment.Environment
package wrappers

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/nextframe/ale"
	"github.com/samuelfneumann/nextframe/environment"
	"github.com/samuelfneumann/nextframe/timestep"
	"github.com/samuelfneumann/nextframe/utils/floatutils"
)

// ClipReward wraps an environment and clips each reward to lie within
// an interval. Game scores are usually far outside the reward range
// that transitions accept, so environments are wrapped in a ClipReward
// before their rewards are stored.
//
// ClipReward itself implements the environment.Environment interface.
type ClipReward struct {
	environment.Environment
	interval r1.Interval

	// Unclipped return of the current episode
	raw float64
}

// NewClipReward returns a new ClipReward which clips rewards to
// [min, max]
func NewClipReward(env environment.Environment, min,
	max float64) (*ClipReward, error) {
	if min > max {
		return nil, fmt.Errorf("newClipReward: min must be <= max"+
			"\n\thave(%v > %v)", min, max)
	}
	return &ClipReward{
		Environment: env,
		interval:    r1.Interval{Min: min, Max: max},
	}, nil
}

// NewUnitClipReward returns a new ClipReward which clips rewards to
// [timestep.MinReward, timestep.MaxReward]
func NewUnitClipReward(env environment.Environment) *ClipReward {
	c, err := NewClipReward(env, timestep.MinReward, timestep.MaxReward)
	if err != nil {
		panic(err)
	}
	return c
}

// Reset resets the environment and the unclipped episodic return
func (c *ClipReward) Reset() (timestep.TimeStep, error) {
	c.raw = 0
	step, err := c.Environment.Reset()
	if err != nil {
		return step, err
	}
	step.Reward = floatutils.ClipInterval(step.Reward, c.interval)
	return step, nil
}

// Step takes one environmental step and clips the reward
func (c *ClipReward) Step(a ale.Action) (timestep.TimeStep, bool, error) {
	step, done, err := c.Environment.Step(a)
	if err != nil {
		return step, done, err
	}
	c.raw += step.Reward
	step.Reward = floatutils.ClipInterval(step.Reward, c.interval)
	return step, done, nil
}

// RawReturn returns the unclipped return of the current episode
func (c *ClipReward) RawReturn() float64 {
	return c.raw
}

// Interval returns the interval rewards are clipped to
func (c *ClipReward) Interval() r1.Interval {
	return c.interval
}
