// Package experiment implements functionality for running an experiment
package experiment

import (
	"github.com/samuelfneumann/nextframe/experiment/checkpointer"
	"github.com/samuelfneumann/nextframe/experiment/tracker"
	ts "github.com/samuelfneumann/nextframe/timestep"
)

// Experiment outlines structs that can run experiments. Experiments
// track environment TimeSteps with Trackers, which cache data in RAM to
// be saved to disk later by Save(). Run() runs episodes until the
// maximum timestep limit is reached and RunEpisode() runs a single
// episode.
type Experiment interface {
	Run() error

	// RunEpisode returns whether the step limit has been reached
	RunEpisode() (bool, error)

	// Save saves all tracked data to disk
	Save() error

	// Register adds a new tracker.Tracker to the (possibly already
	// running) experiment
	Register(t tracker.Tracker)

	// AddCheckpointer adds a checkpointer.Checkpointer to the
	// experiment
	AddCheckpointer(c checkpointer.Checkpointer)

	track(ts.TimeStep)
	checkpoint() error
}
