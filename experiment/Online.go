package experiment

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/samuelfneumann/nextframe/agent"
	"github.com/samuelfneumann/nextframe/ale"
	env "github.com/samuelfneumann/nextframe/environment"
	"github.com/samuelfneumann/nextframe/experiment/checkpointer"
	"github.com/samuelfneumann/nextframe/experiment/tracker"
	"github.com/samuelfneumann/nextframe/frame"
	"github.com/samuelfneumann/nextframe/preprocess"
	ts "github.com/samuelfneumann/nextframe/timestep"
)

// updater is an agent which counts its training updates
type updater interface {
	Updates() int
}

// Progress displays the progress of an experiment through its steps
type Progress interface {
	Increment()
	Close()
}

// Online is an Experiment that runs an agent online only. Each raw
// screen is preprocessed into a frame and pushed onto a frame history.
// Once the history is warm the agent selects actions from its stack and
// observes the transition to the following frame. Until then the first
// legal action is taken and no transitions are observed.
type Online struct {
	env.Environment
	agent.Agent
	preprocessor *preprocess.Preprocessor
	history      *frame.History

	maxSteps     int
	currentSteps int
	episodes     int

	trackers      []tracker.Tracker
	checkpointers []checkpointer.Checkpointer
	progress      Progress

	logger zerolog.Logger
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. Frames are stacked depth deep and the
// experiment runs for steps environment steps.
func NewOnline(e env.Environment, a agent.Agent, p *preprocess.Preprocessor,
	depth, steps int, logger zerolog.Logger,
	t ...tracker.Tracker) (*Online, error) {
	if len(e.LegalActions()) == 0 {
		return nil, fmt.Errorf("newOnline: environment has no legal actions")
	}
	if steps < 1 {
		return nil, fmt.Errorf("newOnline: steps must be > 0\n\thave(%v)",
			steps)
	}
	return &Online{
		Environment:  e,
		Agent:        a,
		preprocessor: p,
		history:      frame.NewHistory(depth),
		maxSteps:     steps,
		trackers:     t,
		logger:       logger.With().Str("component", "experiment").Logger(),
	}, nil
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// AddCheckpointer registers a checkpointer.Checkpointer which is
// consulted after every environment step
func (o *Online) AddCheckpointer(c checkpointer.Checkpointer) {
	o.checkpointers = append(o.checkpointers, c)
}

// SetProgress registers a Progress which is incremented on every
// environment step and closed when Run finishes
func (o *Online) SetProgress(p Progress) {
	o.progress = p
}

// Steps returns the number of environment steps taken so far
func (o *Online) Steps() int {
	return o.currentSteps
}

// Episodes returns the number of episodes completed so far
func (o *Online) Episodes() int {
	return o.episodes
}

// History returns the frame history of the current episode
func (o *Online) History() *frame.History {
	return o.history
}

// RunEpisode runs a single episode of the experiment
func (o *Online) RunEpisode() (bool, error) {
	step, err := o.Environment.Reset()
	if err != nil {
		return false, fmt.Errorf("runEpisode: could not reset: %v", err)
	}
	o.history.Reset()
	o.history.Push(o.preprocessor.Process(step.Observation))
	o.track(step)

	var episodeReturn float64
	for !step.Last() && o.currentSteps < o.maxSteps {
		o.currentSteps++
		if o.progress != nil {
			o.progress.Increment()
		}

		warm := o.history.Warm()
		var state frame.Stack
		var action ale.Action
		if warm {
			state = o.history.Stack()
			action = o.Agent.SelectAction(state)
		} else {
			action = o.Environment.LegalActions()[0]
		}

		step, _, err = o.Environment.Step(action)
		if err != nil {
			return false, fmt.Errorf("runEpisode: %v", err)
		}
		episodeReturn += step.Reward
		next := o.preprocessor.Process(step.Observation)
		o.track(step)

		if warm {
			if err := o.observe(state, action, step, next); err != nil {
				return false, fmt.Errorf("runEpisode: %v", err)
			}
		}
		o.history.Push(next)

		if err := o.checkpoint(); err != nil {
			return false, fmt.Errorf("runEpisode: %v", err)
		}
	}

	if step.Last() {
		o.episodes++
		o.Agent.EndEpisode()
		o.logger.Info().
			Int("episode", o.episodes).
			Int("length", step.Number).
			Float64("return", episodeReturn).
			Int("steps", o.currentSteps).
			Msg("Episode complete")
	}

	return o.currentSteps >= o.maxSteps, nil
}

// observe passes the transition from state to next to the agent
func (o *Online) observe(state frame.Stack, action ale.Action,
	step ts.TimeStep, next *frame.Frame) error {
	var t ts.Transition
	var err error
	if step.Last() {
		t, err = ts.NewTerminal(state, action, step.Reward)
	} else {
		t, err = ts.NewTransition(state, action, step.Reward, next)
	}
	if err != nil {
		return err
	}
	return o.Agent.Observe(t)
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run() error {
	for ended := false; !ended; {
		var err error
		if ended, err = o.RunEpisode(); err != nil {
			return fmt.Errorf("run: %v", err)
		}
	}
	if o.progress != nil {
		o.progress.Close()
	}
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %v", err)
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tr := range o.trackers {
		tr.Track(t)
	}
}

// checkpoint consults each Checkpointer with the agent's update count,
// or the number of environment steps if the agent does not count its
// updates
func (o *Online) checkpoint() error {
	progress := o.currentSteps
	if u, ok := o.Agent.(updater); ok {
		progress = u.Updates()
	}

	for _, c := range o.checkpointers {
		if err := c.Checkpoint(progress); err != nil {
			return err
		}
	}
	return nil
}
