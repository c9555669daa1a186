// Package dqn implements an agent which learns a forward model of its
// environment from replayed transitions: given a stack of frames, the
// model predicts the frame that follows.
package dqn

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorgonia.org/tensor"

	"github.com/samuelfneumann/nextframe/ale"
	"github.com/samuelfneumann/nextframe/expreplay"
	"github.com/samuelfneumann/nextframe/frame"
	"github.com/samuelfneumann/nextframe/network"
	"github.com/samuelfneumann/nextframe/policy"
	"github.com/samuelfneumann/nextframe/timestep"
)

// DQN stores observed transitions in a replay memory and periodically
// trains its Approximator on uniformly sampled minibatches. The
// training target of each transition is its next frame.
type DQN struct {
	model     network.Approximator
	memory    *expreplay.Memory
	minibatch *Minibatch

	actions   []ale.Action
	behaviour policy.Selector
	epsilon   float64

	minReplay   int
	updateEvery int
	observed    int
	updates     int

	eval   bool
	logger zerolog.Logger
}

// New creates and returns a new DQN agent training model. The seed
// seeds the behaviour policy.
func New(c Config, model network.Approximator, logger zerolog.Logger,
	seed uint64) (*DQN, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}
	if model == nil {
		return nil, fmt.Errorf("new: nil approximator")
	}

	minibatch := NewMinibatch(c.BatchSize, c.Depth, c.FrameSize)
	if model.BatchSize() != c.BatchSize {
		return nil, fmt.Errorf("new: approximator batch size does not "+
			"match\n\twant(%v)\n\thave(%v)", c.BatchSize, model.BatchSize())
	}
	if !model.InputShape().Eq(minibatch.InputShape()) {
		return nil, fmt.Errorf("new: approximator input shape does not "+
			"match\n\twant(%v)\n\thave(%v)", minibatch.InputShape(),
			model.InputShape())
	}
	if !model.TargetShape().Eq(minibatch.TargetShape()) {
		return nil, fmt.Errorf("new: approximator target shape does not "+
			"match\n\twant(%v)\n\thave(%v)", minibatch.TargetShape(),
			model.TargetShape())
	}

	memory, err := c.ExpReplay.Create()
	if err != nil {
		return nil, fmt.Errorf("new: could not create replay memory: %v", err)
	}

	behaviour, err := policy.NewRandom(c.Actions, seed)
	if err != nil {
		return nil, fmt.Errorf("new: could not create policy: %v", err)
	}

	return &DQN{
		model:       model,
		memory:      memory,
		minibatch:   minibatch,
		actions:     behaviour.Actions(),
		behaviour:   behaviour,
		epsilon:     c.Epsilon,
		minReplay:   c.MinReplay,
		updateEvery: c.UpdateEvery,
		logger:      logger.With().Str("component", "dqn").Logger(),
	}, nil
}

// AddTransition adds a transition to the replay memory
func (d *DQN) AddTransition(t timestep.Transition) error {
	if t.State.Len() != d.minibatch.depth ||
		t.State.FrameSize() != d.minibatch.size {
		return fmt.Errorf("addTransition: invalid state shape\n\twant(%v x "+
			"%v)\n\thave(%v x %v)", d.minibatch.depth, d.minibatch.size,
			t.State.Len(), t.State.FrameSize())
	}
	if err := d.memory.Add(t); err != nil {
		return fmt.Errorf("addTransition: %v", err)
	}
	return nil
}

// Update performs a single training step of the approximator on a
// minibatch sampled uniformly with replacement from the replay memory.
// An error is returned if the replay memory is empty.
func (d *DQN) Update() error {
	indices, err := d.memory.Sample(d.minibatch.batch)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	input, target, err := d.minibatch.Assemble(d.memory, indices)
	if err != nil {
		return fmt.Errorf("update: %v", err)
	}

	if err := d.model.TrainStep(input, target); err != nil {
		return fmt.Errorf("update: %v", err)
	}
	d.updates++

	d.logger.Debug().
		Int("batch_size", d.minibatch.batch).
		Int("memory_len", d.memory.Len()).
		Int("updates", d.updates).
		Msg("Trained on minibatch")
	return nil
}

// Predict returns the approximator's prediction of the frame following
// stack as size*size values in row-major order. The stack is placed in
// the first row of an otherwise zero input batch and the first row of
// the output is returned.
func (d *DQN) Predict(stack frame.Stack) ([]float64, error) {
	depth, size := d.minibatch.depth, d.minibatch.size
	if stack.Len() != depth || stack.FrameSize() != size {
		return nil, fmt.Errorf("predict: invalid stack shape\n\twant(%v x "+
			"%v)\n\thave(%v x %v)", depth, size, stack.Len(),
			stack.FrameSize())
	}

	shape := d.minibatch.InputShape()
	data := make([]float64, shape.TotalSize())
	stack.Flatten(data[:stack.DataLen()])
	input := tensor.New(tensor.WithShape(shape...), tensor.WithBacking(data))

	output, err := d.model.Predict(input)
	if err != nil {
		return nil, fmt.Errorf("predict: %v", err)
	}
	if !output.Shape().Eq(d.minibatch.TargetShape()) {
		return nil, fmt.Errorf("predict: invalid output shape\n\twant(%v)"+
			"\n\thave(%v)", d.minibatch.TargetShape(), output.Shape())
	}

	out, ok := output.Data().([]float64)
	if !ok {
		return nil, fmt.Errorf("predict: invalid output dtype %v",
			output.Dtype())
	}
	row := make([]float64, size*size)
	copy(row, out[:size*size])
	return row, nil
}

// RewardByAction returns the mean reward received after each legal
// action over the transitions in the replay memory, in the order of the
// legal actions. Actions never taken have a mean of 0.
func (d *DQN) RewardByAction() []float64 {
	index := make(map[ale.Action]int, len(d.actions))
	for i, a := range d.actions {
		index[a] = i
	}

	sums := make([]float64, len(d.actions))
	counts := make([]float64, len(d.actions))
	for i := 0; i < d.memory.Len(); i++ {
		t := d.memory.At(i)
		if j, ok := index[t.Action]; ok {
			sums[j] += t.Reward
			counts[j]++
		}
	}
	for j := range sums {
		if counts[j] > 0 {
			sums[j] /= counts[j]
		}
	}
	return sums
}

// Observe adds a transition to the replay memory and performs an update
// once the memory is large enough and an update is due
func (d *DQN) Observe(t timestep.Transition) error {
	if err := d.AddTransition(t); err != nil {
		return fmt.Errorf("observe: %v", err)
	}
	d.observed++

	if d.eval || d.memory.Len() < d.minReplay ||
		d.observed%d.updateEvery != 0 {
		return nil
	}
	return d.Step()
}

// Step implements the agent.Learner interface
func (d *DQN) Step() error {
	return d.Update()
}

// SelectAction returns an action selected by the behaviour policy
func (d *DQN) SelectAction(stack frame.Stack) ale.Action {
	epsilon := d.epsilon
	if d.eval {
		epsilon = 0
	}
	return d.behaviour.SelectAction(stack, epsilon)
}

// EndEpisode performs cleanup at the end of an episode
func (d *DQN) EndEpisode() {
	d.logger.Debug().
		Int("observed", d.observed).
		Int("updates", d.updates).
		Msg("Episode ended")
}

// Eval sets the agent into evaluation mode, in which no updates happen
func (d *DQN) Eval() {
	d.eval = true
}

// Train sets the agent into training mode
func (d *DQN) Train() {
	d.eval = false
}

// IsEval returns whether the agent is in evaluation mode
func (d *DQN) IsEval() bool {
	return d.eval
}

// Actions returns the legal actions of the agent
func (d *DQN) Actions() []ale.Action {
	out := make([]ale.Action, len(d.actions))
	copy(out, d.actions)
	return out
}

// Memory returns the agent's replay memory
func (d *DQN) Memory() *expreplay.Memory {
	return d.memory
}

// Model returns the agent's approximator
func (d *DQN) Model() network.Approximator {
	return d.model
}

// Updates returns the number of training steps taken
func (d *DQN) Updates() int {
	return d.updates
}
