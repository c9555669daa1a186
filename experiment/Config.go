package experiment

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/samuelfneumann/nextframe/agent/dqn"
	"github.com/samuelfneumann/nextframe/ale"
	"github.com/samuelfneumann/nextframe/environment/catch"
	"github.com/samuelfneumann/nextframe/environment/wrappers"
	"github.com/samuelfneumann/nextframe/expreplay"
	"github.com/samuelfneumann/nextframe/initwfn"
	"github.com/samuelfneumann/nextframe/network"
	"github.com/samuelfneumann/nextframe/preprocess"
	"github.com/samuelfneumann/nextframe/solver"
)

// Config represents a configuration of an experiment
type Config struct {
	Seed     uint64
	MaxSteps int // Environment steps to run for

	// Updates between checkpoints of the model state, 0 to disable
	CheckpointEvery int

	Env        catch.Config
	Preprocess preprocess.Config
	Agent      dqn.Config
	Network    network.Config
}

// DefaultConfig returns a Config learning 84x84 frames in stacks of 4
// with minibatches of 32 and a replay memory of 500000 transitions
func DefaultConfig() Config {
	s, err := solver.NewDefaultAdam(1e-4, 1)
	if err != nil {
		panic(fmt.Sprintf("defaultConfig: %v", err))
	}

	return Config{
		Seed:            1,
		MaxSteps:        1_000_000,
		CheckpointEvery: 10_000,
		Env:             catch.DefaultConfig(),
		Preprocess:      preprocess.DefaultConfig(),
		Agent: dqn.Config{
			BatchSize:   32,
			Depth:       4,
			FrameSize:   preprocess.DefaultFrameSize,
			Actions:     catch.Actions(),
			Epsilon:     0.1,
			ExpReplay:   expreplay.Config{Capacity: 500_000, Seed: 1},
			MinReplay:   1000,
			UpdateEvery: 4,
		},
		Network: network.Config{
			Hidden:      []int{512},
			Activations: []*network.Activation{network.ReLU()},
			Output:      network.Identity(),
			InitWFn:     initwfn.NewGlorotU(1.0),
			Solver:      s,
			Scale:       network.DefaultScale,
		},
	}
}

// LoadConfig reads a JSON Config from path
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: %v", err)
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not decode %v: %v",
			path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("loadConfig: %v", err)
	}
	return c, nil
}

// Save writes the Config to path as indented JSON
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("save: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save: %v", err)
	}
	return nil
}

// Validate returns an error describing whether the Config is invalid
func (c Config) Validate() error {
	if c.MaxSteps < 1 {
		return fmt.Errorf("validate: max steps must be > 0\n\thave(%v)",
			c.MaxSteps)
	}
	if c.CheckpointEvery < 0 {
		return fmt.Errorf("validate: checkpoint interval must be >= 0"+
			"\n\thave(%v)", c.CheckpointEvery)
	}
	if err := c.Env.Validate(); err != nil {
		return fmt.Errorf("validate: environment: %v", err)
	}
	if err := c.Preprocess.Validate(); err != nil {
		return fmt.Errorf("validate: preprocessing: %v", err)
	}
	if err := c.Agent.Validate(); err != nil {
		return fmt.Errorf("validate: agent: %v", err)
	}
	if err := c.Network.Validate(); err != nil {
		return fmt.Errorf("validate: network: %v", err)
	}
	if c.Preprocess.FrameSize != c.Agent.FrameSize {
		return fmt.Errorf("validate: preprocessed frame size must match "+
			"agent frame size\n\twant(%v)\n\thave(%v)", c.Agent.FrameSize,
			c.Preprocess.FrameSize)
	}
	return nil
}

// Setup holds the components of an experiment built from a Config
type Setup struct {
	Env          *wrappers.ClipReward
	Game         *catch.Catch
	Preprocessor *preprocess.Preprocessor
	Model        *network.ForwardModel
	Agent        *dqn.DQN
}

// Setup builds the environment, preprocessor, model, and agent that a
// Config describes
func (c Config) Setup(logger zerolog.Logger) (*Setup, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("setup: %v", err)
	}

	game, err := catch.New(c.Env, c.Seed)
	if err != nil {
		return nil, fmt.Errorf("setup: could not create environment: %v", err)
	}
	legal := make(map[ale.Action]bool)
	for _, a := range game.LegalActions() {
		legal[a] = true
	}
	for _, a := range c.Agent.Actions {
		if !legal[a] {
			return nil, fmt.Errorf("setup: action %v not legal in "+
				"environment", a)
		}
	}

	pre, err := c.Preprocess.Create()
	if err != nil {
		return nil, fmt.Errorf("setup: could not create preprocessor: %v",
			err)
	}

	model, err := network.NewForwardModel(c.Agent.BatchSize, c.Agent.Depth,
		c.Agent.FrameSize, c.Network)
	if err != nil {
		return nil, fmt.Errorf("setup: could not create model: %v", err)
	}

	agent, err := dqn.New(c.Agent, model, logger, c.Seed)
	if err != nil {
		return nil, fmt.Errorf("setup: could not create agent: %v", err)
	}

	return &Setup{
		Env:          wrappers.NewUnitClipReward(game),
		Game:         game,
		Preprocessor: pre,
		Model:        model,
		Agent:        agent,
	}, nil
}
