// Package solver wraps Gorgonia Solvers so that they can be stored in
// JSON configuration files.
package solver

import (
	"encoding/json"
	"fmt"

	G "gorgonia.org/gorgonia"
)

// Type describes different types of solvers that are available
type Type string

// Available solver types
const (
	Adam    Type = "Adam"
	Vanilla Type = "Vanilla"
	RMSProp Type = "RMSProp"
)

// Config implements a Gorgonia Solver configuration and can be used to
// create the Gorgonia Solver it describes.
type Config interface {
	// Create returns the Gorgonia Solver described by the Config
	Create() G.Solver

	// Type returns the type of Solver the Config describes
	Type() Type

	// Validate returns an error if the Config is invalid
	Validate() error
}

// configs maps each solver Type to a constructor of its empty Config
var configs = map[Type]func() Config{
	Adam:    func() Config { return &AdamConfig{} },
	Vanilla: func() Config { return &VanillaConfig{} },
	RMSProp: func() Config { return &RMSPropConfig{} },
}

// Solver wraps Gorgonia Solvers so that they can be JSON marshalled and
// unmarshalled. A Solver holds optimiser state, so each model needs its
// own Solver.
type Solver struct {
	G.Solver
	config Config
}

// newSolver returns a new Solver with the given configuration
func newSolver(c Config) (*Solver, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newSolver: %v", err)
	}
	return &Solver{Solver: c.Create(), config: c}, nil
}

// Type returns the type of the Solver
func (s *Solver) Type() Type {
	return s.config.Type()
}

// Config returns the configuration of the Solver
func (s *Solver) Config() Config {
	return s.config
}

// Clone returns a new Solver with the same configuration and fresh
// optimiser state
func (s *Solver) Clone() *Solver {
	return &Solver{Solver: s.config.Create(), config: s.config}
}

// String implements the fmt.Stringer interface
func (s *Solver) String() string {
	return fmt.Sprintf("{%v Solver: %+v}", s.Type(), s.config)
}

// jsonSolver is the serialised form of a Solver
type jsonSolver struct {
	Type   Type
	Config json.RawMessage
}

// MarshalJSON implements the json.Marshaler interface
func (s *Solver) MarshalJSON() ([]byte, error) {
	config, err := json.Marshal(s.config)
	if err != nil {
		return nil, fmt.Errorf("marshalJSON: could not marshal config: %v",
			err)
	}
	return json.Marshal(jsonSolver{Type: s.Type(), Config: config})
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (s *Solver) UnmarshalJSON(data []byte) error {
	var in jsonSolver
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("unmarshalJSON: %v", err)
	}

	newConfig, ok := configs[in.Type]
	if !ok {
		return fmt.Errorf("unmarshalJSON: unknown solver type %q", in.Type)
	}
	config := newConfig()
	if len(in.Config) > 0 {
		if err := json.Unmarshal(in.Config, config); err != nil {
			return fmt.Errorf("unmarshalJSON: could not unmarshal %v "+
				"config: %v", in.Type, err)
		}
	}

	solver, err := newSolver(config)
	if err != nil {
		return fmt.Errorf("unmarshalJSON: %v", err)
	}
	*s = *solver
	return nil
}
