// Package initwfn wraps Gorgonia weight initialisers so that they can
// be stored in JSON configuration files.
package initwfn

import (
	"encoding/json"
	"fmt"

	G "gorgonia.org/gorgonia"
)

// Type describes different types of InitWFn that are available.
type Type string

// Available InitWFn types
const (
	GlorotU  Type = "GlorotU"
	GlorotN  Type = "GlorotN"
	HeU      Type = "HeU"
	HeN      Type = "HeN"
	Zeroes   Type = "Zeroes"
	Constant Type = "Constant"
	Uniform  Type = "Uniform"
	Gaussian Type = "Gaussian"
)

// Config implements a Gorgonia InitWFn configuration and can be used to
// create the described Gorgonia InitWFn's.
type Config interface {
	// Create returns the Gorgonia InitWFn that the Config describes
	Create() G.InitWFn

	// Type returns the type of Gorgonia InitWFn that is returned
	Type() Type
}

var configs = map[Type]func() Config{
	GlorotU:  func() Config { return &GlorotUConfig{} },
	GlorotN:  func() Config { return &GlorotNConfig{} },
	HeU:      func() Config { return &HeUConfig{} },
	HeN:      func() Config { return &HeNConfig{} },
	Zeroes:   func() Config { return &ZeroesConfig{} },
	Constant: func() Config { return &ConstantConfig{} },
	Uniform:  func() Config { return &UniformConfig{} },
	Gaussian: func() Config { return &GaussianConfig{} },
}

// InitWFn wraps Gorgonia InitWFn so that they can be JSON marshalled and
// unmarshalled.
type InitWFn struct {
	initWFn G.InitWFn
	config  Config
}

// newInitWFn returns a new InitWFn
func newInitWFn(c Config) *InitWFn {
	return &InitWFn{initWFn: c.Create(), config: c}
}

// InitWFn returns the wrapped Gorgonia InitWFn
func (i *InitWFn) InitWFn() G.InitWFn {
	return i.initWFn
}

// Type returns the type of the weight initializer
func (i *InitWFn) Type() Type {
	return i.config.Type()
}

// String implements the fmt.Stringer interface
func (i *InitWFn) String() string {
	return fmt.Sprintf("{%v InitWFn: %+v}", i.Type(), i.config)
}

type jsonInitWFn struct {
	Type   Type
	Config json.RawMessage `json:",omitempty"`
}

// MarshalJSON implements the json.Marshaler interface
func (i *InitWFn) MarshalJSON() ([]byte, error) {
	config, err := json.Marshal(i.config)
	if err != nil {
		return nil, fmt.Errorf("marshalJSON: could not marshal config: %v",
			err)
	}
	return json.Marshal(jsonInitWFn{Type: i.Type(), Config: config})
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (i *InitWFn) UnmarshalJSON(data []byte) error {
	var in jsonInitWFn
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("unmarshalJSON: %v", err)
	}

	newConfig, ok := configs[in.Type]
	if !ok {
		return fmt.Errorf("unmarshalJSON: unknown weight initializer %q",
			in.Type)
	}
	config := newConfig()
	if len(in.Config) > 0 {
		if err := json.Unmarshal(in.Config, config); err != nil {
			return fmt.Errorf("unmarshalJSON: could not unmarshal %v "+
				"config: %v", in.Type, err)
		}
	}

	*i = *newInitWFn(config)
	return nil
}
