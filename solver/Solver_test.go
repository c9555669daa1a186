package solver

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	G "gorgonia.org/gorgonia"
)

func TestUnmarshalJSON(t *testing.T) {
	data := []byte(`{"Type": "Adam", "Config": {"StepSize": 0.001,
		"Epsilon": 1e-8, "Beta1": 0.9, "Beta2": 0.999, "Batch": 1}}`)

	var s Solver
	require.NoError(t, json.Unmarshal(data, &s))
	require.Equal(t, Adam, s.Type())
	require.IsType(t, &G.AdamSolver{}, s.Solver)

	config := s.Config().(*AdamConfig)
	require.Equal(t, 0.001, config.StepSize)
	require.Equal(t, 1, config.Batch)
}

func TestMarshalJSON(t *testing.T) {
	s, err := NewVanilla(0.01, 4, -1)
	require.NoError(t, err)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded Solver
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, Vanilla, decoded.Type())
	require.Equal(t, s.Config(), decoded.Config())
	require.IsType(t, &G.VanillaSolver{}, decoded.Solver)
}

func TestUnmarshalErrors(t *testing.T) {
	var s Solver
	require.Error(t, json.Unmarshal([]byte(`{"Type": "SGDR"}`), &s))

	// Missing step size fails validation
	require.Error(t, json.Unmarshal([]byte(`{"Type": "Vanilla",
		"Config": {"Batch": 1}}`), &s))
}

func TestValidate(t *testing.T) {
	_, err := NewDefaultAdam(0, 1)
	require.Error(t, err)

	_, err = NewDefaultAdam(0.1, 0)
	require.Error(t, err)

	_, err = NewRMSProp(0.1, 1e-8, 1.5, 1, -1)
	require.Error(t, err)

	s, err := NewDefaultRMSProp(0.1, 2)
	require.NoError(t, err)
	require.Equal(t, RMSProp, s.Type())
}

func TestClone(t *testing.T) {
	s, err := NewDefaultAdam(0.1, 1)
	require.NoError(t, err)

	clone := s.Clone()
	require.Equal(t, s.Config(), clone.Config())
	require.NotSame(t, s.Solver, clone.Solver)
}
