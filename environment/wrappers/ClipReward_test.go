package wrappers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/nextframe/ale"
	"github.com/samuelfneumann/nextframe/timestep"
)

// scripted emits a fixed sequence of rewards
type scripted struct {
	rewards []float64
	i       int
}

func (s *scripted) Reset() (timestep.TimeStep, error) {
	s.i = 0
	return timestep.New(timestep.First, 0, ale.NewScreen(1, 2, 0), 0), nil
}

func (s *scripted) Step(a ale.Action) (timestep.TimeStep, bool, error) {
	if a == ale.Fire {
		return timestep.TimeStep{}, false, errors.New("illegal")
	}
	r := s.rewards[s.i]
	s.i++
	done := s.i == len(s.rewards)
	return timestep.New(timestep.Mid, r, ale.NewScreen(1, 2, 0), s.i), done, nil
}

func (s *scripted) LegalActions() []ale.Action {
	return []ale.Action{ale.Noop}
}

func TestClipReward(t *testing.T) {
	env := NewUnitClipReward(&scripted{rewards: []float64{10, -10, 0.5, -1, 0}})
	_, err := env.Reset()
	require.NoError(t, err)

	var got []float64
	for done := false; !done; {
		var step timestep.TimeStep
		step, done, err = env.Step(ale.Noop)
		require.NoError(t, err)
		got = append(got, step.Reward)
	}

	require.Equal(t, []float64{1, -1, 0.5, -1, 0}, got)
	require.Equal(t, -0.5, env.RawReturn())
	require.Equal(t, []ale.Action{ale.Noop}, env.LegalActions())

	_, err = env.Reset()
	require.NoError(t, err)
	require.Equal(t, 0.0, env.RawReturn())
}

func TestClipRewardPassesErrors(t *testing.T) {
	env := NewUnitClipReward(&scripted{rewards: []float64{1}})
	_, err := env.Reset()
	require.NoError(t, err)
	_, _, err = env.Step(ale.Fire)
	require.Error(t, err)
}

func TestNewClipRewardInterval(t *testing.T) {
	_, err := NewClipReward(&scripted{}, 1, -1)
	require.Error(t, err)

	env, err := NewClipReward(&scripted{}, -2, 3)
	require.NoError(t, err)
	require.Equal(t, -2.0, env.Interval().Min)
	require.Equal(t, 3.0, env.Interval().Max)
}
