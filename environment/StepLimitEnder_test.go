package environment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/nextframe/ale"
	"github.com/samuelfneumann/nextframe/timestep"
)

func TestStepLimit(t *testing.T) {
	limit := NewStepLimit(3)
	screen := ale.NewScreen(2, 3, 0)

	ts := timestep.New(timestep.Mid, 0, screen, 2)
	require.False(t, limit.End(&ts))
	require.True(t, ts.Mid())

	ts = timestep.New(timestep.Mid, 0, screen, 3)
	require.True(t, limit.End(&ts))
	require.True(t, ts.Last())

	ts = timestep.New(timestep.Mid, 0, screen, 1000)
	require.False(t, NewStepLimit(0).End(&ts))
}
