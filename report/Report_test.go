package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/nextframe/ale"
)

func TestActionValues(t *testing.T) {
	out, err := ActionValues([]float64{0.5, -12.25},
		[]ale.Action{ale.Noop, ale.DownRightFire})
	require.NoError(t, err)

	// NOOP vs 0.500000 gives width 9; DOWNRIGHTFIRE vs -12.250000
	// gives width 14
	want := "     NOOP" + " DOWNRIGHTFIRE" + "\n" +
		" 0.500000" + "    -12.250000" + "\n"
	require.Equal(t, want, out)
}

func TestActionValuesAligned(t *testing.T) {
	actions := ale.Full()
	values := make([]float64, len(actions))
	for i := range values {
		values[i] = float64(i) * 1000.125
	}

	out, err := ActionValues(values, actions)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "", lines[2])
	require.Equal(t, len(lines[0]), len(lines[1]))
	require.NotContains(t, out, ale.NamePrefixA)
}

func TestActionValuesErrors(t *testing.T) {
	_, err := ActionValues(nil, nil)
	require.Error(t, err)

	_, err = ActionValues([]float64{1}, []ale.Action{ale.Noop, ale.Fire})
	require.Error(t, err)

	_, err = Highlight([]float64{1, 2}, []ale.Action{ale.Noop})
	require.Error(t, err)
}

func TestHighlight(t *testing.T) {
	values := []float64{0.1, 0.9, 0.3}
	actions := []ale.Action{ale.Noop, ale.Fire, ale.Up}

	out, err := Highlight(values, actions)
	require.NoError(t, err)
	plain, err := ActionValues(values, actions)
	require.NoError(t, err)

	require.NotEqual(t, plain, out)
	require.Contains(t, out, "\x1b[")
	require.Contains(t, out, "FIRE")
	require.Contains(t, out, "0.900000")
}
