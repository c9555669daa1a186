package floatutils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r1"
)

func TestClip(t *testing.T) {
	require.Equal(t, 1.0, Clip(3, -1, 1))
	require.Equal(t, -1.0, Clip(-3, -1, 1))
	require.Equal(t, 0.5, Clip(0.5, -1, 1))
	require.Equal(t, 2.0, ClipInterval(5, r1.Interval{Min: 0, Max: 2}))
}

func TestMaxSlice(t *testing.T) {
	max, indices := MaxSlice([]float64{1, 4, 2, 4})
	require.Equal(t, 4.0, max)
	require.Equal(t, []int{1, 3}, indices)
	require.Equal(t, 1, ArgMax([]float64{1, 4, 2, 4}))

	require.Panics(t, func() { MaxSlice(nil) })
}
