package progressbar

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedrawsOnlyWhenFilledChanges(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, 4, 8)

	// The first increment draws the empty bar, then 8 increments over 4
	// cells redraw every second increment
	for i := 0; i < 8; i++ {
		p.Increment()
	}
	require.Equal(t, 5, strings.Count(buf.String(), "\r"))
	require.Contains(t, buf.String(), "|████| [100.00%")

	// Progress saturates at max
	p.Increment()
	require.Equal(t, 8, p.Progress())
	require.Equal(t, 5, strings.Count(buf.String(), "\r"))
}

func TestClose(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, 10, 100)
	p.Increment()
	p.Close()
	require.True(t, strings.HasSuffix(buf.String(), "\n"))

	n := buf.Len()
	p.Increment()
	p.Display()
	p.Close()
	require.Equal(t, n, buf.Len())
	require.Equal(t, 1, p.Progress())
}

func TestNewPanics(t *testing.T) {
	require.Panics(t, func() { New(&bytes.Buffer{}, 0, 1) })
	require.Panics(t, func() { New(&bytes.Buffer{}, 1, 0) })
}
