package checkpointer

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	paths []string
	err   error
}

func (r *recorder) SaveState(path string) error {
	if r.err != nil {
		return r.err
	}
	r.paths = append(r.paths, path)
	return nil
}

func TestNStepCadence(t *testing.T) {
	r := &recorder{}
	n, err := NewNStep(3, r, FilenameEnumerator(0, "ckpt", ".bin"),
		zerolog.Nop())
	require.NoError(t, err)

	for _, updates := range []int{0, 0, 1, 2, 3, 3, 3, 4, 5, 6, 7, 9} {
		require.NoError(t, n.Checkpoint(updates))
	}
	require.Equal(t, []string{"ckpt1.bin", "ckpt2.bin", "ckpt3.bin"}, r.paths)
}

func TestNStepError(t *testing.T) {
	r := &recorder{err: errors.New("disk full")}
	n, err := NewNStep(1, r, FilenameEnumerator(0, "ckpt", ".bin"),
		zerolog.Nop())
	require.NoError(t, err)
	require.Error(t, n.Checkpoint(1))

	_, err = NewNStep(0, r, FilenameEnumerator(0, "", ""), zerolog.Nop())
	require.Error(t, err)
	_, err = NewNStep(1, nil, FilenameEnumerator(0, "", ""), zerolog.Nop())
	require.Error(t, err)
}

func TestFilenameEnumerator(t *testing.T) {
	next := FilenameEnumerator(4, "dir/file", ".gob")
	require.Equal(t, "dir/file5.gob", next())
	require.Equal(t, "dir/file6.gob", next())
}

func TestRunEnumerator(t *testing.T) {
	a := RunEnumerator("out", "state", ".bin")
	b := RunEnumerator("out", "state", ".bin")

	first := a()
	require.Equal(t, "out", filepath.Dir(first))
	require.True(t, strings.HasPrefix(filepath.Base(first), "state-"))
	require.True(t, strings.HasSuffix(first, "-1.bin"))
	require.True(t, strings.HasSuffix(a(), "-2.bin"))

	// Separate runs never share names
	require.NotEqual(t, first, b())
}
