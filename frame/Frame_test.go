package frame

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCopiesData(t *testing.T) {
	data := []uint8{1, 2, 3, 4}
	f, err := New(2, data)
	require.NoError(t, err)

	data[0] = 200
	require.Equal(t, uint8(1), f.At(0, 0))
	require.Equal(t, uint8(3), f.At(1, 0))

	pixels := f.Pixels()
	pixels[1] = 99
	require.Equal(t, uint8(2), f.At(0, 1))
}

func TestNewInvalidSize(t *testing.T) {
	_, err := New(2, []uint8{1, 2, 3})
	require.Error(t, err)

	_, err = New(0, nil)
	require.Error(t, err)
}

func TestGenerate(t *testing.T) {
	f := Generate(3, func(i, j int) uint8 { return uint8(10*i + j) })
	require.Equal(t, []uint8{0, 1, 2, 10, 11, 12, 20, 21, 22}, f.Pixels())
}

func TestDump(t *testing.T) {
	f, err := New(2, []uint8{0, 255, 16, 47})
	require.NoError(t, err)
	require.Equal(t, "0f\n12\n", f.Dump())

	require.Equal(t, "000\n000\n000\n", Zeros(3).Dump())
}

func TestMatrix(t *testing.T) {
	f, err := New(2, []uint8{1, 2, 3, 4})
	require.NoError(t, err)

	m := f.Matrix()
	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, 3.0, m.At(1, 0))
}

func TestSavePNG(t *testing.T) {
	f := Generate(4, func(i, j int) uint8 { return uint8(60 * i) })
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, f.SavePNG(path))

	img := f.Image()
	require.Equal(t, 4, img.Bounds().Dx())
	r, g, b, _ := img.At(0, 2).RGBA()
	require.Equal(t, r, g)
	require.Equal(t, g, b)
	require.Equal(t, uint32(120)*0x101, r)
}

func TestEqual(t *testing.T) {
	a := Generate(2, func(i, j int) uint8 { return uint8(i + j) })
	b := Generate(2, func(i, j int) uint8 { return uint8(i + j) })
	c := Zeros(2)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(Zeros(3)))
	require.False(t, a.Equal(nil))
}
