package palette

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrayscaleBounds(t *testing.T) {
	require.Equal(t, uint8(255), Grayscale([3]int{255, 255, 255}))
	require.Equal(t, uint8(0), Grayscale([3]int{0, 0, 0}))
}

func TestGrayscaleWeighting(t *testing.T) {
	// 0.21 * 100 + 0.72 * 50 + 0.07 * 10 = 57.7
	require.Equal(t, uint8(57), Grayscale([3]int{100, 50, 10}))

	// Gray triples keep their intensity
	for _, v := range []int{0, 1, 74, 111, 142, 170, 236, 254, 255} {
		require.Equal(t, uint8(v), Grayscale([3]int{v, v, v}))
	}
}

func TestGrayscalePanicsOutOfRange(t *testing.T) {
	require.Panics(t, func() { Grayscale([3]int{256, 0, 0}) })
	require.Panics(t, func() { Grayscale([3]int{0, -1, 0}) })
	require.Panics(t, func() { Grayscale([3]int{0, 0, 300}) })
}

func TestRGB(t *testing.T) {
	require.Equal(t, [3]int{0, 0, 0}, RGB(0))
	require.Equal(t, [3]int{0x4a, 0x4a, 0x4a}, RGB(2))
	require.Equal(t, [3]int{0xfc, 0xe0, 0x70}, RGB(254))
	require.Equal(t, [3]int{0x48, 0x48, 0x00}, RGB(16))
}

func TestOddCodesDecodeToBlack(t *testing.T) {
	for code := 1; code < Size; code += 2 {
		require.Equal(t, [3]int{0, 0, 0}, RGB(uint8(code)), "code %v", code)
		require.Equal(t, uint8(0), Gray(uint8(code)), "code %v", code)
	}
}

func TestGrayMatchesGrayscale(t *testing.T) {
	for code := 0; code < Size; code++ {
		c := uint8(code)
		require.Equal(t, Grayscale(RGB(c)), Gray(c))
	}
	require.Equal(t, uint8(236), Gray(14))
}
