// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r1"
)

// Clip returns value limited to [min, max]
func Clip(value, min, max float64) float64 {
	return math.Max(math.Min(value, max), min)
}

// ClipInterval clips value to lie within interval
func ClipInterval(value float64, interval r1.Interval) float64 {
	return Clip(value, interval.Min, interval.Max)
}

// MaxSlice returns the maximum value in values and every index at which
// it occurs. MaxSlice panics if values is empty.
func MaxSlice(values []float64) (max float64, indices []int) {
	max = floats.Max(values)
	for i, v := range values {
		if v == max {
			indices = append(indices, i)
		}
	}
	return max, indices
}

// ArgMax returns the first index of the maximum value in values
func ArgMax(values []float64) int {
	return floats.MaxIdx(values)
}
