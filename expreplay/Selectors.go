package expreplay

import (
	"golang.org/x/exp/rand"
)

// Selector implements functionality for choosing which transitions
// should be sampled from a replay memory
type Selector interface {
	// Choose returns n indices in [0, length)
	Choose(n, length int) []int
}

// uniformSelector is a Selector which selects indices uniformly
// randomly with replacement, so the same index may be chosen more than
// once in a single batch
type uniformSelector struct {
	rng *rand.Rand
}

// NewUniformSelector returns a new Selector which selects indices
// uniformly randomly with replacement using randomness from src
func NewUniformSelector(src rand.Source) Selector {
	return &uniformSelector{rng: rand.New(src)}
}

// Choose implements the Selector interface
func (u *uniformSelector) Choose(n, length int) []int {
	selected := make([]int, n)
	for i := range selected {
		selected[i] = u.rng.Intn(length)
	}
	return selected
}
