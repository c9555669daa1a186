package tracker

import (
	"fmt"

	"github.com/samuelfneumann/nextframe/timestep"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment. An episode must finish for its length to be saved.
type EpisodeLength struct {
	episodeLengths []float64
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength Tracker which will save
// its data at the specified location filename
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{filename: filename}
}

// Track caches the episode length if t is the last timestep in its
// episode
func (e *EpisodeLength) Track(t timestep.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, float64(t.Number))
	}
}

// Lengths returns the episode lengths tracked so far
func (e *EpisodeLength) Lengths() []float64 {
	out := make([]float64, len(e.episodeLengths))
	copy(out, e.episodeLengths)
	return out
}

// Save saves the data tracked by the EpisodeLength Tracker to disk
func (e *EpisodeLength) Save() error {
	if err := save(e.filename, e.episodeLengths); err != nil {
		return fmt.Errorf("episodeLength: %v", err)
	}
	return nil
}
