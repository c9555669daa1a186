package checkpointer

import (
	"fmt"

	"github.com/rs/zerolog"
)

// NStep implements checkpointing every N updates
type NStep struct {
	interval int
	object   Saver

	// Update count at the last save, so that an update count seen over
	// many environment steps is only saved once
	last int

	// filename returns the filename of the file to save the object in.
	//
	// If each checkpoint should be saved in a separate file with each
	// file having an incremented number as a suffix (e.g. file1.bin,
	// file2.bin, ..., fileK.bin), then use FilenameEnumerator. If
	// checkpoints from separate runs should never collide, use
	// RunEnumerator.
	filename func() string

	logger zerolog.Logger
}

// NewNStep returns a checkpointer that checkpoints every n updates
func NewNStep(n int, object Saver, filename func() string,
	logger zerolog.Logger) (*NStep, error) {
	if n < 1 {
		return nil, fmt.Errorf("newNStep: interval must be > 0\n\thave(%v)",
			n)
	}
	if object == nil || filename == nil {
		return nil, fmt.Errorf("newNStep: nil object or filename function")
	}
	return &NStep{
		interval: n,
		object:   object,
		filename: filename,
		logger:   logger.With().Str("component", "checkpointer").Logger(),
	}, nil
}

// Checkpoint saves the tracked object if updates is a positive
// multiple of the checkpointing interval not yet saved
func (n *NStep) Checkpoint(updates int) error {
	if updates <= 0 || updates == n.last || updates%n.interval != 0 {
		return nil
	}

	path := n.filename()
	if err := n.object.SaveState(path); err != nil {
		return fmt.Errorf("checkpoint: %v", err)
	}
	n.last = updates

	n.logger.Info().
		Int("updates", updates).
		Str("path", path).
		Msg("Saved checkpoint")
	return nil
}
