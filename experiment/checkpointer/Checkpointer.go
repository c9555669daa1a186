// Package checkpointer implements periodic saving of training state
package checkpointer

// Saver is an object whose state can be saved to a file
type Saver interface {
	SaveState(path string) error
}

// Checkpointer checkpoints/saves objects based on the number of
// training updates performed so far
type Checkpointer interface {
	Checkpoint(updates int) error
}
