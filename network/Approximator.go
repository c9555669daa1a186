// Package network implements the function approximators that learn to
// predict the next frame from a stack of frames
package network

import "gorgonia.org/tensor"

// Approximator is a trainable model mapping a batch of frame stacks to
// a batch of frames. Inputs have shape InputShape() = (M, K, S, S) and
// outputs and targets have shape TargetShape() = (M, S, S), where M is
// BatchSize().
type Approximator interface {
	// BatchSize returns the number of rows M in each input batch
	BatchSize() int

	// InputShape returns the shape of input batches
	InputShape() tensor.Shape

	// TargetShape returns the shape of target and output batches
	TargetShape() tensor.Shape

	// Predict returns the model output for the input batch
	Predict(input *tensor.Dense) (*tensor.Dense, error)

	// TrainStep performs a single optimisation step moving the model
	// output on input towards target
	TrainStep(input, target *tensor.Dense) error

	// LoadWeights replaces the model weights with those saved at path
	LoadWeights(path string) error

	// SaveState saves the model weights and training progress to path
	SaveState(path string) error

	// RestoreState restores weights and training progress saved by
	// SaveState
	RestoreState(path string) error
}
