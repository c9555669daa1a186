package solver

import (
	"fmt"

	G "gorgonia.org/gorgonia"
)

// VanillaConfig describes a configuration of the vanilla gradient
// descent solver.
type VanillaConfig struct {
	StepSize float64
	Batch    int
	Clip     float64 // <= 0 if no clipping
}

// NewVanilla returns a new Vanilla Solver
func NewVanilla(stepSize float64, batchSize int,
	clip float64) (*Solver, error) {
	return newSolver(&VanillaConfig{
		StepSize: stepSize,
		Batch:    batchSize,
		Clip:     clip,
	})
}

// Create returns a Gorgonia Vanilla Solver as described by the
// VanillaConfig
func (v *VanillaConfig) Create() G.Solver {
	opts := []G.SolverOpt{
		G.WithLearnRate(v.StepSize),
		G.WithBatchSize(float64(v.Batch)),
	}
	if v.Clip > 0 {
		opts = append(opts, G.WithClip(v.Clip))
	}
	return G.NewVanillaSolver(opts...)
}

// Type returns the type of Solver described by the config
func (v *VanillaConfig) Type() Type {
	return Vanilla
}

// Validate returns an error if the config is invalid
func (v *VanillaConfig) Validate() error {
	if v.StepSize <= 0 {
		return fmt.Errorf("validate: step size must be > 0\n\thave(%v)",
			v.StepSize)
	}
	if v.Batch < 1 {
		return fmt.Errorf("validate: batch must be >= 1\n\thave(%v)", v.Batch)
	}
	return nil
}
