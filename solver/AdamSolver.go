package solver

import (
	"fmt"

	G "gorgonia.org/gorgonia"
)

// AdamConfig describes a configuration of the Adam solver
type AdamConfig struct {
	StepSize float64
	Epsilon  float64 // Smoothing factor
	Beta1    float64
	Beta2    float64
	Batch    int
	Clip     float64 // <= 0 if no clipping
}

// NewDefaultAdam returns a new Adam Solver with default hyperparameters
func NewDefaultAdam(stepSize float64, batchSize int) (*Solver, error) {
	return NewAdam(stepSize, 1e-8, 0.9, 0.999, batchSize, -1)
}

// NewAdam returns a new Adam Solver
func NewAdam(stepSize, epsilon, beta1, beta2 float64, batchSize int,
	clip float64) (*Solver, error) {
	return newSolver(&AdamConfig{
		StepSize: stepSize,
		Epsilon:  epsilon,
		Beta1:    beta1,
		Beta2:    beta2,
		Batch:    batchSize,
		Clip:     clip,
	})
}

// Create returns a new Gorgonia Adam Solver as described by the
// AdamConfig
func (a *AdamConfig) Create() G.Solver {
	opts := []G.SolverOpt{
		G.WithLearnRate(a.StepSize),
		G.WithEps(a.Epsilon),
		G.WithBeta1(a.Beta1),
		G.WithBeta2(a.Beta2),
		G.WithBatchSize(float64(a.Batch)),
	}
	if a.Clip > 0 {
		opts = append(opts, G.WithClip(a.Clip))
	}
	return G.NewAdamSolver(opts...)
}

// Type returns the type of Solver described by the config
func (a *AdamConfig) Type() Type {
	return Adam
}

// Validate returns an error if the config is invalid
func (a *AdamConfig) Validate() error {
	if a.StepSize <= 0 {
		return fmt.Errorf("validate: step size must be > 0\n\thave(%v)",
			a.StepSize)
	}
	if a.Beta1 < 0 || a.Beta1 >= 1 || a.Beta2 < 0 || a.Beta2 >= 1 {
		return fmt.Errorf("validate: betas must be in [0, 1)\n\thave(%v, %v)",
			a.Beta1, a.Beta2)
	}
	if a.Batch < 1 {
		return fmt.Errorf("validate: batch must be >= 1\n\thave(%v)", a.Batch)
	}
	return nil
}
