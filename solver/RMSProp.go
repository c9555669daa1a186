package solver

import (
	"fmt"

	G "gorgonia.org/gorgonia"
)

// RMSPropConfig implements a specific configuration of the RMSProp
// solver
type RMSPropConfig struct {
	StepSize float64
	Epsilon  float64
	Rho      float64
	Batch    int
	Clip     float64 // <= 0 if no clipping
}

// NewDefaultRMSProp returns a new RMSProp Solver with default
// hyperparameters
func NewDefaultRMSProp(stepSize float64, batchSize int) (*Solver, error) {
	return NewRMSProp(stepSize, 1e-8, 0.999, batchSize, -1.0)
}

// NewRMSProp returns a new RMSProp Solver
func NewRMSProp(stepSize, epsilon, rho float64, batchSize int,
	clip float64) (*Solver, error) {
	return newSolver(&RMSPropConfig{
		StepSize: stepSize,
		Epsilon:  epsilon,
		Rho:      rho,
		Batch:    batchSize,
		Clip:     clip,
	})
}

// Create returns a new Gorgonia RMSProp Solver as described by the
// RMSPropConfig
func (r *RMSPropConfig) Create() G.Solver {
	opts := []G.SolverOpt{
		G.WithLearnRate(r.StepSize),
		G.WithEps(r.Epsilon),
		G.WithRho(r.Rho),
		G.WithBatchSize(float64(r.Batch)),
	}
	if r.Clip > 0 {
		opts = append(opts, G.WithClip(r.Clip))
	}
	return G.NewRMSPropSolver(opts...)
}

// Type returns the type of Solver described by the config
func (r *RMSPropConfig) Type() Type {
	return RMSProp
}

// Validate returns an error if the config is invalid
func (r *RMSPropConfig) Validate() error {
	if r.StepSize <= 0 {
		return fmt.Errorf("validate: step size must be > 0\n\thave(%v)",
			r.StepSize)
	}
	if r.Rho <= 0 || r.Rho >= 1 {
		return fmt.Errorf("validate: rho must be in (0, 1)\n\thave(%v)", r.Rho)
	}
	if r.Batch < 1 {
		return fmt.Errorf("validate: batch must be >= 1\n\thave(%v)", r.Batch)
	}
	return nil
}
