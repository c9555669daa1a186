package network

import (
	"encoding/gob"
	"fmt"
	"os"

	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// checkpoint is the gob encoded form of a ForwardModel. Weight files
// leave Steps at zero.
type checkpoint struct {
	Weights []*tensor.Dense
	Steps   int
}

// LoadWeights implements the Approximator interface. Only the weights
// are replaced; the step count is left unchanged.
func (m *ForwardModel) LoadWeights(path string) error {
	c, err := readCheckpoint(path)
	if err != nil {
		return fmt.Errorf("loadWeights: %v", err)
	}
	if err := m.setWeights(c.Weights); err != nil {
		return fmt.Errorf("loadWeights: %v", err)
	}
	return nil
}

// SaveWeights saves the model weights to path in the format read by
// LoadWeights
func (m *ForwardModel) SaveWeights(path string) error {
	if err := writeCheckpoint(path, checkpoint{Weights: m.weights()}); err != nil {
		return fmt.Errorf("saveWeights: %v", err)
	}
	return nil
}

// SaveState implements the Approximator interface. The state holds the
// weights and the number of training steps taken. Solver statistics
// are not saved and restart from zero after RestoreState.
func (m *ForwardModel) SaveState(path string) error {
	c := checkpoint{Weights: m.weights(), Steps: m.steps}
	if err := writeCheckpoint(path, c); err != nil {
		return fmt.Errorf("saveState: %v", err)
	}
	return nil
}

// RestoreState implements the Approximator interface. The restore of
// the solver is partial: solver statistics such as Adam moments are not
// saved by SaveState and restart from zero.
func (m *ForwardModel) RestoreState(path string) error {
	c, err := readCheckpoint(path)
	if err != nil {
		return fmt.Errorf("restoreState: %v", err)
	}
	if err := m.setWeights(c.Weights); err != nil {
		return fmt.Errorf("restoreState: %v", err)
	}
	m.steps = c.Steps
	return nil
}

// weights returns copies of the learnable weights of the training graph
func (m *ForwardModel) weights() []*tensor.Dense {
	learnables := m.Learnables()
	weights := make([]*tensor.Dense, len(learnables))
	for i, node := range learnables {
		weights[i] = node.Value().(*tensor.Dense).Clone().(*tensor.Dense)
	}
	return weights
}

// setWeights copies weights into the training graph and syncs the
// prediction graph
func (m *ForwardModel) setWeights(weights []*tensor.Dense) error {
	learnables := m.Learnables()
	if len(weights) != len(learnables) {
		return fmt.Errorf("invalid number of weight tensors\n\twant(%v)"+
			"\n\thave(%v)", len(learnables), len(weights))
	}
	for i, node := range learnables {
		if !weights[i].Shape().Eq(node.Shape()) {
			return fmt.Errorf("invalid shape for %v\n\twant(%v)\n\thave(%v)",
				node.Name(), node.Shape(), weights[i].Shape())
		}
	}

	for i, node := range learnables {
		copyInto(node, weights[i])
	}
	return m.sync()
}

// copyInto copies the data of w into the value bound to node
func copyInto(node *G.Node, w *tensor.Dense) {
	dst := node.Value().Data().([]float64)
	copy(dst, w.Data().([]float64))
}

func writeCheckpoint(path string, c checkpoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := gob.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("could not encode %v: %v", path, err)
	}
	return f.Close()
}

func readCheckpoint(path string) (checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return checkpoint{}, err
	}
	defer f.Close()

	var c checkpoint
	if err := gob.NewDecoder(f).Decode(&c); err != nil {
		return checkpoint{}, fmt.Errorf("could not decode %v: %v", path, err)
	}
	return c, nil
}
