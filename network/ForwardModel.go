package network

import (
	"fmt"

	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"

	"github.com/samuelfneumann/nextframe/solver"
)

// ForwardModel is a multi-layered perceptron Approximator. Each input
// row holds a stack of depth frames flattened into depth*size*size
// features and each output row holds size*size predicted intensities.
// The model is trained on the mean squared error between its output
// and the target frames.
//
// Two computational graphs are kept: a training graph, which computes
// the loss and its gradients, and a prediction graph whose weights are
// synced to the training graph after each step.
type ForwardModel struct {
	batch, depth, size int
	scale              float64

	trainGraph  *G.ExprGraph
	trainLayers []*fcLayer
	trainInput  *G.Node
	trainTarget *G.Node
	cost        *G.Node
	costVal     G.Value
	trainVM     G.VM
	solver      *solver.Solver

	predGraph  *G.ExprGraph
	predLayers []*fcLayer
	predInput  *G.Node
	prediction *G.Node
	predVal    G.Value
	predVM     G.VM

	steps int
}

// NewForwardModel returns a new ForwardModel taking batches of batch
// stacks of depth frames of edge length size
func NewForwardModel(batch, depth, size int, c Config) (*ForwardModel,
	error) {
	if batch < 1 || depth < 1 || size < 1 {
		return nil, fmt.Errorf("newForwardModel: batch, depth, and size "+
			"must be > 0\n\thave(%v, %v, %v)", batch, depth, size)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newForwardModel: %v", err)
	}

	features := depth * size * size
	outputs := size * size

	sizes := append(append([]int{}, c.Hidden...), outputs)
	acts := append(append([]*Activation{}, c.Activations...), c.Output)

	// Training graph
	g := G.NewGraph()
	input := G.NewMatrix(g, tensor.Float64, G.WithShape(batch, features),
		G.WithName("input"), G.WithInit(G.Zeroes()))
	target := G.NewMatrix(g, tensor.Float64, G.WithShape(batch, outputs),
		G.WithName("target"), G.WithInit(G.Zeroes()))

	init := c.InitWFn.InitWFn()
	layers := make([]*fcLayer, len(sizes))
	in := features
	for i, out := range sizes {
		layers[i] = newFCLayer(g, i, in, out, init, acts[i])
		in = out
	}

	pred, err := forward(input, layers)
	if err != nil {
		return nil, fmt.Errorf("newForwardModel: could not compute forward "+
			"pass: %v", err)
	}

	// Mean squared error between the predicted and target frames
	losses := G.Must(G.Sub(pred, target))
	losses = G.Must(G.Square(losses))
	cost := G.Must(G.Mean(losses))

	learnables := learnablesOf(layers)
	if _, err := G.Grad(cost, learnables...); err != nil {
		return nil, fmt.Errorf("newForwardModel: could not compute "+
			"gradient: %v", err)
	}

	m := &ForwardModel{
		batch:       batch,
		depth:       depth,
		size:        size,
		scale:       c.Scale,
		trainGraph:  g,
		trainLayers: layers,
		trainInput:  input,
		trainTarget: target,
		cost:        cost,
		solver:      c.Solver.Clone(),
	}
	G.Read(cost, &m.costVal)
	m.trainVM = G.NewTapeMachine(g, G.BindDualValues(learnables...))

	// Prediction graph
	m.predGraph = G.NewGraph()
	m.predInput = G.NewMatrix(m.predGraph, tensor.Float64,
		G.WithShape(batch, features), G.WithName("input"),
		G.WithInit(G.Zeroes()))
	m.predLayers = make([]*fcLayer, len(layers))
	for i := range layers {
		m.predLayers[i] = layers[i].cloneTo(m.predGraph)
	}
	m.prediction, err = forward(m.predInput, m.predLayers)
	if err != nil {
		return nil, fmt.Errorf("newForwardModel: could not compute "+
			"prediction: %v", err)
	}
	G.Read(m.prediction, &m.predVal)
	m.predVM = G.NewTapeMachine(m.predGraph)

	if err := m.sync(); err != nil {
		return nil, fmt.Errorf("newForwardModel: %v", err)
	}
	return m, nil
}

// forward adds the forward pass through layers to the graph of input
func forward(input *G.Node, layers []*fcLayer) (*G.Node, error) {
	pred := input
	var err error
	for i, l := range layers {
		if pred, err = l.fwd(pred); err != nil {
			return nil, fmt.Errorf("layer %v: %v", i, err)
		}
	}
	return pred, nil
}

func learnablesOf(layers []*fcLayer) G.Nodes {
	learnables := make(G.Nodes, 0, 2*len(layers))
	for _, l := range layers {
		learnables = append(learnables, l.learnables()...)
	}
	return learnables
}

// BatchSize implements the Approximator interface
func (m *ForwardModel) BatchSize() int {
	return m.batch
}

// InputShape implements the Approximator interface
func (m *ForwardModel) InputShape() tensor.Shape {
	return tensor.Shape{m.batch, m.depth, m.size, m.size}
}

// TargetShape implements the Approximator interface
func (m *ForwardModel) TargetShape() tensor.Shape {
	return tensor.Shape{m.batch, m.size, m.size}
}

// Steps returns the number of training steps taken
func (m *ForwardModel) Steps() int {
	return m.steps
}

// Loss returns the loss computed on the most recent training step
func (m *ForwardModel) Loss() float64 {
	if m.costVal == nil {
		return 0
	}
	return m.costVal.Data().(float64)
}

// Learnables returns the learnable nodes of the training graph
func (m *ForwardModel) Learnables() G.Nodes {
	return learnablesOf(m.trainLayers)
}

// Predict implements the Approximator interface
func (m *ForwardModel) Predict(input *tensor.Dense) (*tensor.Dense, error) {
	x, err := m.scaled(input, m.InputShape(), m.depth*m.size*m.size)
	if err != nil {
		return nil, fmt.Errorf("predict: %v", err)
	}
	if err := G.Let(m.predInput, x); err != nil {
		return nil, fmt.Errorf("predict: could not set input: %v", err)
	}

	if err := m.predVM.RunAll(); err != nil {
		return nil, fmt.Errorf("predict: %v", err)
	}
	defer m.predVM.Reset()

	out := m.predVal.Data().([]float64)
	backing := make([]float64, len(out))
	for i, v := range out {
		backing[i] = v / m.scale
	}
	return tensor.New(
		tensor.WithShape(m.TargetShape()...),
		tensor.WithBacking(backing),
	), nil
}

// TrainStep implements the Approximator interface
func (m *ForwardModel) TrainStep(input, target *tensor.Dense) error {
	x, err := m.scaled(input, m.InputShape(), m.depth*m.size*m.size)
	if err != nil {
		return fmt.Errorf("trainStep: input: %v", err)
	}
	y, err := m.scaled(target, m.TargetShape(), m.size*m.size)
	if err != nil {
		return fmt.Errorf("trainStep: target: %v", err)
	}

	if err := G.Let(m.trainInput, x); err != nil {
		return fmt.Errorf("trainStep: could not set input: %v", err)
	}
	if err := G.Let(m.trainTarget, y); err != nil {
		return fmt.Errorf("trainStep: could not set target: %v", err)
	}

	if err := m.trainVM.RunAll(); err != nil {
		return fmt.Errorf("trainStep: %v", err)
	}
	err = m.solver.Step(G.NodesToValueGrads(m.Learnables()))
	m.trainVM.Reset()
	if err != nil {
		return fmt.Errorf("trainStep: could not step solver: %v", err)
	}
	m.steps++

	return m.sync()
}

// scaled checks that t has the given shape and returns a scaled copy
// reshaped into a matrix with batch rows and cols columns
func (m *ForwardModel) scaled(t *tensor.Dense, want tensor.Shape,
	cols int) (*tensor.Dense, error) {
	if t == nil {
		return nil, fmt.Errorf("nil tensor")
	}
	if !t.Shape().Eq(want) {
		return nil, fmt.Errorf("invalid shape\n\twant(%v)\n\thave(%v)", want,
			t.Shape())
	}
	data, ok := t.Data().([]float64)
	if !ok {
		return nil, fmt.Errorf("invalid dtype %v", t.Dtype())
	}

	backing := make([]float64, len(data))
	for i, v := range data {
		backing[i] = v * m.scale
	}
	return tensor.New(
		tensor.WithShape(m.batch, cols),
		tensor.WithBacking(backing),
	), nil
}

// sync copies the weights of the training graph into the prediction
// graph
func (m *ForwardModel) sync() error {
	source := learnablesOf(m.trainLayers)
	dest := learnablesOf(m.predLayers)
	for i := range dest {
		weights := source[i].Value().(*tensor.Dense).Clone().(*tensor.Dense)
		if err := G.Let(dest[i], weights); err != nil {
			return fmt.Errorf("sync: could not set weights of %v: %v",
				dest[i].Name(), err)
		}
	}
	return nil
}
