package network

import (
	"fmt"

	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// fcLayer implements a fully connected layer of a feed forward neural
// network
type fcLayer struct {
	weights *G.Node
	bias    *G.Node
	act     *Activation
}

// newFCLayer adds a new fully connected layer mapping in features to
// out features to the graph g. Weights are initialised with init and
// the bias with zeroes.
func newFCLayer(g *G.ExprGraph, index, in, out int, init G.InitWFn,
	act *Activation) *fcLayer {
	weights := G.NewMatrix(
		g,
		tensor.Float64,
		G.WithShape(in, out),
		G.WithName(fmt.Sprintf("L%dW", index)),
		G.WithInit(init),
	)
	bias := G.NewMatrix(
		g,
		tensor.Float64,
		G.WithShape(1, out),
		G.WithName(fmt.Sprintf("L%dB", index)),
		G.WithInit(G.Zeroes()),
	)
	return &fcLayer{weights: weights, bias: bias, act: act}
}

// fwd adds the forward pass of the fcLayer to the computational graph
func (f *fcLayer) fwd(x *G.Node) (*G.Node, error) {
	x, err := G.Mul(x, f.weights)
	if err != nil {
		return nil, err
	}

	// Broadcast the bias weights to all samples along the batch
	// dimension
	x, err = G.BroadcastAdd(x, f.bias, nil, []byte{0})
	if err != nil {
		return nil, err
	}

	if f.act == nil {
		return x, nil
	}
	return f.act.fwd(x)
}

// cloneTo adds a layer with the same shape and activation to the graph
// g. The weights of the new layer are zero until synced.
func (f *fcLayer) cloneTo(g *G.ExprGraph) *fcLayer {
	clone := func(n *G.Node) *G.Node {
		return G.NewMatrix(
			g,
			tensor.Float64,
			G.WithShape(n.Shape()...),
			G.WithName(n.Name()),
			G.WithInit(G.Zeroes()),
		)
	}
	return &fcLayer{
		weights: clone(f.weights),
		bias:    clone(f.bias),
		act:     f.act,
	}
}

// learnables returns the learnable nodes of the fcLayer
func (f *fcLayer) learnables() G.Nodes {
	return G.Nodes{f.weights, f.bias}
}
