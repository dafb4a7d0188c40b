package mlp

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// InitScale is the upper bound (exclusive) of the uniform distribution that
// weights and biases are drawn from.
const InitScale = 0.1

// Initialize allocates the hidden and output layers and randomizes them.
//
// Every weight is drawn from U[0, InitScale) and negated when its index in the
// weight vector is even, giving an alternating sign pattern (-, +, -, +, ...).
// Biases are drawn from the same distribution and are never negated.
//
// Parameters:
//   - src: Random source. A nil source uses the global generator; pass
//     rand.NewSource(seed) for reproducible networks.
//
// Initialize replaces any existing layers.
func (net *Network) Initialize(src rand.Source) error {
	if net.act == nil {
		return fmt.Errorf("%w: network was not created with New", ErrInvalidConfig)
	}

	dist := distuv.Uniform{Min: 0, Max: InitScale, Src: src}

	hidden := NewLayer(RoleHidden, net.HiddenSize, net.InputSize)
	randomize(hidden, dist)
	output := NewLayer(RoleOutput, net.OutputSize, net.HiddenSize)
	randomize(output, dist)

	net.layers = []*Layer{hidden, output}
	return nil
}

// randomize fills weights then bias of each neuron in order.
func randomize(l *Layer, dist distuv.Uniform) {
	for _, n := range l.Neurons {
		for j := range n.Weights {
			w := dist.Rand()
			if j%2 == 0 {
				w = -w
			}
			n.Weights[j] = w
			n.LastInputs[j] = 0
		}
		n.Bias = dist.Rand()
		n.LastOutput = 0
	}
}
