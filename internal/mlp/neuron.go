package mlp

import "gonum.org/v1/gonum/floats"

// Neuron is a single unit: a weight per input, a bias and the values seen
// during the most recent forward pass.
//
// Invariant: len(Weights) == len(LastInputs).
type Neuron struct {
	Weights    []float64
	Bias       float64
	LastInputs []float64 // Overwritten on every forward pass; not persisted
	LastOutput float64   // Activated output of the most recent forward pass
}

// NewNeuron allocates a neuron with n zero weights.
func NewNeuron(n int) *Neuron {
	return &Neuron{
		Weights:    make([]float64, n),
		LastInputs: make([]float64, n),
	}
}

// fire records inputs and stores act(bias + Σ w·x) as the neuron output.
// The caller guarantees len(inputs) == len(n.Weights).
func (n *Neuron) fire(inputs []float64, act Activation) float64 {
	copy(n.LastInputs, inputs)
	n.LastOutput = act.Activate(n.Bias + floats.Dot(n.Weights, n.LastInputs))
	return n.LastOutput
}

// update applies w[j] += lr * delta * LastInputs[j] and bias += lr * delta.
func (n *Neuron) update(lr, delta float64) {
	floats.AddScaled(n.Weights, lr*delta, n.LastInputs)
	n.Bias += lr * delta
}

func (n *Neuron) clone() *Neuron {
	return &Neuron{
		Weights:    append([]float64(nil), n.Weights...),
		Bias:       n.Bias,
		LastInputs: append([]float64(nil), n.LastInputs...),
		LastOutput: n.LastOutput,
	}
}
