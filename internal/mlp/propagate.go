package mlp

// forward runs the hidden layer on inputs and the output layer on the hidden
// activations.
func (net *Network) forward(inputs []float64) {
	hidden := net.hidden()
	hidden.forward(inputs, net.act)
	net.output().forward(hidden.Outputs(), net.act)
}

// backward applies the configured update rule for target. Layers are updated
// output first, then hidden, each neuron right after its delta is computed.
func (net *Network) backward(target int) {
	switch net.rule {
	case RuleBackprop:
		net.backpropagate(target)
	default:
		net.sharedTarget(target)
	}
}

// sharedTarget reuses the same one-hot target for every layer.
func (net *Network) sharedTarget(target int) {
	for i := len(net.layers) - 1; i >= 0; i-- {
		l := net.layers[i]
		for k, n := range l.Neurons {
			n.update(net.LearningRate, net.targetDelta(n, k == target))
		}
	}
}

// backpropagate computes hidden deltas from the output deltas and the output
// weights as they were before this call.
func (net *Network) backpropagate(target int) {
	out := net.output()
	hidden := net.hidden()

	errs := make([]float64, hidden.Size())
	for k, n := range out.Neurons {
		delta := net.targetDelta(n, k == target)
		for j, w := range n.Weights {
			errs[j] += w * delta
		}
		n.update(net.LearningRate, delta)
	}

	for j, n := range hidden.Neurons {
		n.update(net.LearningRate, errs[j]*net.act.Derivative(n.LastOutput))
	}
}

func (net *Network) targetDelta(n *Neuron, hot bool) float64 {
	desired := 0.0
	if hot {
		desired = 1
	}
	return (desired - n.LastOutput) * net.act.Derivative(n.LastOutput)
}
