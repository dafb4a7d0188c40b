package mlp

// Train runs one sample through the network, updates weights and biases and
// classifies the activations of that forward pass.
//
// Returns true when the classified label equals label.
// Returns ErrUninitialized before Initialize/Load and an *InputError (matching
// ErrInvalidInput) when the input length or label is out of range; in both
// cases the network is left untouched.
func (net *Network) Train(input []float64, label int) (bool, error) {
	if err := net.check(input); err != nil {
		return false, err
	}
	if label < 0 || label >= net.OutputSize {
		return false, &InputError{Field: "label", Got: label, Want: net.OutputSize}
	}

	net.forward(input)
	net.backward(label)

	return Classify(net.output().Outputs()) == label, nil
}

// Infer runs the forward pass and returns the classified label. Weights and
// biases are not modified; activation caches are.
func (net *Network) Infer(input []float64) (int, error) {
	if err := net.check(input); err != nil {
		return 0, err
	}

	net.forward(input)
	return Classify(net.output().Outputs()), nil
}

func (net *Network) check(input []float64) error {
	if !net.Initialized() {
		return ErrUninitialized
	}
	if len(input) != net.InputSize {
		return &InputError{Field: "input", Got: len(input), Want: net.InputSize}
	}
	return nil
}
