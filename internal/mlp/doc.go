// Package mlp implements a two-layer feed-forward classifier.
//
// A Network owns exactly two layers, a hidden layer and an output layer, both
// using a logistic sigmoid activation by default. Samples are processed one at
// a time: Train runs a forward pass, applies an immediate weight update and
// classifies the activations of that pass; Infer runs the forward pass and
// classifies.
//
// # Update rule
//
// The default update rule (RuleSharedTarget) is NOT textbook backpropagation.
// Both layers compute their deltas from the same one-hot target vector:
//
//	desired_i = 1 if i == label else 0
//	delta_i   = (desired_i - y_i) * y_i * (1 - y_i)
//
// The hidden layer therefore never sees the error propagated back through the
// output weights. RuleBackprop selects canonical backpropagation, where
// hidden deltas are derived from the output deltas and output weights.
//
// # Concurrency
//
// A Network caches the inputs and outputs of every neuron during a forward
// pass, so it must not be used from more than one goroutine at a time. Use
// Clone to obtain independent copies for parallel inference.
//
// # Example
//
//	net, err := mlp.New(mlp.Config{
//	    InputSize:    784,
//	    HiddenSize:   100,
//	    OutputSize:   10,
//	    LearningRate: 0.1,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := net.Initialize(rand.NewSource(1)); err != nil {
//	    log.Fatal(err)
//	}
//	ok, err := net.Train(sample, label)
package mlp
