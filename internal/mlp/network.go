package mlp

import "fmt"

// UpdateRule selects how hidden-layer deltas are computed during Train.
type UpdateRule int

const (
	// RuleSharedTarget computes the deltas of every layer from the same
	// one-hot target vector. This is the default and deviates from textbook
	// backpropagation; see the package documentation.
	RuleSharedTarget UpdateRule = iota
	// RuleBackprop propagates output deltas through the output weights.
	RuleBackprop
)

func (r UpdateRule) String() string {
	switch r {
	case RuleSharedTarget:
		return "shared-target"
	case RuleBackprop:
		return "backprop"
	default:
		return fmt.Sprintf("UpdateRule(%d)", int(r))
	}
}

// ParseUpdateRule is the inverse of UpdateRule.String.
func ParseUpdateRule(s string) (UpdateRule, error) {
	switch s {
	case "shared-target", "":
		return RuleSharedTarget, nil
	case "backprop":
		return RuleBackprop, nil
	default:
		return 0, fmt.Errorf("%w: unknown update rule %q", ErrInvalidConfig, s)
	}
}

// Config holds network hyperparameters.
type Config struct {
	InputSize    int        // Length of every input vector
	HiddenSize   int        // Neurons in the hidden layer
	OutputSize   int        // Neurons in the output layer (number of labels)
	LearningRate float64    // Step size of the update rule
	Rule         UpdateRule // Default: RuleSharedTarget
	Activation   Activation // Default: Sigmoid
}

// Validate reports whether every size and the learning rate are positive.
func (c Config) Validate() error {
	switch {
	case c.InputSize <= 0:
		return fmt.Errorf("%w: input size must be positive, got %d", ErrInvalidConfig, c.InputSize)
	case c.HiddenSize <= 0:
		return fmt.Errorf("%w: hidden size must be positive, got %d", ErrInvalidConfig, c.HiddenSize)
	case c.OutputSize <= 0:
		return fmt.Errorf("%w: output size must be positive, got %d", ErrInvalidConfig, c.OutputSize)
	case !(c.LearningRate > 0):
		return fmt.Errorf("%w: learning rate must be positive, got %v", ErrInvalidConfig, c.LearningRate)
	case c.Rule != RuleSharedTarget && c.Rule != RuleBackprop:
		return fmt.Errorf("%w: unknown update rule %d", ErrInvalidConfig, int(c.Rule))
	}
	return nil
}

// Network is a two-layer classifier.
//
// A Network is constructed without layers; call Initialize or Load before
// Train or Infer. It is not safe for concurrent use.
type Network struct {
	InputSize    int
	HiddenSize   int
	OutputSize   int
	LearningRate float64

	rule   UpdateRule
	act    Activation
	layers []*Layer // [hidden, output] once initialized
}

// New creates an uninitialized network.
//
// Parameters:
//   - cfg: Hyperparameters. A nil Activation defaults to Sigmoid.
//
// Returns ErrInvalidConfig if any size or the learning rate is not positive.
func New(cfg Config) (*Network, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Activation == nil {
		cfg.Activation = Sigmoid{}
	}

	return &Network{
		InputSize:    cfg.InputSize,
		HiddenSize:   cfg.HiddenSize,
		OutputSize:   cfg.OutputSize,
		LearningRate: cfg.LearningRate,
		rule:         cfg.Rule,
		act:          cfg.Activation,
	}, nil
}

// Initialized reports whether the network has its layers.
func (net *Network) Initialized() bool {
	return len(net.layers) == 2
}

// Rule returns the update rule used by Train.
func (net *Network) Rule() UpdateRule {
	return net.rule
}

// Activation returns the activation function of both layers.
func (net *Network) Activation() Activation {
	return net.act
}

// Layers returns the network layers, hidden first. The slice is nil before
// initialization. Callers must not change layer shapes.
func (net *Network) Layers() []*Layer {
	return net.layers
}

func (net *Network) hidden() *Layer { return net.layers[0] }
func (net *Network) output() *Layer { return net.layers[len(net.layers)-1] }

// Outputs returns a copy of the output activations of the last forward pass.
func (net *Network) Outputs() []float64 {
	if !net.Initialized() {
		return nil
	}
	return net.output().Outputs()
}

// Clone returns a deep copy of the network, including activation caches.
func (net *Network) Clone() *Network {
	c := *net
	if net.layers != nil {
		c.layers = make([]*Layer, len(net.layers))
		for i, l := range net.layers {
			c.layers[i] = l.clone()
		}
	}
	return &c
}
