package mlp

import "math"

// Activation is an element-wise activation function.
//
// Derivative receives the activated output y = Activate(x), not x, so that
// the update rule can work from the cached neuron outputs alone.
type Activation interface {
	Activate(x float64) float64
	Derivative(y float64) float64
	String() string
}

// Sigmoid is the logistic function σ(x) = 1 / (1 + exp(-x)).
//
// Outputs lie strictly in (0, 1) for finite inputs; its derivative expressed
// through the output is y * (1 - y).
type Sigmoid struct{}

// Activate applies σ(x).
func (Sigmoid) Activate(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Derivative returns y * (1 - y).
func (Sigmoid) Derivative(y float64) float64 {
	return y * (1 - y)
}

func (Sigmoid) String() string {
	return "sigmoid"
}

// Linear is the identity activation. It is mainly useful in tests, where it
// lets callers drive output activations to arbitrary (including non-positive)
// values.
type Linear struct{}

// Activate returns x unchanged.
func (Linear) Activate(x float64) float64 {
	return x
}

// Derivative is constant 1.
func (Linear) Derivative(float64) float64 {
	return 1
}

func (Linear) String() string {
	return "linear"
}

// activationLookup resolves activation names stored in snapshots.
var activationLookup = map[string]Activation{
	"sigmoid": Sigmoid{},
	"linear":  Linear{},
}

// ActivationByName returns the activation registered under name.
func ActivationByName(name string) (Activation, bool) {
	act, ok := activationLookup[name]
	return act, ok
}
