package mlp

import "fmt"

// Role tags a layer with its position in the network.
type Role int

// Layer roles.
const (
	RoleHidden Role = iota
	RoleOutput
)

func (r Role) String() string {
	switch r {
	case RoleHidden:
		return "hidden"
	case RoleOutput:
		return "output"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// ParseRole is the inverse of Role.String.
func ParseRole(s string) (Role, error) {
	switch s {
	case "hidden":
		return RoleHidden, nil
	case "output":
		return RoleOutput, nil
	default:
		return 0, fmt.Errorf("unknown layer role %q", s)
	}
}

// Layer is an ordered collection of neurons. Neuron order is significant: the
// position of a neuron is the index of its activation in the layer output.
type Layer struct {
	Role    Role
	Neurons []*Neuron
}

// NewLayer allocates size neurons with fanIn zero weights each.
func NewLayer(role Role, size, fanIn int) *Layer {
	l := &Layer{Role: role, Neurons: make([]*Neuron, size)}
	for i := range l.Neurons {
		l.Neurons[i] = NewNeuron(fanIn)
	}
	return l
}

// Size returns the number of neurons.
func (l *Layer) Size() int {
	return len(l.Neurons)
}

// FanIn returns the number of weights per neuron.
func (l *Layer) FanIn() int {
	if len(l.Neurons) == 0 {
		return 0
	}
	return len(l.Neurons[0].Weights)
}

// Outputs returns a copy of the layer's last activations in neuron order.
func (l *Layer) Outputs() []float64 {
	out := make([]float64, len(l.Neurons))
	for i, n := range l.Neurons {
		out[i] = n.LastOutput
	}
	return out
}

func (l *Layer) forward(inputs []float64, act Activation) {
	for _, n := range l.Neurons {
		n.fire(inputs, act)
	}
}

func (l *Layer) clone() *Layer {
	c := &Layer{Role: l.Role, Neurons: make([]*Neuron, len(l.Neurons))}
	for i, n := range l.Neurons {
		c.Neurons[i] = n.clone()
	}
	return c
}
