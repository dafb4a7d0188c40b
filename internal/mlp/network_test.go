package mlp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestNetwork(t *testing.T, cfg Config, seed uint64) *Network {
	t.Helper()
	net, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, net.Initialize(rand.NewSource(seed)))
	return net
}

func TestNewValidatesConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero input", Config{InputSize: 0, HiddenSize: 3, OutputSize: 2, LearningRate: 0.1}},
		{"negative hidden", Config{InputSize: 4, HiddenSize: -1, OutputSize: 2, LearningRate: 0.1}},
		{"zero output", Config{InputSize: 4, HiddenSize: 3, OutputSize: 0, LearningRate: 0.1}},
		{"zero learning rate", Config{InputSize: 4, HiddenSize: 3, OutputSize: 2}},
		{"unknown rule", Config{InputSize: 4, HiddenSize: 3, OutputSize: 2, LearningRate: 0.1, Rule: UpdateRule(7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net, err := New(tt.cfg)
			assert.Nil(t, net)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNewIsUninitialized(t *testing.T) {
	net, err := New(Config{InputSize: 4, HiddenSize: 3, OutputSize: 2, LearningRate: 0.1})
	require.NoError(t, err)

	assert.False(t, net.Initialized())
	assert.Nil(t, net.Layers())
	assert.Nil(t, net.Outputs())
	assert.Equal(t, "sigmoid", net.Activation().String())
	assert.Equal(t, RuleSharedTarget, net.Rule())

	_, err = net.Train([]float64{1, 0, 0, 0}, 0)
	assert.ErrorIs(t, err, ErrUninitialized)
	_, err = net.Infer([]float64{1, 0, 0, 0})
	assert.ErrorIs(t, err, ErrUninitialized)
	assert.ErrorIs(t, net.Save(t.TempDir()+"/net.twl"), ErrUninitialized)
}

func TestInitializeLayout(t *testing.T) {
	net := newTestNetwork(t, Config{InputSize: 5, HiddenSize: 4, OutputSize: 3, LearningRate: 0.1}, 1)

	layers := net.Layers()
	require.Len(t, layers, 2)

	assert.Equal(t, RoleHidden, layers[0].Role)
	assert.Equal(t, 4, layers[0].Size())
	assert.Equal(t, 5, layers[0].FanIn())

	assert.Equal(t, RoleOutput, layers[1].Role)
	assert.Equal(t, 3, layers[1].Size())
	assert.Equal(t, 4, layers[1].FanIn())

	for _, l := range layers {
		for _, n := range l.Neurons {
			assert.Equal(t, len(n.Weights), len(n.LastInputs))
		}
	}
}

func TestInitializeSignPattern(t *testing.T) {
	net := newTestNetwork(t, Config{InputSize: 9, HiddenSize: 6, OutputSize: 4, LearningRate: 0.1}, 42)

	for li, l := range net.Layers() {
		for ni, n := range l.Neurons {
			for j, w := range n.Weights {
				if j%2 == 0 {
					assert.True(t, w <= 0 && w > -InitScale, "layer %d neuron %d weight %d = %v, want (-0.1, 0]", li, ni, j, w)
				} else {
					assert.True(t, w >= 0 && w < InitScale, "layer %d neuron %d weight %d = %v, want [0, 0.1)", li, ni, j, w)
				}
			}
			assert.True(t, n.Bias >= 0 && n.Bias < InitScale, "layer %d neuron %d bias = %v", li, ni, n.Bias)
		}
	}
}

func TestInitializeReproducible(t *testing.T) {
	cfg := Config{InputSize: 6, HiddenSize: 5, OutputSize: 3, LearningRate: 0.1}
	a := newTestNetwork(t, cfg, 7)
	b := newTestNetwork(t, cfg, 7)
	c := newTestNetwork(t, cfg, 8)

	assert.Equal(t, a.Layers(), b.Layers())
	assert.NotEqual(t, a.Layers(), c.Layers())
}

func TestInitializeReplacesLayers(t *testing.T) {
	net := newTestNetwork(t, Config{InputSize: 4, HiddenSize: 3, OutputSize: 2, LearningRate: 0.1}, 1)
	first := net.Layers()

	require.NoError(t, net.Initialize(rand.NewSource(2)))
	assert.NotSame(t, first[0], net.Layers()[0])
}

func TestCloneIsIndependent(t *testing.T) {
	net := newTestNetwork(t, Config{InputSize: 4, HiddenSize: 3, OutputSize: 2, LearningRate: 0.5}, 3)
	clone := net.Clone()
	require.Equal(t, net.Layers(), clone.Layers())

	_, err := clone.Train([]float64{1, 0, 0, 0}, 1)
	require.NoError(t, err)

	assert.NotEqual(t, net.Layers()[1].Neurons[1].Bias, clone.Layers()[1].Neurons[1].Bias)
	assert.Equal(t, []float64{0, 0, 0, 0}, net.Layers()[0].Neurons[0].LastInputs)
}

func TestRoleAndRuleStrings(t *testing.T) {
	for _, r := range []Role{RoleHidden, RoleOutput} {
		parsed, err := ParseRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
	_, err := ParseRole("input")
	assert.Error(t, err)

	for _, r := range []UpdateRule{RuleSharedTarget, RuleBackprop} {
		parsed, err := ParseUpdateRule(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
	_, err = ParseUpdateRule("adam")
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}
