package mlp

import (
	"fmt"
	"io"

	"github.com/born-ml/twolayer/internal/serialization"
)

// ModelType identifies two-layer snapshots.
const ModelType = "TwoLayer"

func weightName(layer int) string { return fmt.Sprintf("layers.%d.weight", layer) }
func biasName(layer int) string   { return fmt.Sprintf("layers.%d.bias", layer) }

// Snapshot captures hyperparameters, update rule, activation and every
// weight and bias. Activation caches are not included.
func (net *Network) Snapshot() (*serialization.Snapshot, error) {
	if !net.Initialized() {
		return nil, ErrUninitialized
	}

	snap := &serialization.Snapshot{
		Header: serialization.Header{
			ModelType: ModelType,
			Hyperparameters: serialization.Hyperparameters{
				InputSize:    net.InputSize,
				HiddenSize:   net.HiddenSize,
				OutputSize:   net.OutputSize,
				LearningRate: net.LearningRate,
				UpdateRule:   net.rule.String(),
				Activation:   net.act.String(),
			},
		},
	}

	for i, l := range net.layers {
		rows, cols := l.Size(), l.FanIn()
		snap.Header.Layers = append(snap.Header.Layers, serialization.LayerMeta{
			Role:    l.Role.String(),
			Neurons: rows,
			Inputs:  cols,
		})

		weights := make([]float64, 0, rows*cols)
		biases := make([]float64, 0, rows)
		for _, n := range l.Neurons {
			weights = append(weights, n.Weights...)
			biases = append(biases, n.Bias)
		}
		snap.Tensors = append(snap.Tensors,
			serialization.Tensor{Name: weightName(i), Shape: []int{rows, cols}, Data: weights},
			serialization.Tensor{Name: biasName(i), Shape: []int{rows}, Data: biases},
		)
	}

	return snap, nil
}

// Restore replaces the layers, learning rate, sizes, update rule and
// activation with those of snap. The snapshot is checked completely first;
// on error the network is unchanged and the error matches ErrInvalidSnapshot.
func (net *Network) Restore(snap *serialization.Snapshot) error {
	if err := net.restore(snap); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return nil
}

func (net *Network) restore(snap *serialization.Snapshot) error {
	hp := snap.Header.Hyperparameters
	cfg := Config{
		InputSize:    hp.InputSize,
		HiddenSize:   hp.HiddenSize,
		OutputSize:   hp.OutputSize,
		LearningRate: hp.LearningRate,
	}

	var err error
	if cfg.Rule, err = ParseUpdateRule(hp.UpdateRule); err != nil {
		return err
	}
	cfg.Activation = Sigmoid{}
	if hp.Activation != "" {
		act, ok := ActivationByName(hp.Activation)
		if !ok {
			return fmt.Errorf("%w: unknown activation %q", ErrInvalidConfig, hp.Activation)
		}
		cfg.Activation = act
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := checkLayerSizes(cfg); err != nil {
		return err
	}

	if snap.Header.ModelType != "" && snap.Header.ModelType != ModelType {
		return fmt.Errorf("unexpected model type %q", snap.Header.ModelType)
	}
	if len(snap.Header.Layers) != 2 {
		return fmt.Errorf("expected 2 layers, got %d", len(snap.Header.Layers))
	}

	shapes := []struct {
		role          Role
		neurons, fans int
	}{
		{RoleHidden, cfg.HiddenSize, cfg.InputSize},
		{RoleOutput, cfg.OutputSize, cfg.HiddenSize},
	}

	layers := make([]*Layer, len(shapes))
	for i, want := range shapes {
		meta := snap.Header.Layers[i]
		role, err := ParseRole(meta.Role)
		if err != nil {
			return err
		}
		if role != want.role || meta.Neurons != want.neurons || meta.Inputs != want.fans {
			return fmt.Errorf("layer %d is %s %dx%d, expected %s %dx%d",
				i, meta.Role, meta.Neurons, meta.Inputs, want.role, want.neurons, want.fans)
		}

		weights, err := tensorValues(snap, weightName(i), want.neurons*want.fans)
		if err != nil {
			return err
		}
		biases, err := tensorValues(snap, biasName(i), want.neurons)
		if err != nil {
			return err
		}

		l := NewLayer(role, want.neurons, want.fans)
		for k, n := range l.Neurons {
			copy(n.Weights, weights[k*want.fans:(k+1)*want.fans])
			n.Bias = biases[k]
		}
		layers[i] = l
	}

	net.InputSize = cfg.InputSize
	net.HiddenSize = cfg.HiddenSize
	net.OutputSize = cfg.OutputSize
	net.LearningRate = cfg.LearningRate
	net.rule = cfg.Rule
	net.act = cfg.Activation
	net.layers = layers
	return nil
}

// checkLayerSizes bounds every weight matrix by serialization.MaxElements
// before anything is multiplied or allocated.
func checkLayerSizes(cfg Config) error {
	for _, size := range []int{cfg.InputSize, cfg.HiddenSize, cfg.OutputSize} {
		if size > serialization.MaxElements {
			return fmt.Errorf("%w: layer size %d exceeds %d", serialization.ErrOutOfBounds, size, serialization.MaxElements)
		}
	}
	// Each factor is at most MaxElements, so these products fit in 64 bits.
	if int64(cfg.HiddenSize)*int64(cfg.InputSize) > serialization.MaxElements ||
		int64(cfg.OutputSize)*int64(cfg.HiddenSize) > serialization.MaxElements {
		return fmt.Errorf("%w: %d/%d/%d network exceeds %d weights per layer",
			serialization.ErrOutOfBounds, cfg.InputSize, cfg.HiddenSize, cfg.OutputSize, serialization.MaxElements)
	}
	return nil
}

func tensorValues(snap *serialization.Snapshot, name string, want int) ([]float64, error) {
	t, ok := snap.Tensor(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", serialization.ErrTensorNotFound, name)
	}
	if len(t.Data) != want || t.NumElements() != want {
		return nil, fmt.Errorf("tensor %s has %d values (shape %v), expected %d", name, len(t.Data), t.Shape, want)
	}
	return t.Data, nil
}

// Save writes the network to path, creating or truncating the file.
func (net *Network) Save(path string) error {
	snap, err := net.Snapshot()
	if err != nil {
		return err
	}
	if err := serialization.WriteFile(path, snap); err != nil {
		return persistError("save "+path, err)
	}
	return nil
}

// Load replaces the network state with the snapshot stored at path.
//
// All three sizes are taken from the snapshot independently, so Load may be
// called on a network created with different hyperparameters.
func (net *Network) Load(path string) error {
	snap, err := serialization.ReadFile(path, serialization.ReaderOptions{})
	if err != nil {
		return persistError("load "+path, err)
	}
	if err := net.Restore(snap); err != nil {
		return persistError("load "+path, err)
	}
	return nil
}

// Encode writes the network snapshot to w.
func (net *Network) Encode(w io.Writer) error {
	snap, err := net.Snapshot()
	if err != nil {
		return err
	}
	if err := serialization.Encode(w, snap); err != nil {
		return persistError("encode", err)
	}
	return nil
}

// Decode replaces the network state with a snapshot read from r.
func (net *Network) Decode(r io.Reader) error {
	snap, err := serialization.Decode(r, serialization.ReaderOptions{})
	if err != nil {
		return persistError("decode", err)
	}
	if err := net.Restore(snap); err != nil {
		return persistError("decode", err)
	}
	return nil
}
