package trainer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/born-ml/twolayer/internal/dataset"
	"github.com/born-ml/twolayer/internal/mlp"
	"github.com/born-ml/twolayer/internal/parallel"
)

// separable returns n samples of two well separated classes.
func separable(n int) *dataset.Dataset {
	ds := &dataset.Dataset{}
	for i := 0; i < n; i++ {
		jitter := float64(i%5) * 0.02
		if i%2 == 0 {
			ds.Samples = append(ds.Samples, dataset.Sample{Input: []float64{1 - jitter, jitter}, Label: 0})
		} else {
			ds.Samples = append(ds.Samples, dataset.Sample{Input: []float64{jitter, 1 - jitter}, Label: 1})
		}
	}
	return ds
}

func newNetwork(t *testing.T, rule mlp.UpdateRule) *mlp.Network {
	t.Helper()
	net, err := mlp.New(mlp.Config{InputSize: 2, HiddenSize: 3, OutputSize: 2, LearningRate: 0.5, Rule: rule})
	require.NoError(t, err)
	require.NoError(t, net.Initialize(rand.NewSource(5)))
	return net
}

func TestRunLearnsSeparableData(t *testing.T) {
	for _, rule := range []mlp.UpdateRule{mlp.RuleSharedTarget, mlp.RuleBackprop} {
		t.Run(rule.String(), func(t *testing.T) {
			net := newNetwork(t, rule)
			cfg := DefaultConfig()
			cfg.Epochs = 60

			var reported []EpochStats
			summary, err := Run(context.Background(), net, separable(40), separable(20), cfg, func(s EpochStats) {
				reported = append(reported, s)
			})
			require.NoError(t, err)

			require.Len(t, reported, cfg.Epochs)
			assert.Equal(t, reported, summary.Epochs)
			for i, s := range reported {
				assert.Equal(t, i+1, s.Epoch)
				require.NotNil(t, s.Test)
				assert.Equal(t, 20, s.Test.Total)
			}

			last := reported[len(reported)-1]
			assert.Equal(t, 1.0, last.TrainAccuracy)
			assert.Equal(t, 1.0, last.Test.Accuracy)
			assert.Greater(t, summary.MeanTrainAccuracy, 0.5)
			assert.Greater(t, summary.StdTrainAccuracy, 0.0)
		})
	}
}

func TestRunIsReproducible(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Epochs = 3
	cfg.Seed = 11

	a, b := newNetwork(t, mlp.RuleSharedTarget), newNetwork(t, mlp.RuleSharedTarget)
	_, err := Run(context.Background(), a, separable(30), nil, cfg, nil)
	require.NoError(t, err)
	_, err = Run(context.Background(), b, separable(30), nil, cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, a.Layers(), b.Layers())
}

func TestRunDoesNotReorderDataset(t *testing.T) {
	train := separable(10)
	before := append([]dataset.Sample(nil), train.Samples...)

	_, err := Run(context.Background(), newNetwork(t, mlp.RuleSharedTarget), train, nil, DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, before, train.Samples)
}

func TestRunSingleEpochSummary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Epochs = 0

	summary, err := Run(context.Background(), newNetwork(t, mlp.RuleSharedTarget), separable(10), nil, cfg, nil)
	require.NoError(t, err)
	require.Len(t, summary.Epochs, 1)
	assert.Nil(t, summary.Epochs[0].Test)
	assert.Equal(t, summary.Epochs[0].TrainAccuracy, summary.MeanTrainAccuracy)
	assert.Equal(t, 0.0, summary.StdTrainAccuracy)
}

func TestRunRejectsBadData(t *testing.T) {
	net := newNetwork(t, mlp.RuleSharedTarget)
	ctx := context.Background()

	_, err := Run(ctx, net, &dataset.Dataset{}, nil, DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	wide := &dataset.Dataset{Samples: []dataset.Sample{{Input: []float64{1, 2, 3}, Label: 0}}}
	_, err = Run(ctx, net, wide, nil, DefaultConfig(), nil)
	assert.ErrorContains(t, err, "invalid training set")

	badLabel := &dataset.Dataset{Samples: []dataset.Sample{{Input: []float64{1, 2}, Label: 2}}}
	_, err = Run(ctx, net, separable(4), badLabel, DefaultConfig(), nil)
	assert.ErrorContains(t, err, "invalid test set")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	net := newNetwork(t, mlp.RuleSharedTarget)
	before := net.Clone()

	_, err := Run(ctx, net, separable(10), nil, DefaultConfig(), nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, before.Layers(), net.Layers())
}

func TestEvaluate(t *testing.T) {
	net := newNetwork(t, mlp.RuleSharedTarget)
	_, err := Run(context.Background(), net, separable(40), nil, Config{Epochs: 20, Shuffle: true, Seed: 2}, nil)
	require.NoError(t, err)

	test := separable(1000)
	before := net.Clone()

	seq, err := Evaluate(context.Background(), net, test, parallel.Config{Enabled: false})
	require.NoError(t, err)
	par, err := Evaluate(context.Background(), net, test, parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16})
	require.NoError(t, err)

	assert.Equal(t, seq, par)
	assert.Equal(t, 1000, par.Total)
	assert.InDelta(t, float64(par.Correct)/1000, par.Accuracy, 1e-12)
	assert.Equal(t, before.Layers(), net.Layers(), "Evaluate must work on clones")

	_, err = Evaluate(context.Background(), net, nil, parallel.DefaultConfig())
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestEvaluateUninitialized(t *testing.T) {
	net, err := mlp.New(mlp.Config{InputSize: 2, HiddenSize: 3, OutputSize: 2, LearningRate: 0.5})
	require.NoError(t, err)

	_, err = Evaluate(context.Background(), net, separable(4), parallel.DefaultConfig())
	assert.ErrorIs(t, err, mlp.ErrUninitialized)
}
