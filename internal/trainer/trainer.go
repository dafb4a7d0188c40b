// Package trainer drives epochs of per-sample training over a dataset and
// measures classification accuracy.
package trainer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/twolayer/internal/dataset"
	"github.com/born-ml/twolayer/internal/mlp"
	"github.com/born-ml/twolayer/internal/parallel"
)

// ErrEmptyDataset is returned when there is nothing to train on.
var ErrEmptyDataset = errors.New("dataset is empty")

// Config holds configuration for a training run.
type Config struct {
	Epochs   int             // Passes over the training set (default: 1)
	Shuffle  bool            // Visit samples in a new random order each epoch
	Seed     uint64          // Seed for the shuffle order
	Parallel parallel.Config // Fan-out used by Evaluate
}

// DefaultConfig returns a single shuffled epoch with default parallelism.
func DefaultConfig() Config {
	return Config{
		Epochs:   1,
		Shuffle:  true,
		Seed:     1,
		Parallel: parallel.DefaultConfig(),
	}
}

// EpochStats describes one finished epoch.
type EpochStats struct {
	Epoch         int // 1-based
	TrainAccuracy float64
	Test          *Evaluation // nil when no test set was given
	Duration      time.Duration
}

// Summary describes a whole run.
type Summary struct {
	Epochs            []EpochStats
	MeanTrainAccuracy float64
	StdTrainAccuracy  float64 // 0 for a single epoch
}

// Evaluation is the result of classifying a dataset.
type Evaluation struct {
	Correct  int
	Total    int
	Accuracy float64
}

// Run trains net for cfg.Epochs passes over train, calling Train once per
// sample. After each epoch the test set, if any, is evaluated and report,
// if non-nil, is called. ctx is checked between samples.
func Run(ctx context.Context, net *mlp.Network, train, test *dataset.Dataset, cfg Config, report func(EpochStats)) (*Summary, error) {
	if train == nil || train.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if err := train.Validate(net.InputSize, net.OutputSize); err != nil {
		return nil, fmt.Errorf("invalid training set: %w", err)
	}
	if test != nil {
		if err := test.Validate(net.InputSize, net.OutputSize); err != nil {
			return nil, fmt.Errorf("invalid test set: %w", err)
		}
	}

	epochs := max(cfg.Epochs, 1)
	order := make([]int, train.Len())
	for i := range order {
		order[i] = i
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	summary := &Summary{Epochs: make([]EpochStats, 0, epochs)}
	accuracies := make([]float64, 0, epochs)

	for epoch := 1; epoch <= epochs; epoch++ {
		start := time.Now()
		if cfg.Shuffle {
			rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		}

		correct := 0
		for _, idx := range order {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
			s := train.Samples[idx]
			ok, err := net.Train(s.Input, s.Label)
			if err != nil {
				return summary, fmt.Errorf("epoch %d, sample %d: %w", epoch, idx, err)
			}
			if ok {
				correct++
			}
		}

		stats := EpochStats{
			Epoch:         epoch,
			TrainAccuracy: float64(correct) / float64(train.Len()),
		}
		if test != nil && test.Len() > 0 {
			ev, err := Evaluate(ctx, net, test, cfg.Parallel)
			if err != nil {
				return summary, fmt.Errorf("epoch %d: %w", epoch, err)
			}
			stats.Test = &ev
		}
		stats.Duration = time.Since(start)

		summary.Epochs = append(summary.Epochs, stats)
		accuracies = append(accuracies, stats.TrainAccuracy)
		if report != nil {
			report(stats)
		}
	}

	summary.MeanTrainAccuracy, summary.StdTrainAccuracy = stat.MeanStdDev(accuracies, nil)
	if len(accuracies) < 2 {
		summary.StdTrainAccuracy = 0
	}
	return summary, nil
}

// Evaluate classifies every sample of ds and reports the accuracy. Work is
// split with cfg; each chunk runs on its own clone of net, so net itself is
// not touched.
func Evaluate(ctx context.Context, net *mlp.Network, ds *dataset.Dataset, cfg parallel.Config) (Evaluation, error) {
	if ds == nil || ds.Len() == 0 {
		return Evaluation{}, ErrEmptyDataset
	}

	n := ds.Len()
	chunks := parallel.Chunks(n, cfg)
	correct := make([]float64, len(chunks))
	errs := make([]error, len(chunks))

	parallel.ForChunks(n, cfg, func(chunk int, r parallel.Range) {
		local := net.Clone()
		for i := r.Start; i < r.End; i++ {
			if err := ctx.Err(); err != nil {
				errs[chunk] = err
				return
			}
			s := ds.Samples[i]
			label, err := local.Infer(s.Input)
			if err != nil {
				errs[chunk] = fmt.Errorf("sample %d: %w", i, err)
				return
			}
			if label == s.Label {
				correct[chunk]++
			}
		}
	})

	for _, err := range errs {
		if err != nil {
			return Evaluation{}, err
		}
	}

	total := int(floats.Sum(correct))
	return Evaluation{
		Correct:  total,
		Total:    n,
		Accuracy: float64(total) / float64(n),
	}, nil
}
