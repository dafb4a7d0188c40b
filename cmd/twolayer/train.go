package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"golang.org/x/exp/rand"

	"github.com/born-ml/twolayer/internal/dataset"
	"github.com/born-ml/twolayer/internal/mlp"
	"github.com/born-ml/twolayer/internal/trainer"
)

func trainCommand(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(out)

	dataPath := fs.String("data", "", "Training data: CSV file (label,x1,...,xn) or MNIST directory")
	testPath := fs.String("test", "", "Test data (optional, same format as -data)")
	split := fs.Float64("split", 0, "Fraction of -data held out for testing when -test is not set")
	hidden := fs.Int("hidden", 100, "Hidden layer size")
	outputs := fs.Int("outputs", 0, "Output layer size (0 = number of classes in the data)")
	lr := fs.Float64("lr", 0.1, "Learning rate")
	epochs := fs.Int("epochs", 1, "Number of training epochs")
	seed := fs.Uint64("seed", 1, "Seed for weight initialization and shuffling")
	shuffle := fs.Bool("shuffle", true, "Shuffle the training set every epoch")
	rule := fs.String("rule", mlp.RuleSharedTarget.String(), "Update rule: shared-target or backprop")
	modelPath := fs.String("model", "model.twl", "Where to save the trained network")
	var data dataFlags
	data.register(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dataPath == "" {
		return errors.New("train: -data is required")
	}

	updateRule, err := mlp.ParseUpdateRule(*rule)
	if err != nil {
		return err
	}

	trainSet, err := data.load(*dataPath, true)
	if err != nil {
		return fmt.Errorf("failed to load training data: %w", err)
	}

	var testSet *dataset.Dataset
	switch {
	case *testPath != "":
		if testSet, err = data.load(*testPath, false); err != nil {
			return fmt.Errorf("failed to load test data: %w", err)
		}
	case *split > 0:
		trainSet.Shuffle(rand.NewSource(*seed))
		trainSet, testSet = trainSet.Split(*split)
	}
	fmt.Fprintf(out, "Loaded %d training samples with %d inputs\n", trainSet.Len(), trainSet.InputSize())
	if testSet != nil {
		fmt.Fprintf(out, "Loaded %d test samples\n", testSet.Len())
	}

	numOutputs := *outputs
	if numOutputs == 0 {
		numOutputs = trainSet.NumClasses()
		if testSet != nil {
			numOutputs = max(numOutputs, testSet.NumClasses())
		}
	}

	net, err := mlp.New(mlp.Config{
		InputSize:    trainSet.InputSize(),
		HiddenSize:   *hidden,
		OutputSize:   numOutputs,
		LearningRate: *lr,
		Rule:         updateRule,
	})
	if err != nil {
		return err
	}
	if err := net.Initialize(rand.NewSource(*seed)); err != nil {
		return err
	}
	fmt.Fprintf(out, "Network %d/%d/%d, lr %g, rule %s\n",
		net.InputSize, net.HiddenSize, net.OutputSize, net.LearningRate, net.Rule())

	cfg := trainer.DefaultConfig()
	cfg.Epochs = *epochs
	cfg.Shuffle = *shuffle
	cfg.Seed = *seed

	summary, err := trainer.Run(ctx, net, trainSet, testSet, cfg, func(s trainer.EpochStats) {
		if s.Test != nil {
			log.Printf("epoch %d: train accuracy %.2f%%, test accuracy %.2f%% (%d/%d), %v",
				s.Epoch, 100*s.TrainAccuracy, 100*s.Test.Accuracy, s.Test.Correct, s.Test.Total, s.Duration)
			return
		}
		log.Printf("epoch %d: train accuracy %.2f%%, %v", s.Epoch, 100*s.TrainAccuracy, s.Duration)
	})
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}
	fmt.Fprintf(out, "Mean train accuracy %.2f%% (stddev %.2f)\n",
		100*summary.MeanTrainAccuracy, 100*summary.StdTrainAccuracy)

	if err := net.Save(*modelPath); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved model to %s\n", *modelPath)
	return nil
}
