package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/born-ml/twolayer/internal/mlp"
	"github.com/born-ml/twolayer/internal/parallel"
	"github.com/born-ml/twolayer/internal/trainer"
)

func inferCommand(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("infer", flag.ContinueOnError)
	fs.SetOutput(out)

	modelPath := fs.String("model", "model.twl", "Saved network")
	dataPath := fs.String("data", "", "Labelled data to evaluate: CSV file or MNIST directory")
	vector := fs.String("input", "", "Single comma-separated input vector to classify")
	var data dataFlags
	data.register(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if (*dataPath == "") == (*vector == "") {
		return errors.New("infer: exactly one of -data or -input is required")
	}

	var net mlp.Network
	if err := net.Load(*modelPath); err != nil {
		return err
	}

	if *vector != "" {
		input, err := parseVector(*vector)
		if err != nil {
			return err
		}
		label, err := net.Infer(input)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "label %d\n", label)
		fmt.Fprintf(out, "activations %v\n", net.Outputs())
		return nil
	}

	ds, err := data.load(*dataPath, false)
	if err != nil {
		return fmt.Errorf("failed to load data: %w", err)
	}
	if err := ds.Validate(net.InputSize, net.OutputSize); err != nil {
		return err
	}

	ev, err := trainer.Evaluate(ctx, &net, ds, parallel.DefaultConfig())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "accuracy %.2f%% (%d/%d)\n", 100*ev.Accuracy, ev.Correct, ev.Total)
	return nil
}
