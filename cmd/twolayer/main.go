// Package main provides the twolayer CLI: train a two-layer classifier on a
// CSV or MNIST dataset, save it, and classify with a saved model.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
)

const version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("twolayer: %v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(out, "twolayer %s\n", version)
		return nil
	case "train":
		return trainCommand(ctx, args[1:], out)
	case "infer":
		return inferCommand(ctx, args[1:], out)
	case "help", "-h", "--help":
		usage(out)
		return nil
	default:
		usage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(out io.Writer) {
	fmt.Fprintf(out, "twolayer %s - two-layer sigmoid classifier\n\n", version)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  train      Train a network and save it")
	fmt.Fprintln(out, "  infer      Classify a dataset or a single vector with a saved network")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Run 'twolayer <command> -h' for command flags.")
}
