package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/twolayer/internal/dataset"
)

// dataFlags are the dataset flags shared by train and infer.
type dataFlags struct {
	header  bool
	scale   float64
	samples int
}

func (f *dataFlags) register(fs *flag.FlagSet) {
	fs.BoolVar(&f.header, "header", false, "CSV files start with a header row")
	fs.Float64Var(&f.scale, "scale", 1, "Divide CSV inputs by this value (255 for pixels)")
	fs.IntVar(&f.samples, "samples", 0, "Max samples to load (0 = all)")
}

// load reads a CSV file, or an MNIST directory when path is a directory.
// For MNIST, train selects the train-* or t10k-* files.
func (f *dataFlags) load(path string, train bool) (*dataset.Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return dataset.LoadMNIST(path, train, f.samples)
	}
	return dataset.LoadCSV(path, dataset.CSVOptions{
		Header:     f.header,
		Scale:      f.scale,
		MaxSamples: f.samples,
	})
}

// parseVector parses "0.1,0.2,0.3".
func parseVector(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	v := make([]float64, len(fields))
	for i, field := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid vector element %d: %w", i, err)
		}
		v[i] = x
	}
	return v, nil
}
