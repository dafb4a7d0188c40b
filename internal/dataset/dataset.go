// Package dataset reads labelled feature vectors for the two-layer network.
//
// Two sources are supported: CSV files with one "label,x1,...,xn" row per
// sample, and the IDX binary format used by MNIST.
package dataset

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Sample is one labelled input vector.
type Sample struct {
	Input []float64
	Label int
}

// Dataset is an ordered collection of samples sharing one input width.
type Dataset struct {
	Samples []Sample
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.Samples) }

// InputSize returns the width of the input vectors, or 0 for an empty set.
func (d *Dataset) InputSize() int {
	if len(d.Samples) == 0 {
		return 0
	}
	return len(d.Samples[0].Input)
}

// NumClasses returns one more than the largest label.
func (d *Dataset) NumClasses() int {
	n := 0
	for _, s := range d.Samples {
		n = max(n, s.Label+1)
	}
	return n
}

// Validate checks that every sample has inputSize inputs and a label in
// [0, numClasses).
func (d *Dataset) Validate(inputSize, numClasses int) error {
	for i, s := range d.Samples {
		if len(s.Input) != inputSize {
			return fmt.Errorf("sample %d has %d inputs, expected %d", i, len(s.Input), inputSize)
		}
		if s.Label < 0 || s.Label >= numClasses {
			return fmt.Errorf("sample %d has label %d, expected [0, %d)", i, s.Label, numClasses)
		}
	}
	return nil
}

// Shuffle permutes the samples in place using src.
func (d *Dataset) Shuffle(src rand.Source) {
	rng := rand.New(src)
	rng.Shuffle(len(d.Samples), func(i, j int) {
		d.Samples[i], d.Samples[j] = d.Samples[j], d.Samples[i]
	})
}

// Split splits the dataset into train and test sets. fraction of the samples
// (rounded down) go to the test set, taken from the end. Both results share
// the sample slices with d.
func (d *Dataset) Split(fraction float64) (train, test *Dataset) {
	fraction = min(max(fraction, 0), 1)
	numTest := int(float64(len(d.Samples)) * fraction)
	numTrain := len(d.Samples) - numTest

	return &Dataset{Samples: d.Samples[:numTrain:numTrain]}, &Dataset{Samples: d.Samples[numTrain:]}
}
