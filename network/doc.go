// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package network provides a two-layer sigmoid classifier trained one sample
// at a time.
//
// # Overview
//
// A Network has a hidden layer and an output layer of fully connected
// neurons. Each neuron computes
//
//	y = activation(bias + sum(weights[j] * inputs[j]))
//
// The predicted class is the index of the largest output activation.
//
// # Basic Usage
//
//	import (
//	    "golang.org/x/exp/rand"
//
//	    "github.com/born-ml/twolayer/network"
//	)
//
//	func main() {
//	    net, err := network.New(network.Config{
//	        InputSize:    784,
//	        HiddenSize:   100,
//	        OutputSize:   10,
//	        LearningRate: 0.1,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := net.Initialize(rand.NewSource(42)); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    correct, err := net.Train(image, label)
//	    ...
//	    predicted, err := net.Infer(image)
//	    ...
//	    if err := net.Save("model.twl"); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Update Rules
//
// RuleSharedTarget (the default) nudges every neuron of both layers toward
// the one-hot target of the output layer: the neuron whose index equals the
// label is pushed toward 1, every other neuron toward 0. Hidden neurons do
// not receive back-propagated error. This is not textbook back-propagation.
//
// RuleBackprop applies canonical back-propagation of the squared error.
//
// # Persistence
//
// Save and Load use the .twl snapshot format: a fixed binary header with a
// SHA-256 checksum, a JSON header with hyperparameters and tensor locations,
// and float64 weights. Load adopts the sizes, learning rate, update rule and
// activation stored in the file.
package network
