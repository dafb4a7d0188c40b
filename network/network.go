// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package network

import (
	"github.com/born-ml/twolayer/internal/mlp"
)

// Network is a two-layer classifier.
type Network = mlp.Network

// Config holds the hyperparameters of a Network.
type Config = mlp.Config

// Layer is an ordered set of neurons sharing one input vector.
type Layer = mlp.Layer

// Neuron holds the weights, bias and last activation of one unit.
type Neuron = mlp.Neuron

// Role tells hidden and output layers apart.
type Role = mlp.Role

// Layer roles.
const (
	RoleHidden = mlp.RoleHidden
	RoleOutput = mlp.RoleOutput
)

// UpdateRule selects how Train adjusts weights.
type UpdateRule = mlp.UpdateRule

// Update rules.
const (
	RuleSharedTarget = mlp.RuleSharedTarget
	RuleBackprop     = mlp.RuleBackprop
)

// Activation is a neuron transfer function.
type Activation = mlp.Activation

// Sigmoid is the logistic function, the default activation.
type Sigmoid = mlp.Sigmoid

// Linear is the identity activation.
type Linear = mlp.Linear

// InitScale is the upper bound of the initial weight magnitudes.
const InitScale = mlp.InitScale

// New creates an uninitialized network. Call Initialize or Load before use.
//
// Example:
//
//	net, err := network.New(network.Config{
//	    InputSize:    4,
//	    HiddenSize:   3,
//	    OutputSize:   2,
//	    LearningRate: 0.5,
//	    Rule:         network.RuleBackprop,
//	})
func New(cfg Config) (*Network, error) {
	return mlp.New(cfg)
}

// Classify returns the index of the largest activation. Ties keep the lower
// index, and 0 is returned when no activation is positive.
func Classify(activations []float64) int {
	return mlp.Classify(activations)
}

// ParseUpdateRule parses "shared-target" or "backprop".
func ParseUpdateRule(s string) (UpdateRule, error) {
	return mlp.ParseUpdateRule(s)
}

// ActivationByName returns the activation called name.
func ActivationByName(name string) (Activation, bool) {
	return mlp.ActivationByName(name)
}
