// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package network

import (
	"github.com/born-ml/twolayer/internal/mlp"
)

// Common errors.
var (
	// ErrInvalidInput is returned when an input vector or label is rejected.
	ErrInvalidInput = mlp.ErrInvalidInput

	// ErrUninitialized is returned when a network is used before Initialize
	// or Load.
	ErrUninitialized = mlp.ErrUninitialized

	// ErrPersistence is returned when Save or Load fails.
	ErrPersistence = mlp.ErrPersistence

	// ErrInvalidConfig is returned for non-positive sizes or learning rates.
	ErrInvalidConfig = mlp.ErrInvalidConfig

	// ErrInvalidSnapshot is returned when a loaded file decodes but does not
	// describe a consistent network.
	ErrInvalidSnapshot = mlp.ErrInvalidSnapshot
)

// InputError describes a rejected input vector or label.
type InputError = mlp.InputError
