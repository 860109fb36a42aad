// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/newron/internal/optim"
)

// Optimizer updates layer parameters from their cached gradients.
type Optimizer = optim.Optimizer

// SGD implements Stochastic Gradient Descent.
type SGD = optim.SGD

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.01})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Adam implements the Adam optimizer.
type Adam = optim.Adam

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer.
//
// Example:
//
//	optimizer := optim.NewAdam(optim.AdamConfig{LR: 0.001})
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}

// ErrMissingGradient is raised when Step runs before a backward pass.
var ErrMissingGradient = optim.ErrMissingGradient
