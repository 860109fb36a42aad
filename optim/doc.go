// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: plain Stochastic Gradient Descent
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/newron/model"
//	    "github.com/born-ml/newron/nn"
//	    "github.com/born-ml/newron/optim"
//	)
//
//	func main() {
//	    m := model.New()
//	    m.Add(nn.Dense(784, 10))
//	    m.Compile(model.CompileConfig{
//	        Loss:      nn.NewCategoricalCrossEntropy(),
//	        Optimizer: optim.NewSGD(optim.SGDConfig{LR: 0.01}),
//	    })
//	}
//
// Optimizers read the gradients each layer cached during the last backward
// pass and update the parameter tensors in place.
package optim
