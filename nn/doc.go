// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the layers and loss functions of newron.
//
// # Overview
//
// Layers implement a forward pass and a hand-derived backward pass:
//   - Dense: fully connected layer (y = x @ W + b)
//   - ReLU, Sigmoid, TanH: element-wise activations
//   - Softmax: row-wise normalization with a full Jacobian backward
//   - Dropout: inverted dropout, identity at inference
//
// Models do not hold layers directly but LayerSpec descriptors, which are
// turned into fresh layers every time the model is compiled:
//
//	m := model.New()
//	m.Add(nn.Dense(784, 128))
//	m.Add(nn.ReLU())
//	m.Add(nn.Dropout(0.2))
//	m.Add(nn.Dense(128, 10))
//
// # Loss Functions
//
//   - MSE: mean squared error for regression
//   - CategoricalCrossEntropy: cross-entropy with built-in softmax
package nn
