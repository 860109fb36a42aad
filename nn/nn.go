// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/newron/internal/nn"
)

// Layer is the forward/backward contract implemented by every layer.
type Layer = nn.Layer

// Param identifies a learnable buffer of a layer.
type Param = nn.Param

// Learnable parameter tags.
const (
	Weights = nn.Weights
	Biases  = nn.Biases
)

// LayerSpec declares a layer that a model builds at compile time.
type LayerSpec = nn.LayerSpec

// LayerKind enumerates the layers a LayerSpec can describe.
type LayerKind = nn.LayerKind

// Errors wrapped by layer panics.
var (
	ErrUnsupportedOperation = nn.ErrUnsupportedOperation
	ErrInvalidConfiguration = nn.ErrInvalidConfiguration
)

// Layer specs

// Dense describes a fully connected layer with in inputs and out outputs.
func Dense(in, out int) LayerSpec {
	return nn.DenseSpec(in, out)
}

// ReLU describes a rectified linear activation.
func ReLU() LayerSpec {
	return nn.ReLUSpec()
}

// Sigmoid describes a logistic activation.
func Sigmoid() LayerSpec {
	return nn.SigmoidSpec()
}

// TanH describes a hyperbolic tangent activation.
func TanH() LayerSpec {
	return nn.TanHSpec()
}

// Softmax describes a row-wise softmax layer.
func Softmax() LayerSpec {
	return nn.SoftmaxSpec()
}

// Dropout describes an inverted dropout layer dropping a rate fraction of
// its inputs during training.
func Dropout(rate float64) LayerSpec {
	return nn.DropoutSpec(rate)
}

// Loss functions

// Loss is the contract implemented by every loss function.
type Loss = nn.Loss

// MSE is the mean squared error loss.
type MSE = nn.MSE

// NewMSE creates a mean squared error loss.
func NewMSE() *MSE {
	return nn.NewMSE()
}

// CategoricalCrossEntropy is the cross-entropy of one-hot targets.
type CategoricalCrossEntropy = nn.CategoricalCrossEntropy

// NewCategoricalCrossEntropy creates a categorical cross-entropy loss.
//
// Example:
//
//	loss := nn.NewCategoricalCrossEntropy()
//	m.Compile(model.CompileConfig{Loss: loss, Optimizer: opt})
func NewCategoricalCrossEntropy() *CategoricalCrossEntropy {
	return nn.NewCategoricalCrossEntropy()
}

// LossByName resolves "mse" or "categorical_cross_entropy".
func LossByName(name string) (Loss, error) {
	return nn.LossByName(name)
}
