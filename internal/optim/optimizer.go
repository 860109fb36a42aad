// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: plain Stochastic Gradient Descent
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read the gradients cached on each layer by the last backward
// pass and update the layer-owned parameter tensors in place.
//
// Example usage:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//
//	// Training step
//	output := model.ForwardPropagation(input, true)
//	model.BackwardPropagation(loss.Grad(targets, output))
//	optimizer.Step(model.Layers())
package optim

import (
	"errors"
	"fmt"
	"strings"

	"github.com/born-ml/newron/internal/nn"
	"github.com/born-ml/newron/internal/tensor"
)

// ErrMissingGradient is raised by Step when a parameter has no gradient,
// i.e. Step was called before the layer's first Backward.
var ErrMissingGradient = errors.New("missing gradient")

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every learnable parameter of layers,
	// using the gradients stored by the last backward pass.
	Step(layers []nn.Layer)

	// LR returns the current learning rate.
	LR() float64
}

// Optimizer names accepted by ByName.
const (
	SGDName  = "sgd"
	AdamName = "adam"
)

// ByName builds an optimizer from its configuration name.
// A zero lr selects the optimizer's default learning rate.
func ByName(name string, lr float64) (Optimizer, error) {
	if lr < 0 {
		return nil, fmt.Errorf("%w: negative learning rate %v", nn.ErrInvalidConfiguration, lr)
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SGDName:
		return NewSGD(SGDConfig{LR: lr}), nil
	case AdamName:
		return NewAdam(AdamConfig{LR: lr}), nil
	default:
		return nil, fmt.Errorf("%w: unknown optimizer %q", nn.ErrInvalidConfiguration, name)
	}
}

// visit calls update for every (parameter, gradient) pair of layers.
//
// Gradients are checked against their parameter before update runs.
func visit(layers []nn.Layer, update func(param, grad *tensor.Tensor)) {
	for i, layer := range layers {
		for _, p := range layer.Params() {
			param := layer.Param(p)
			grad := layer.Grad(p)
			if grad == nil {
				panic(fmt.Errorf("%w: layer %d (%s) has no %s gradient",
					ErrMissingGradient, i, layer.Info(), p))
			}
			if !grad.Shape().Equal(param.Shape()) {
				panic(fmt.Errorf("%w: layer %d (%s): %s gradient %v, parameter %v",
					tensor.ErrShapeMismatch, i, layer.Info(), p, grad.Shape(), param.Shape()))
			}
			update(param, grad)
		}
	}
}
