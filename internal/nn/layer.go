// Package nn implements the differentiable building blocks of the engine.
//
// This package provides:
//   - Layer interface: forward/backward contract shared by every layer
//   - LayerSpec: declarative layer descriptors resolved at compile time
//   - Dense: fully connected layer with normal Xavier-style initialization
//   - Activations: ReLU, Sigmoid, TanH, Softmax
//   - Dropout: inverted dropout driven by a seeded mask
//   - Loss functions: MSE, CategoricalCrossEntropy
//
// Gradients are derived by hand for each layer. A layer remembers the input of
// its last Forward call and reads it back in Backward, so Forward and Backward
// must be called in matching order by a single owner.
package nn

import (
	"errors"
	"fmt"

	"github.com/born-ml/newron/internal/tensor"
)

// Common errors.
var (
	// ErrUnsupportedOperation is raised when a layer is asked for something it
	// does not have, such as the gradient of a parameter-free activation.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrInvalidConfiguration is raised when a layer, loss or optimizer is
	// constructed with unusable settings.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// Layer is the contract implemented by every layer.
//
// Layers own mutable scratch state (the cached input, gradients, masks), so a
// Layer value must not be shared between models or goroutines.
type Layer interface {
	// Forward computes the output for input and caches what Backward needs.
	//
	// training selects training behavior (Dropout masking); inference passes
	// false.
	Forward(input *tensor.Tensor, training bool) *tensor.Tensor

	// Backward receives the gradient of the loss with respect to the output
	// of the last Forward call and returns the gradient with respect to its
	// input. Layers with parameters also store the parameter gradients.
	Backward(grad *tensor.Tensor) *tensor.Tensor

	// Params lists the learnable parameters of the layer. Activation layers
	// return an empty slice.
	Params() []Param

	// Grad returns the gradient computed for p by the last Backward call.
	Grad(p Param) *tensor.Tensor

	// Param returns the tensor holding p. Optimizers update it in place.
	Param(p Param) *tensor.Tensor

	// Info returns a short human-readable description.
	Info() string
}

// Param identifies a learnable buffer of a layer.
type Param int

// Learnable parameter tags.
const (
	Weights Param = iota
	Biases
)

// String returns the parameter name.
func (p Param) String() string {
	switch p {
	case Weights:
		return "weights"
	case Biases:
		return "biases"
	default:
		return fmt.Sprintf("Param(%d)", int(p))
	}
}

// inputCache is the scratch buffer embedded in layers without parameters.
type inputCache struct {
	input *tensor.Tensor
}

// cached returns the input of the last Forward call.
func (c *inputCache) cached(layer string) *tensor.Tensor {
	if c.input == nil {
		panic(fmt.Errorf("%w: %s.Backward called before Forward", ErrUnsupportedOperation, layer))
	}
	return c.input
}

// Params returns an empty slice.
func (c *inputCache) Params() []Param {
	return nil
}

// Grad panics: the layer has no learnable parameters.
func (c *inputCache) Grad(p Param) *tensor.Tensor {
	panic(fmt.Errorf("%w: layer does not have learnable parameters (asked for %s gradient)", ErrUnsupportedOperation, p))
}

// Param panics: the layer has no learnable parameters.
func (c *inputCache) Param(p Param) *tensor.Tensor {
	panic(fmt.Errorf("%w: layer does not have learnable parameters (asked for %s)", ErrUnsupportedOperation, p))
}

// checkGradShape panics when a gradient does not match the tensor it belongs to.
func checkGradShape(layer string, grad, like *tensor.Tensor) {
	if !grad.Shape().Equal(like.Shape()) {
		panic(fmt.Errorf("%w: %s.Backward: gradient %v does not match %v",
			tensor.ErrShapeMismatch, layer, grad.Shape(), like.Shape()))
	}
}
