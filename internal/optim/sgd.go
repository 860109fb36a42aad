package optim

import (
	"fmt"

	"github.com/born-ml/newron/internal/nn"
	"github.com/born-ml/newron/internal/tensor"
)

// SGD implements Stochastic Gradient Descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//	optimizer.Step(model.Layers())
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
//
// Panics with nn.ErrInvalidConfiguration if config.LR is negative.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.LR < 0 {
		panic(fmt.Errorf("%w: SGD learning rate %v must be positive", nn.ErrInvalidConfiguration, config.LR))
	}

	return &SGD{lr: config.LR}
}

// Step performs a single optimization step on every parameter of layers.
func (s *SGD) Step(layers []nn.Layer) {
	visit(layers, func(param, grad *tensor.Tensor) {
		param.SubAssign(grad.Scale(s.lr))
	})
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
