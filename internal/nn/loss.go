package nn

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/newron/internal/tensor"
)

// Loss is the contract implemented by every loss function.
//
// Grad returns a tensor shaped like yPred holding ∂loss/∂yPred, which is the
// gradient fed into the last layer's Backward.
type Loss interface {
	Loss(yTrue, yPred *tensor.Tensor) float64
	Grad(yTrue, yPred *tensor.Tensor) *tensor.Tensor
	Name() string
}

// Loss names accepted by LossByName.
const (
	MSEName                     = "mse"
	CategoricalCrossEntropyName = "categorical_cross_entropy"
)

// MSE is the mean squared error loss.
//
//	MSE = mean((yPred - yTrue)²)
//	∂MSE/∂yPred = 2 * (yPred - yTrue)
type MSE struct{}

// NewMSE creates a mean squared error loss.
func NewMSE() *MSE {
	return &MSE{}
}

// Loss returns the mean of the squared differences.
func (MSE) Loss(yTrue, yPred *tensor.Tensor) float64 {
	diff := checkedDiff("MSE", yTrue, yPred).Data()
	return floats.Dot(diff, diff) / float64(len(diff))
}

// Grad returns 2 * (yPred - yTrue).
func (MSE) Grad(yTrue, yPred *tensor.Tensor) *tensor.Tensor {
	return checkedDiff("MSE", yTrue, yPred).Scale(2)
}

// Name returns "mse".
func (MSE) Name() string {
	return MSEName
}

// LossByName resolves a loss from its configuration name.
func LossByName(name string) (Loss, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MSEName:
		return NewMSE(), nil
	case CategoricalCrossEntropyName, "cce", "categorical_entropy":
		return NewCategoricalCrossEntropy(), nil
	default:
		return nil, fmt.Errorf("%w: unknown loss %q", ErrInvalidConfiguration, name)
	}
}

// checkedDiff returns yPred - yTrue after checking that the shapes agree exactly.
func checkedDiff(loss string, yTrue, yPred *tensor.Tensor) *tensor.Tensor {
	if !yTrue.Shape().Equal(yPred.Shape()) {
		panic(fmt.Errorf("%w: %s: targets %v and predictions %v",
			tensor.ErrShapeMismatch, loss, yTrue.Shape(), yPred.Shape()))
	}
	return yPred.Sub(yTrue)
}
