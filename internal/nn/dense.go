package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/newron/internal/tensor"
)

// Dense implements a fully connected layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input tensor with shape [batch_size, in]
//   - W is the weight matrix with shape [in, out]
//   - b is the bias row with shape [1, out], broadcast over the batch
//   - y is the output tensor with shape [batch_size, out]
//
// Weights are drawn from N(0, 2/(in+out)) with Box-Muller sampling.
// Biases are initialized to ones.
//
// Example:
//
//	layer := nn.NewDense(784, 128, seed)
//	output := layer.Forward(input, true) // shape: [batch, 128]
//	gradIn := layer.Backward(gradOut)    // shape: [batch, 784]
type Dense struct {
	in  int
	out int

	weights *tensor.Tensor // [in, out]
	biases  *tensor.Tensor // [1, out]

	input       *tensor.Tensor // last Forward input
	weightsGrad *tensor.Tensor
	biasesGrad  *tensor.Tensor
}

// NewDense creates a new Dense layer.
//
// Parameters:
//   - in: Number of input features
//   - out: Number of output features
//   - seed: Seed of the weight initializer
//
// Panics with ErrInvalidConfiguration if a dimension is not positive.
func NewDense(in, out int, seed uint32) *Dense {
	if in <= 0 || out <= 0 {
		panic(fmt.Errorf("%w: Dense(%d, %d): dimensions must be > 0", ErrInvalidConfiguration, in, out))
	}

	stdev := math.Sqrt(2.0 / float64(in+out))
	return &Dense{
		in:      in,
		out:     out,
		weights: tensor.RandomNormal(tensor.Shape{in, out}, 0, stdev, seed),
		biases:  tensor.Ones(tensor.Shape{1, out}),
	}
}

// Forward computes input @ W + b.
//
// Input shape: [batch_size, in]
// Output shape: [batch_size, out]
func (d *Dense) Forward(input *tensor.Tensor, _ bool) *tensor.Tensor {
	shape := input.Shape()
	if !shape.IsMatrix() || shape[1] != d.in {
		panic(fmt.Errorf("%w: Dense.Forward: expected input [batch, %d], got %v",
			tensor.ErrShapeMismatch, d.in, shape))
	}

	d.input = input
	return input.MatMul(d.weights).Add(d.biases)
}

// Backward computes the parameter gradients and the input gradient.
//
//	dW = xᵀ @ grad
//	db = Σ_batch grad
//	dx = grad @ Wᵀ
//
// Both parameter gradients are checked against the parameter shapes.
func (d *Dense) Backward(grad *tensor.Tensor) *tensor.Tensor {
	if d.input == nil {
		panic(fmt.Errorf("%w: Dense.Backward called before Forward", ErrUnsupportedOperation))
	}

	d.weightsGrad = d.input.Transpose().MatMul(grad)
	d.biasesGrad = grad.Sum(tensor.AxisRows)
	checkGradShape("Dense", d.weightsGrad, d.weights)
	checkGradShape("Dense", d.biasesGrad, d.biases)

	return grad.MatMul(d.weights.Transpose())
}

// Params returns [Weights, Biases].
func (d *Dense) Params() []Param {
	return []Param{Weights, Biases}
}

// Grad returns the gradient of p computed by the last Backward call,
// or nil before the first one.
func (d *Dense) Grad(p Param) *tensor.Tensor {
	switch p {
	case Weights:
		return d.weightsGrad
	case Biases:
		return d.biasesGrad
	default:
		panic(fmt.Errorf("%w: Dense has no parameter %s", ErrUnsupportedOperation, p))
	}
}

// Param returns the tensor holding p.
func (d *Dense) Param(p Param) *tensor.Tensor {
	switch p {
	case Weights:
		return d.weights
	case Biases:
		return d.biases
	default:
		panic(fmt.Errorf("%w: Dense has no parameter %s", ErrUnsupportedOperation, p))
	}
}

// In returns the number of input features.
func (d *Dense) In() int {
	return d.in
}

// Out returns the number of output features.
func (d *Dense) Out() int {
	return d.out
}

// Info returns a short description.
func (d *Dense) Info() string {
	return fmt.Sprintf("Dense(%d -> %d)", d.in, d.out)
}
