package nn

import (
	"math"

	"github.com/born-ml/newron/internal/tensor"
)

// ReLU applies the rectified linear unit element-wise.
//
//	ReLU(x) = max(0, x)
//	ReLU'(x) = 1 if x > 0, 0 otherwise
//
// Example:
//
//	relu := nn.NewReLU()
//	output := relu.Forward(input, true)
type ReLU struct {
	inputCache
}

// NewReLU creates a new ReLU activation layer.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward computes max(0, x).
func (r *ReLU) Forward(input *tensor.Tensor, _ bool) *tensor.Tensor {
	r.input = input
	return input.Map(relu)
}

// Backward masks grad where the cached input was not positive.
func (r *ReLU) Backward(grad *tensor.Tensor) *tensor.Tensor {
	return grad.MulElem(r.cached("ReLU").Map(reluPrime))
}

// Info returns a short description.
func (r *ReLU) Info() string {
	return "ReLU"
}

// Sigmoid applies the logistic function element-wise.
//
//	σ(x) = 1 / (1 + exp(-x))
//	σ'(x) = σ(x) * (1 - σ(x))
type Sigmoid struct {
	inputCache
}

// NewSigmoid creates a new Sigmoid activation layer.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward computes σ(x).
func (s *Sigmoid) Forward(input *tensor.Tensor, _ bool) *tensor.Tensor {
	s.input = input
	return input.Map(sigmoid)
}

// Backward multiplies grad by σ(x)(1-σ(x)) evaluated at the cached input.
func (s *Sigmoid) Backward(grad *tensor.Tensor) *tensor.Tensor {
	return grad.MulElem(s.cached("Sigmoid").Map(sigmoidPrime))
}

// Info returns a short description.
func (s *Sigmoid) Info() string {
	return "Sigmoid"
}

// TanH applies the hyperbolic tangent element-wise.
//
//	tanh'(x) = 1 - tanh²(x)
type TanH struct {
	inputCache
}

// NewTanH creates a new TanH activation layer.
func NewTanH() *TanH {
	return &TanH{}
}

// Forward computes tanh(x).
func (t *TanH) Forward(input *tensor.Tensor, _ bool) *tensor.Tensor {
	t.input = input
	return input.Map(math.Tanh)
}

// Backward multiplies grad by 1 - tanh²(x).
func (t *TanH) Backward(grad *tensor.Tensor) *tensor.Tensor {
	return grad.MulElem(t.cached("TanH").Map(tanhPrime))
}

// Info returns a short description.
func (t *TanH) Info() string {
	return "TanH"
}

func relu(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

func reluPrime(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func sigmoidPrime(x float64) float64 {
	s := sigmoid(x)
	return s * (1 - s)
}

func tanhPrime(x float64) float64 {
	th := math.Tanh(x)
	return 1 - th*th
}
