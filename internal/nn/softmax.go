package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/newron/internal/tensor"
)

// Softmax normalizes every row of its input into a probability distribution.
//
// Forward uses the numerically stable form:
//
//	softmax(x)_i = exp(x_i - max(x)) / Σ_j exp(x_j - max(x))
//
// Backward contracts the incoming gradient with the per-row Jacobian
//
//	J = diag(p) - p·pᵀ
//
// where p is the softmax output of that row.
type Softmax struct {
	inputCache
}

// NewSoftmax creates a new Softmax layer.
func NewSoftmax() *Softmax {
	return &Softmax{}
}

// Forward applies SoftmaxRows to input.
func (s *Softmax) Forward(input *tensor.Tensor, _ bool) *tensor.Tensor {
	s.input = input
	return SoftmaxRows(input)
}

// Backward computes J·g for every row g of grad.
func (s *Softmax) Backward(grad *tensor.Tensor) *tensor.Tensor {
	probs := SoftmaxRows(s.cached("Softmax"))
	if !grad.Shape().Equal(probs.Shape()) {
		panic(fmt.Errorf("%w: Softmax.Backward: gradient %v does not match input %v",
			tensor.ErrShapeMismatch, grad.Shape(), probs.Shape()))
	}

	rows, cols := probs.Dims()
	p := probs.Data()
	g := grad.Data()
	out := make([]float64, 0, rows*cols)

	jac := mat.NewDense(cols, cols, nil)
	var gradIn mat.VecDense
	for i := 0; i < rows; i++ {
		row := mat.NewVecDense(cols, p[i*cols:(i+1)*cols])

		jac.Zero()
		jac.Outer(-1, row, row)
		for j := 0; j < cols; j++ {
			jac.Set(j, j, jac.At(j, j)+row.AtVec(j))
		}

		gradIn.MulVec(jac, mat.NewVecDense(cols, g[i*cols:(i+1)*cols]))
		out = append(out, gradIn.RawVector().Data...)
	}

	return tensor.New(out, tensor.Shape{rows, cols})
}

// Info returns a short description.
func (s *Softmax) Info() string {
	return "Softmax"
}

// SoftmaxRows returns the row-wise softmax of a matrix.
// Each output row sums to 1.
func SoftmaxRows(t *tensor.Tensor) *tensor.Tensor {
	rows, cols := t.Dims()
	data := t.Data()
	for i := 0; i < rows; i++ {
		row := data[i*cols : (i+1)*cols]
		floats.AddConst(-floats.Max(row), row)
		for j, v := range row {
			row[j] = math.Exp(v)
		}
		floats.Scale(1/floats.Sum(row), row)
	}
	return tensor.New(data, tensor.Shape{rows, cols})
}
