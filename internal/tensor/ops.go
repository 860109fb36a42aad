package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Add performs element-wise addition with row broadcasting.
//
// Example:
//
//	a := tensor.Ones(Shape{1, 5})
//	b := tensor.Ones(Shape{3, 5})
//	c := a.Add(b) // Shape: [3, 5] (a broadcast over rows)
func (t *Tensor) Add(other *Tensor) *Tensor {
	return t.binary("Add", other, func(a, b float64) float64 { return a + b })
}

// Sub performs element-wise subtraction with row broadcasting.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	return t.binary("Sub", other, func(a, b float64) float64 { return a - b })
}

// Div performs element-wise division with row broadcasting.
func (t *Tensor) Div(other *Tensor) *Tensor {
	return t.binary("Div", other, func(a, b float64) float64 { return a / b })
}

// binary applies f element by element. A single-row operand is repeated
// over the rows of the other one by indexing modulo its length.
func (t *Tensor) binary(op string, other *Tensor, f func(a, b float64) float64) *Tensor {
	shape, broadcast, err := BroadcastRows(t.shape, other.shape)
	if err != nil {
		panic(fmt.Errorf("%s: %w", op, err))
	}

	out := make([]float64, shape.NumElements())
	if !broadcast {
		for i := range out {
			out[i] = f(t.data[i], other.data[i])
		}
		return wrap(out, shape)
	}

	for i := range out {
		out[i] = f(t.data[i%len(t.data)], other.data[i%len(other.data)])
	}
	return wrap(out, shape)
}

// MulElem computes the Hadamard (element-wise) product.
// Both tensors must have exactly the same shape.
func (t *Tensor) MulElem(other *Tensor) *Tensor {
	if !t.shape.Equal(other.shape) {
		shapePanic("MulElem", t.shape, other.shape)
	}
	out := make([]float64, len(t.data))
	floats.MulTo(out, t.data, other.data)
	return wrap(out, t.shape.Clone())
}

// Scale multiplies every element by s.
func (t *Tensor) Scale(s float64) *Tensor {
	out := make([]float64, len(t.data))
	floats.ScaleTo(out, s, t.data)
	return wrap(out, t.shape.Clone())
}

// Map applies f to every element. The shape is unchanged.
func (t *Tensor) Map(f func(float64) float64) *Tensor {
	out := make([]float64, len(t.data))
	for i, v := range t.data {
		out[i] = f(v)
	}
	return wrap(out, t.shape.Clone())
}

// SubAssign subtracts other from t in place.
//
// This is the only mutating arithmetic operation; optimizers use it to update
// parameters owned by a layer. Both tensors must have the same shape.
func (t *Tensor) SubAssign(other *Tensor) {
	if !t.shape.Equal(other.shape) {
		shapePanic("SubAssign", t.shape, other.shape)
	}
	floats.Sub(t.data, other.data)
}

// MatMul performs matrix multiplication.
//
// Requirements:
//   - 2D: (M, K) @ (K, N) → (M, N)
//   - 1D: element-wise product of two vectors of the same length
//   - 0D: product of two scalars
//
// Example:
//
//	a := tensor.Random(Shape{3, 4}, 1)
//	b := tensor.Random(Shape{4, 5}, 2)
//	c := a.MatMul(b) // Shape: [3, 5]
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	if len(t.shape) != len(other.shape) {
		shapePanic("MatMul (rank)", t.shape, other.shape)
	}

	switch len(t.shape) {
	case 0:
		return wrap([]float64{t.data[0] * other.data[0]}, Shape{})
	case 1:
		return t.MulElem(other)
	case 2:
		m, k := t.Dims()
		k2, n := other.Dims()
		if k != k2 {
			panic(fmt.Errorf("%w: MatMul: # cols of A (%d) != # rows of B (%d): %v @ %v",
				ErrShapeMismatch, k, k2, t.shape, other.shape))
		}
		a := mat.NewDense(m, k, t.data)
		b := mat.NewDense(k2, n, other.data)
		c := mat.NewDense(m, n, nil)
		c.Mul(a, b)
		return wrap(c.RawMatrix().Data, Shape{m, n})
	default:
		rankPanic("MatMul", t.shape)
		return nil
	}
}

// Dot computes a NumPy-like dot product.
//
// When other is a single row with one value per row of t, the result is the
// sum product over the first axis of t: out[i] = Σ_j other[j]·t[j, i], with
// shape [1, cols]. When the inner dimensions agree it is MatMul. Every other
// combination is unimplemented.
func (t *Tensor) Dot(other *Tensor) *Tensor {
	if !t.shape.IsMatrix() || !other.shape.IsMatrix() {
		panic(fmt.Errorf("%w: Dot(%v, %v)", ErrUnimplemented, t.shape, other.shape))
	}

	rows, cols := t.Dims()
	if other.shape[0] == 1 && other.shape[1] == rows {
		out := make([]float64, cols)
		for j := 0; j < rows; j++ {
			floats.AddScaled(out, other.data[j], t.data[j*cols:(j+1)*cols])
		}
		return wrap(out, Shape{1, cols})
	}

	if cols == other.shape[0] {
		return t.MatMul(other)
	}

	panic(fmt.Errorf("%w: Dot(%v, %v)", ErrUnimplemented, t.shape, other.shape))
}
