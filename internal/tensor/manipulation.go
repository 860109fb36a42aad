package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Axis selects the dimension a reduction collapses.
const (
	AxisRows = 0 // reduce down the columns, result [1, cols]
	AxisCols = 1 // reduce across each row, result [rows, 1]
)

// Sum adds the values along axis.
//
// Example:
//
//	a := tensor.New([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
//	a.Sum(0) // [[5, 7, 9]]    Shape: [1, 3]
//	a.Sum(1) // [[6], [15]]    Shape: [2, 1]
func (t *Tensor) Sum(axis int) *Tensor {
	rows, cols := t.reduceDims("Sum", axis)
	if axis == AxisRows {
		out := make([]float64, cols)
		for i := 0; i < rows; i++ {
			floats.Add(out, t.data[i*cols:(i+1)*cols])
		}
		return wrap(out, Shape{1, cols})
	}

	out := make([]float64, rows)
	for i := range out {
		out[i] = floats.Sum(t.data[i*cols : (i+1)*cols])
	}
	return wrap(out, Shape{rows, 1})
}

// Mean averages the values along axis.
func (t *Tensor) Mean(axis int) *Tensor {
	rows, cols := t.reduceDims("Mean", axis)
	n := cols
	if axis == AxisRows {
		n = rows
	}
	return t.Sum(axis).Scale(1 / float64(n))
}

// Max returns the largest value along axis.
func (t *Tensor) Max(axis int) *Tensor {
	rows, cols := t.reduceDims("Max", axis)
	if axis == AxisRows {
		out := make([]float64, cols)
		for j := range out {
			out[j] = math.Inf(-1)
		}
		for i := 0; i < rows; i++ {
			for j, v := range t.data[i*cols : (i+1)*cols] {
				out[j] = math.Max(out[j], v)
			}
		}
		return wrap(out, Shape{1, cols})
	}

	out := make([]float64, rows)
	for i := range out {
		out[i] = floats.Max(t.data[i*cols : (i+1)*cols])
	}
	return wrap(out, Shape{rows, 1})
}

// reduceDims validates a reduction and returns the matrix dimensions.
func (t *Tensor) reduceDims(op string, axis int) (rows, cols int) {
	if !t.shape.IsMatrix() {
		rankPanic(op, t.shape)
	}
	if axis != AxisRows && axis != AxisCols {
		panic(fmt.Errorf("%w: %s: axis %d out of range for %v", ErrShapeMismatch, op, axis, t.shape))
	}
	return t.Dims()
}

// ArgMaxRows returns, for every row, the column index of its largest value.
// It decodes one-hot targets and class probabilities alike.
func (t *Tensor) ArgMaxRows() []int {
	rows, cols := t.Dims()
	out := make([]int, rows)
	for i := range out {
		out[i] = floats.MaxIdx(t.data[i*cols : (i+1)*cols])
	}
	return out
}

// Transpose returns the [cols, rows] transpose of a matrix.
//
// Storage is physically reordered, so the result is an ordinary row-major
// tensor that every operation can consume.
func (t *Tensor) Transpose() *Tensor {
	rows, cols := t.Dims()
	var dst mat.Dense
	dst.CloneFrom(mat.NewDense(rows, cols, t.data).T())
	return wrap(dst.RawMatrix().Data, Shape{cols, rows})
}

// Row returns row i of a matrix as a new [1, cols] tensor.
func (t *Tensor) Row(i int) *Tensor {
	rows, cols := t.Dims()
	if i < 0 || i >= rows {
		panic(fmt.Sprintf("row %d out of bounds for shape %v", i, t.shape))
	}
	return New(t.data[i*cols:(i+1)*cols], Shape{1, cols})
}

// Rows gathers the rows at indices into a new [len(indices), cols] tensor.
func (t *Tensor) Rows(indices []int) *Tensor {
	rows, cols := t.Dims()
	if len(indices) == 0 {
		panic(fmt.Errorf("%w: Rows needs at least one index", ErrShapeMismatch))
	}
	out := make([]float64, 0, len(indices)*cols)
	for _, i := range indices {
		if i < 0 || i >= rows {
			panic(fmt.Sprintf("row %d out of bounds for shape %v", i, t.shape))
		}
		out = append(out, t.data[i*cols:(i+1)*cols]...)
	}
	return wrap(out, Shape{len(indices), cols})
}

// Reshape returns a tensor with the same data but a different shape.
// The new shape must have the same number of elements.
//
// Example:
//
//	v := tensor.New([]float64{1, 2, 3, 4}, Shape{4})
//	m := v.Reshape(Shape{1, 4})
func (t *Tensor) Reshape(shape Shape) *Tensor {
	if shape.NumElements() != len(t.data) {
		shapePanic("Reshape", t.shape, shape)
	}
	return New(t.data, shape)
}
