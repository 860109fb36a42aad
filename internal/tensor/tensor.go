// Package tensor implements the dense float64 array used by the training engine.
//
// A Tensor is a flat row-major buffer plus an explicit Shape. Element (i, j)
// of a matrix lives at data[i*cols+j]. Tensors behave as values: every
// operation returns a fresh tensor and never aliases its operands, with
// SubAssign as the single in-place exception used for parameter updates.
package tensor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Tensor is a dense array of float64 with rank 0, 1 or 2.
//
// Example:
//
//	a := tensor.New([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	b := tensor.Ones(tensor.Shape{1, 2})
//	c := a.Add(b) // [[2, 3], [4, 5]], b broadcast over rows
type Tensor struct {
	data  []float64
	shape Shape
}

// New creates a Tensor from data with the given shape.
// The slice is copied into the tensor's memory.
//
// Panics with ErrShapeMismatch if len(data) != shape.NumElements() and with
// ErrUnimplemented for ranks above 2.
func New(data []float64, shape Shape) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	if shape.NumElements() != len(data) {
		panic(fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data)))
	}

	buf := make([]float64, len(data))
	copy(buf, data)
	return &Tensor{data: buf, shape: shape.Clone()}
}

// FromRows creates a matrix from a slice of equally sized rows.
func FromRows(rows [][]float64) *Tensor {
	if len(rows) == 0 {
		panic(fmt.Errorf("%w: FromRows needs at least one row", ErrShapeMismatch))
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Errorf("%w: row %d has %d values, want %d", ErrShapeMismatch, i, len(row), cols))
		}
		data = append(data, row...)
	}
	return wrap(data, Shape{len(rows), cols})
}

// wrap builds a tensor that takes ownership of data without copying.
func wrap(data []float64, shape Shape) *Tensor {
	return &Tensor{data: data, shape: shape}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// Len returns the total number of elements.
func (t *Tensor) Len() int {
	return len(t.data)
}

// Dims returns the number of rows and columns of a matrix.
// Panics if the tensor is not 2D.
func (t *Tensor) Dims() (rows, cols int) {
	if !t.shape.IsMatrix() {
		rankPanic("Dims", t.shape)
	}
	return t.shape[0], t.shape[1]
}

// Data returns a copy of the flat row-major values.
func (t *Tensor) Data() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)
	return out
}

// At returns the element at row i, column j of a matrix.
// Panics if indices are out of bounds.
func (t *Tensor) At(i, j int) float64 {
	rows, cols := t.Dims()
	if i < 0 || i >= rows || j < 0 || j >= cols {
		panic(fmt.Sprintf("index (%d, %d) out of bounds for shape %v", i, j, t.shape))
	}
	return t.data[i*cols+j]
}

// Item returns the value at flat index i.
func (t *Tensor) Item(i int) float64 {
	return t.data[i]
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	return New(t.data, t.shape)
}

// Equal reports whether both tensors have the same shape and exactly the same values.
func (t *Tensor) Equal(other *Tensor) bool {
	return t.shape.Equal(other.shape) && floats.Equal(t.data, other.data)
}

// EqualApprox reports whether both tensors have the same shape and values
// within tol of each other.
func (t *Tensor) EqualApprox(other *Tensor, tol float64) bool {
	return t.shape.Equal(other.shape) && floats.EqualApprox(t.data, other.data, tol)
}

// Round returns a tensor with every value rounded to the given number of decimals.
func (t *Tensor) Round(decimals int) *Tensor {
	p := math.Pow(10, float64(decimals))
	return t.Map(func(v float64) float64 {
		return math.Round(v*p) / p
	})
}

// String returns a human-readable representation of the tensor.
//
//	scalar: 3.14
//	vector: [1 2 3]
//	matrix: one "|v  v  v|" line per row, values cut to 4 characters
func (t *Tensor) String() string {
	switch len(t.shape) {
	case 0:
		return strconv.FormatFloat(t.data[0], 'g', -1, 64)
	case 1:
		parts := make([]string, len(t.data))
		for i, v := range t.data {
			parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		const width = 4
		rows, cols := t.Dims()
		var sb strings.Builder
		sb.WriteString("\n")
		for i := 0; i < rows; i++ {
			sb.WriteString("|")
			for j := 0; j < cols; j++ {
				v := strconv.FormatFloat(t.data[i*cols+j], 'f', -1, 64)
				if len(v) > width {
					v = v[:width]
				} else {
					v += strings.Repeat(" ", width-len(v))
				}
				sb.WriteString(v)
				sb.WriteString("  ")
			}
			sb.WriteString("|\n")
		}
		return sb.String()
	}
}
