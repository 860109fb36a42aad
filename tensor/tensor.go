// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/newron/internal/tensor"
)

// Tensor is a dense float64 array of rank 0, 1 or 2.
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} represents a matrix with 2 rows and 3 columns.
type Shape = tensor.Shape

// Reduction axes.
const (
	AxisRows = tensor.AxisRows // reduce down columns, result [1, cols]
	AxisCols = tensor.AxisCols // reduce across rows, result [rows, 1]
)

// Errors wrapped by tensor panics.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrUnimplemented = tensor.ErrUnimplemented
)

// New creates a tensor from data with the given shape. data is copied.
func New(data []float64, shape Shape) *Tensor {
	return tensor.New(data, shape)
}

// FromRows creates a matrix from equally sized rows.
func FromRows(rows [][]float64) *Tensor {
	return tensor.FromRows(rows)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// Random creates a tensor of values uniformly drawn from [-1, 1).
func Random(shape Shape, seed uint32) *Tensor {
	return tensor.Random(shape, seed)
}

// RandomNormal creates a tensor of values drawn from N(mean, stdev²).
func RandomNormal(shape Shape, mean, stdev float64, seed uint32) *Tensor {
	return tensor.RandomNormal(shape, mean, stdev, seed)
}

// Mask creates a shuffled 0/1 tensor with floor(rate*n) zeros.
//
// Example:
//
//	m := tensor.Mask(tensor.Shape{10, 10}, 0.4, 777) // 40 zeros, 60 ones
func Mask(shape Shape, rate float64, seed uint32) *Tensor {
	return tensor.Mask(shape, rate, seed)
}
