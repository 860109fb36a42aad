// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense float64 tensors used by newron.
//
// # Overview
//
// A Tensor is a flat row-major buffer with an explicit Shape of rank 0
// (scalar), 1 (vector) or 2 (matrix). This package provides:
//   - Constructors: New, FromRows, Zeros, Ones, Full
//   - Seeded random tensors: Random, RandomNormal, Mask
//   - Element-wise arithmetic with single-row broadcasting
//   - Matrix products, reductions and transposition
//
// # Basic Usage
//
//	import "github.com/born-ml/newron/tensor"
//
//	func main() {
//	    x := tensor.New([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	    b := tensor.Ones(tensor.Shape{1, 3})
//
//	    y := x.Add(b)                 // b broadcast over both rows
//	    z := x.MatMul(x.Transpose())  // [2, 2]
//	    s := z.Sum(tensor.AxisRows)   // [1, 2]
//	}
//
// # Errors
//
// Operations panic on incompatible shapes with an error wrapping
// ErrShapeMismatch, or ErrUnimplemented for ranks above 2. Recover and
// test with errors.Is when a caller needs to classify the failure.
package tensor
