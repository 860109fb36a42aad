package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
//
// An empty shape is a scalar, one dimension is a vector and two dimensions
// are a row-major matrix. Higher ranks are rejected by the operations.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (rank <= 2, all dimensions > 0).
func (s Shape) Validate() error {
	if len(s) > 2 {
		return fmt.Errorf("%w: rank %d (shape %v)", ErrUnimplemented, len(s), s)
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: invalid dimension at index %d: %d (must be > 0)", ErrShapeMismatch, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// IsMatrix reports whether the shape has rank 2.
func (s Shape) IsMatrix() bool {
	return len(s) == 2
}

// BroadcastRows decides how two shapes combine in an element-wise operation.
//
// Rules:
//  1. Identical shapes combine element by element.
//  2. Two matrices with the same number of columns combine when one of them
//     has a single row; that row is repeated for every row of the other.
//
// Returns the result shape, a flag indicating if broadcasting is needed, and
// an error wrapping ErrShapeMismatch if the shapes are incompatible.
//
// Examples:
//
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(1, 5) + (3, 5) → (3, 5), true, nil
//	(3, 4) + (3, 5) → nil, false, Error
func BroadcastRows(a, b Shape) (Shape, bool, error) {
	if a.Equal(b) {
		return a.Clone(), false, nil
	}

	if a.IsMatrix() && b.IsMatrix() && a[1] == b[1] {
		switch {
		case a[0] == 1:
			return b.Clone(), true, nil
		case b[0] == 1:
			return a.Clone(), true, nil
		}
	}

	return nil, false, fmt.Errorf("%w: shapes not compatible for broadcasting: %v vs %v", ErrShapeMismatch, a, b)
}
