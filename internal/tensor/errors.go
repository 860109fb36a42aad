package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
//
// Tensor operations never return errors: an incompatible operand is a bug in
// the model definition, so operations panic with an error wrapping one of
// these values. Code that recovers can classify the failure with errors.Is.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrUnimplemented = errors.New("not implemented")
)

// shapePanic aborts the current operation with ErrShapeMismatch.
func shapePanic(op string, a, b Shape) {
	panic(fmt.Errorf("%w: %s: %v and %v", ErrShapeMismatch, op, a, b))
}

// rankPanic aborts the current operation with ErrUnimplemented.
func rankPanic(op string, s Shape) {
	panic(fmt.Errorf("%w: %s for rank %d tensor %v", ErrUnimplemented, op, len(s), s))
}
