package nn

import (
	"fmt"

	"github.com/born-ml/newron/internal/tensor"
)

// MinKeepProb is the smallest keep probability Dropout accepts.
// Below it the 1/keep scaling of inverted dropout explodes.
const MinKeepProb = 0.01

// Dropout implements inverted dropout.
//
// During training each Forward draws a fresh mask that zeroes floor(rate*n)
// elements and scales the survivors by 1/(1-rate), so inference needs no
// rescaling and is the identity.
//
// The internal seed is advanced before every training Forward, so two models
// built with the same seed drop the same units in the same order.
type Dropout struct {
	rate float64
	seed uint32
	mask *tensor.Tensor

	forwarded bool
}

// NewDropout creates a Dropout layer dropping a rate fraction of its inputs.
//
// Parameters:
//   - rate: Fraction of elements zeroed during training, in [0, 1-MinKeepProb]
//   - seed: Initial mask seed
//
// Panics with ErrInvalidConfiguration when rate is out of range.
func NewDropout(rate float64, seed uint32) *Dropout {
	if rate < 0 || 1-rate < MinKeepProb {
		panic(fmt.Errorf("%w: Dropout rate %v: keep probability must be >= %v",
			ErrInvalidConfiguration, rate, MinKeepProb))
	}
	return &Dropout{rate: rate, seed: seed}
}

// Forward applies a new scaled mask when training. At inference it returns a
// copy of input.
func (d *Dropout) Forward(input *tensor.Tensor, training bool) *tensor.Tensor {
	d.forwarded = true
	if !training {
		d.mask = nil
		return input.Clone()
	}

	d.seed++
	d.mask = tensor.Mask(input.Shape(), d.rate, d.seed).Scale(1 / (1 - d.rate))
	return input.MulElem(d.mask)
}

// Backward reapplies the cached mask to grad.
// After an inference Forward there is no mask and grad passes through.
func (d *Dropout) Backward(grad *tensor.Tensor) *tensor.Tensor {
	if !d.forwarded {
		panic(fmt.Errorf("%w: Dropout.Backward called before Forward", ErrUnsupportedOperation))
	}
	if d.mask == nil {
		return grad
	}
	return grad.MulElem(d.mask)
}

// Params returns an empty slice.
func (d *Dropout) Params() []Param {
	return nil
}

// Grad panics: Dropout has no learnable parameters.
func (d *Dropout) Grad(p Param) *tensor.Tensor {
	panic(fmt.Errorf("%w: Dropout does not have learnable parameters (asked for %s gradient)", ErrUnsupportedOperation, p))
}

// Param panics: Dropout has no learnable parameters.
func (d *Dropout) Param(p Param) *tensor.Tensor {
	panic(fmt.Errorf("%w: Dropout does not have learnable parameters (asked for %s)", ErrUnsupportedOperation, p))
}

// Rate returns the drop fraction.
func (d *Dropout) Rate() float64 {
	return d.rate
}

// Info returns a short description.
func (d *Dropout) Info() string {
	return fmt.Sprintf("Dropout(rate=%g)", d.rate)
}
