package tensor

import (
	"math"

	"github.com/born-ml/newron/internal/random"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4})
func Zeros(shape Shape) *Tensor {
	return Full(shape, 0)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones(tensor.Shape{1, 4}) // bias row
func Ones(shape Shape) *Tensor {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = value
	}
	return wrap(data, shape.Clone())
}

// Random creates a tensor with values uniformly distributed in [-1, 1)
// drawn from a generator seeded with seed.
func Random(shape Shape, seed uint32) *Tensor {
	rng := random.New(seed)
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = (rng.Float64() - 0.5) * 2.0
	}
	return t
}

// RandomNormal creates a tensor with values drawn from N(mean, stdev²).
//
// Uses the Box-Muller transform, consuming two uniform draws per value:
//
//	sqrt(-2·ln(u1)) · cos(2π·u2) · stdev + mean
//
// Dense layers use it with stdev = sqrt(2/(fan_in+fan_out)).
func RandomNormal(shape Shape, mean, stdev float64, seed uint32) *Tensor {
	rng := random.New(seed)
	t := Zeros(shape)
	for i := range t.data {
		u1 := rng.Float64()
		u2 := rng.Float64()
		if u1 == 0 {
			u1 = math.SmallestNonzeroFloat64
		}
		z := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
		t.data[i] = z*stdev + mean
	}
	return t
}

// Mask creates a 0/1 tensor holding exactly floor(rate·n) zeros, shuffled
// with a generator seeded with seed.
//
// rate is the fraction of dropped entries. The mask is not rescaled: callers
// implementing inverted dropout multiply it by 1/(1-rate).
//
// Example:
//
//	m := tensor.Mask(tensor.Shape{10, 10}, 0.4, 777) // 40 zeros, 60 ones
func Mask(shape Shape, rate float64, seed uint32) *Tensor {
	t := Ones(shape)
	zeros := int(math.Floor(rate * float64(len(t.data))))
	zeros = min(max(zeros, 0), len(t.data))
	for i := 0; i < zeros; i++ {
		t.data[i] = 0
	}
	random.New(seed).ShuffleFloat64s(t.data)
	return t
}
