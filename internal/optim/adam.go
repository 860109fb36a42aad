package optim

import (
	"math"

	"github.com/born-ml/newron/internal/nn"
	"github.com/born-ml/newron/internal/tensor"
)

// Adam implements the Adam optimizer (Adaptive Moment Estimation).
//
// Adam combines ideas from momentum and RMSprop:
//   - Maintains exponential moving average of gradients (first moment)
//   - Maintains exponential moving average of squared gradients (second moment)
//   - Applies bias correction to account for initialization at zero
//
// Update rule:
//
//	m_t = β1 * m_{t-1} + (1 - β1) * g_t
//	v_t = β2 * v_{t-1} + (1 - β2) * g_t²
//	m̂_t = m_t / (1 - β1^t)
//	v̂_t = v_t / (1 - β2^t)
//	θ_t = θ_{t-1} - lr * m̂_t / (√v̂_t + ε)
//
// Moment buffers are keyed by the parameter tensor, so an Adam value must
// stay with the model it was first stepped on. Recompiling a model allocates
// new parameters and therefore starts from fresh moments.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014).
type Adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
	t     int                          // Timestep for bias correction
	m     map[*tensor.Tensor][]float64 // First moment estimates
	v     map[*tensor.Tensor][]float64 // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer.
//
// Example:
//
//	adam := optim.NewAdam(optim.AdamConfig{LR: 0.001})
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
		m:     make(map[*tensor.Tensor][]float64),
		v:     make(map[*tensor.Tensor][]float64),
	}
}

// Step performs a single optimization step.
func (a *Adam) Step(layers []nn.Layer) {
	a.t++

	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(a.t))

	visit(layers, func(param, grad *tensor.Tensor) {
		g := grad.Data()

		m, ok := a.m[param]
		if !ok {
			m = make([]float64, len(g))
			a.m[param] = m
		}
		v, ok := a.v[param]
		if !ok {
			v = make([]float64, len(g))
			a.v[param] = v
		}

		update := make([]float64, len(g))
		for i, gi := range g {
			m[i] = a.beta1*m[i] + (1.0-a.beta1)*gi
			v[i] = a.beta2*v[i] + (1.0-a.beta2)*gi*gi

			mHat := m[i] / biasCorrection1
			vHat := v[i] / biasCorrection2
			update[i] = a.lr * mHat / (math.Sqrt(vHat) + a.eps)
		}

		param.SubAssign(tensor.New(update, param.Shape()))
	})
}

// LR returns the current learning rate.
func (a *Adam) LR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}
