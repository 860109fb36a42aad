package optim_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/newron/internal/nn"
	"github.com/born-ml/newron/internal/optim"
	"github.com/born-ml/newron/internal/tensor"
)

// scalarLayer is a single-parameter layer with a settable gradient.
type scalarLayer struct {
	w    *tensor.Tensor
	grad *tensor.Tensor
}

func newScalarLayer(w float64) *scalarLayer {
	return &scalarLayer{w: tensor.New([]float64{w}, tensor.Shape{1, 1})}
}

func (l *scalarLayer) setGrad(g float64) {
	l.grad = tensor.New([]float64{g}, tensor.Shape{1, 1})
}

func (l *scalarLayer) value() float64 { return l.w.Item(0) }

func (l *scalarLayer) Forward(input *tensor.Tensor, _ bool) *tensor.Tensor { return input }
func (l *scalarLayer) Backward(grad *tensor.Tensor) *tensor.Tensor { return grad }
func (l *scalarLayer) Params() []nn.Param { return []nn.Param{nn.Weights} }
func (l *scalarLayer) Grad(nn.Param) *tensor.Tensor { return l.grad }
func (l *scalarLayer) Param(nn.Param) *tensor.Tensor { return l.w }
func (l *scalarLayer) Info() string { return "scalar" }

func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	f()
}

// TestSGD_SimpleUpdate tests a single SGD step.
func TestSGD_SimpleUpdate(t *testing.T) {
	layer := newScalarLayer(2.0)
	layer.setGrad(1.0)

	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1})
	optimizer.Step([]nn.Layer{layer})

	// Expected: x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	if got := layer.value(); math.Abs(got-1.9) > 1e-12 {
		t.Errorf("SGD update: got %f, want %f", got, 1.9)
	}
}

func TestSGD_DenseLayer(t *testing.T) {
	dense := nn.NewDense(3, 2, 1)
	relu := nn.NewReLU()
	layers := []nn.Layer{dense, relu}

	out := relu.Forward(dense.Forward(tensor.Random(tensor.Shape{4, 3}, 2), true), true)
	dense.Backward(relu.Backward(tensor.Ones(out.Shape())))

	weights := dense.Param(nn.Weights).Clone()
	biases := dense.Param(nn.Biases).Clone()

	optim.NewSGD(optim.SGDConfig{LR: 0.5}).Step(layers)

	assert.True(t, dense.Param(nn.Weights).EqualApprox(weights.Sub(dense.Grad(nn.Weights).Scale(0.5)), 1e-12))
	assert.True(t, dense.Param(nn.Biases).EqualApprox(biases.Sub(dense.Grad(nn.Biases).Scale(0.5)), 1e-12))
}

func TestSGD_Defaults(t *testing.T) {
	sgd := optim.NewSGD(optim.SGDConfig{})
	assert.Equal(t, 0.01, sgd.LR())

	sgd.SetLR(0.05)
	assert.Equal(t, 0.05, sgd.LR())

	requirePanicsWith(t, nn.ErrInvalidConfiguration, func() { optim.NewSGD(optim.SGDConfig{LR: -1}) })
}

func TestStep_Errors(t *testing.T) {
	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})

	requirePanicsWith(t, optim.ErrMissingGradient, func() {
		sgd.Step([]nn.Layer{nn.NewDense(2, 2, 1)})
	})

	layer := newScalarLayer(1)
	layer.grad = tensor.Ones(tensor.Shape{1, 2})
	requirePanicsWith(t, tensor.ErrShapeMismatch, func() {
		sgd.Step([]nn.Layer{layer})
	})

	assert.NotPanics(t, func() { sgd.Step([]nn.Layer{nn.NewReLU(), nn.NewSoftmax()}) })
}

// TestAdam_SimpleUpdate checks the first Adam step, where bias correction makes
// the update lr * sign(grad).
func TestAdam_SimpleUpdate(t *testing.T) {
	layer := newScalarLayer(1.0)
	layer.setGrad(0.5)

	adam := optim.NewAdam(optim.AdamConfig{LR: 0.1})
	adam.Step([]nn.Layer{layer})

	assert.InDelta(t, 0.9, layer.value(), 1e-6)
}

func TestAdam_BiasCorrection(t *testing.T) {
	layer := newScalarLayer(0)
	adam := optim.NewAdam(optim.AdamConfig{LR: 0.01})

	// A constant gradient keeps m̂/√v̂ at 1, so every step moves by lr.
	for i := 0; i < 5; i++ {
		layer.setGrad(2.0)
		adam.Step([]nn.Layer{layer})
	}
	assert.InDelta(t, -0.05, layer.value(), 1e-6)
}

func TestAdam_Defaults(t *testing.T) {
	adam := optim.NewAdam(optim.AdamConfig{})
	assert.Equal(t, 0.001, adam.LR())
	adam.SetLR(0.002)
	assert.Equal(t, 0.002, adam.LR())
}

// TestConvergence_SimpleQuadratic minimizes f(x) = (x - 3)².
func TestConvergence_SimpleQuadratic(t *testing.T) {
	optimizers := map[string]optim.Optimizer{
		"sgd":  optim.NewSGD(optim.SGDConfig{LR: 0.1}),
		"adam": optim.NewAdam(optim.AdamConfig{LR: 0.1}),
	}

	for name, optimizer := range optimizers {
		t.Run(name, func(t *testing.T) {
			layer := newScalarLayer(0)
			for i := 0; i < 500; i++ {
				layer.setGrad(2 * (layer.value() - 3))
				optimizer.Step([]nn.Layer{layer})
			}
			assert.InDelta(t, 3.0, layer.value(), 5e-2)
		})
	}
}

func TestByName(t *testing.T) {
	sgd, err := optim.ByName("SGD", 0.2)
	require.NoError(t, err)
	assert.IsType(t, &optim.SGD{}, sgd)
	assert.Equal(t, 0.2, sgd.LR())

	def, err := optim.ByName("", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.01, def.LR())

	adam, err := optim.ByName("adam", 0)
	require.NoError(t, err)
	assert.IsType(t, &optim.Adam{}, adam)

	_, err = optim.ByName("rmsprop", 0.1)
	assert.ErrorIs(t, err, nn.ErrInvalidConfiguration)

	_, err = optim.ByName("sgd", -0.1)
	assert.ErrorIs(t, err, nn.ErrInvalidConfiguration)
}
