// Package model implements the Sequential training orchestrator.
//
// A Sequential model is built in three steps:
//
//	m := model.New()
//	m.Add(nn.DenseSpec(2, 8))
//	m.Add(nn.TanHSpec())
//	m.Add(nn.DenseSpec(8, 1))
//
//	m.Compile(model.CompileConfig{
//	    Loss:      nn.NewMSE(),
//	    Optimizer: optim.NewSGD(optim.SGDConfig{LR: 0.1}),
//	    Seed:      42,
//	})
//
//	history := m.Fit(ds, model.FitConfig{Epochs: 500, BatchSize: 4})
//
// Compile turns the layer specs into fresh layers. Every seed-consuming
// layer receives the current model seed, which is then incremented; batch
// shuffling keeps drawing from the same counter. A model is therefore fully
// reproducible from its seed.
package model

import (
	"errors"
	"fmt"
	"log"

	"github.com/samber/lo"

	"github.com/born-ml/newron/internal/dataset"
	"github.com/born-ml/newron/internal/metrics"
	"github.com/born-ml/newron/internal/nn"
	"github.com/born-ml/newron/internal/optim"
	"github.com/born-ml/newron/internal/tensor"
)

// Errors raised (as panics) by Sequential.
var (
	ErrNotCompiled = errors.New("model is not compiled")
	ErrEmptyModel  = errors.New("model has no layers")
	ErrEmptyBatch  = errors.New("empty batch")
)

// Dataset is the data source consumed by Fit and Batches.
type Dataset interface {
	Tensor(rows dataset.RowType, cols dataset.ColumnType) *tensor.Tensor
	CountRowType(rows dataset.RowType) int
	RowCount() int
	NumberFeatures() int
	NumberTargets() int
}

// State is the lifecycle stage of a model.
type State int

// Model states.
const (
	Unconfigured State = iota
	Compiled
	Trained
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Unconfigured:
		return "unconfigured"
	case Compiled:
		return "compiled"
	case Trained:
		return "trained"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// CompileConfig holds everything Compile binds to the model.
type CompileConfig struct {
	Loss      nn.Loss         // Required
	Optimizer optim.Optimizer // Required
	Metrics   []metrics.Metric
	Seed      uint32
}

// Sequential is a feed-forward stack of layers trained with backpropagation.
//
// A Sequential is not safe for concurrent use.
type Sequential struct {
	specs  []nn.LayerSpec
	layers []nn.Layer

	loss      nn.Loss
	optimizer optim.Optimizer
	metrics   []metrics.Metric

	seed   uint32
	state  State
	logger *log.Logger
}

// New creates an empty, unconfigured model.
func New() *Sequential {
	return &Sequential{logger: log.Default()}
}

// Add appends a layer spec. It takes effect at the next Compile.
func (m *Sequential) Add(spec nn.LayerSpec) {
	m.specs = append(m.specs, spec)
}

// Compile builds fresh layers from the specs and binds loss, optimizer and
// metrics. Compiling again discards the trained layers.
//
// Panics with ErrEmptyModel when no spec was added and with
// nn.ErrInvalidConfiguration when the loss or optimizer is missing.
func (m *Sequential) Compile(cfg CompileConfig) {
	if len(m.specs) == 0 {
		panic(fmt.Errorf("%w: add layers before compiling", ErrEmptyModel))
	}
	if cfg.Loss == nil || cfg.Optimizer == nil {
		panic(fmt.Errorf("%w: compile needs a loss and an optimizer", nn.ErrInvalidConfiguration))
	}

	seed := cfg.Seed
	m.layers = make([]nn.Layer, 0, len(m.specs))
	for _, spec := range m.specs {
		m.layers = append(m.layers, spec.Build(seed))
		if spec.UsesSeed() {
			seed++
		}
	}

	m.seed = seed
	m.loss = cfg.Loss
	m.optimizer = cfg.Optimizer
	m.metrics = append([]metrics.Metric(nil), cfg.Metrics...)
	m.state = Compiled
}

// ForwardPropagation feeds input through every layer in order.
func (m *Sequential) ForwardPropagation(input *tensor.Tensor, training bool) *tensor.Tensor {
	m.mustBeCompiled()
	return lo.Reduce(m.layers, func(x *tensor.Tensor, layer nn.Layer, _ int) *tensor.Tensor {
		return layer.Forward(x, training)
	}, input)
}

// BackwardPropagation feeds grad through every layer in reverse order and
// returns the gradient with respect to the model input.
func (m *Sequential) BackwardPropagation(grad *tensor.Tensor) *tensor.Tensor {
	m.mustBeCompiled()
	return lo.ReduceRight(m.layers, func(g *tensor.Tensor, layer nn.Layer, _ int) *tensor.Tensor {
		return layer.Backward(g)
	}, grad)
}

// Predict runs inference on a single sample.
func (m *Sequential) Predict(vector []float64) *tensor.Tensor {
	return m.PredictTensor(tensor.New(vector, tensor.Shape{1, len(vector)}))
}

// PredictTensor runs inference on a batch. A vector is treated as one sample.
func (m *Sequential) PredictTensor(input *tensor.Tensor) *tensor.Tensor {
	if input.Rank() == 1 {
		input = input.Reshape(tensor.Shape{1, input.Len()})
	}
	return m.ForwardPropagation(input, false)
}

// Layers returns the compiled layers.
func (m *Sequential) Layers() []nn.Layer {
	return m.layers
}

// State returns the lifecycle stage of the model.
func (m *Sequential) State() State {
	return m.state
}

// Seed returns the next seed the model will hand out.
func (m *Sequential) Seed() uint32 {
	return m.seed
}

// SetLogger replaces the logger used by verbose training.
func (m *Sequential) SetLogger(logger *log.Logger) {
	m.logger = logger
}

func (m *Sequential) mustBeCompiled() {
	if m.state == Unconfigured {
		panic(fmt.Errorf("%w: call Compile first", ErrNotCompiled))
	}
}
