package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/newron/internal/dataset"
	"github.com/born-ml/newron/internal/metrics"
	"github.com/born-ml/newron/internal/nn"
	"github.com/born-ml/newron/internal/random"
	"github.com/born-ml/newron/internal/tensor"
)

// Batch is one mini-batch of training rows.
type Batch struct {
	Features *tensor.Tensor // [batch_size, features]
	Targets  *tensor.Tensor // [batch_size, targets]
}

// FitConfig configures Fit.
type FitConfig struct {
	Epochs    int  // Number of passes over the training rows (> 0)
	BatchSize int  // Rows per batch, in [1, train rows]
	Shuffle   bool // Shuffle rows before every epoch
	Verbose   bool // Log one line per epoch
}

// History records a training run.
type History struct {
	RunID    string
	Loss     []float64            // mean training loss per epoch
	TestLoss []float64            // loss on the Test rows per epoch, if any
	Metrics  map[string][]float64 // metric name -> score on the Test rows per epoch
}

// Batches splits the training rows of ds into batches of batchSize rows.
//
// With shuffle the row order is permuted with the model seed, which is then
// incremented. A trailing batch with fewer than batchSize rows is dropped.
//
// Panics with ErrEmptyBatch when batchSize is not in [1, train rows].
func (m *Sequential) Batches(ds Dataset, batchSize int, shuffle bool) []Batch {
	n := ds.CountRowType(dataset.Train)
	if batchSize <= 0 || batchSize > n {
		panic(fmt.Errorf("%w: batch size %d with %d training rows", ErrEmptyBatch, batchSize, n))
	}

	x := ds.Tensor(dataset.Train, dataset.Feature)
	y := ds.Tensor(dataset.Train, dataset.Target)
	if x == nil || y == nil {
		panic(fmt.Errorf("%w: dataset needs feature and target columns", ErrEmptyBatch))
	}

	indices := lo.Range(n)
	if shuffle {
		random.New(m.seed).ShuffleInts(indices)
		m.seed++
	}

	chunks := lo.Filter(lo.Chunk(indices, batchSize), func(chunk []int, _ int) bool {
		return len(chunk) == batchSize
	})
	return lo.Map(chunks, func(chunk []int, _ int) Batch {
		return Batch{Features: x.Rows(chunk), Targets: y.Rows(chunk)}
	})
}

// TrainBatch runs one forward/backward/update cycle and returns the batch loss.
func (m *Sequential) TrainBatch(b Batch) float64 {
	out := m.ForwardPropagation(b.Features, true)
	loss := m.loss.Loss(b.Targets, out)
	m.BackwardPropagation(m.loss.Grad(b.Targets, out))
	m.optimizer.Step(m.layers)
	return loss
}

// Evaluate runs inference on x and scores it against y with the compiled
// loss and metrics.
func (m *Sequential) Evaluate(x, y *tensor.Tensor) (loss float64, scores map[string]float64) {
	pred := m.PredictTensor(x)
	scores = make(map[string]float64, len(m.metrics))
	for _, metric := range m.metrics {
		scores[metric.String()] = metrics.Evaluate(metric, y, pred)
	}
	return m.loss.Loss(y, pred), scores
}

// Fit trains the model on the Train rows of ds.
//
// Each epoch runs every batch through TrainBatch and records the mean batch
// loss. When ds has Test rows the model is also evaluated on them after
// every epoch.
func (m *Sequential) Fit(ds Dataset, cfg FitConfig) *History {
	m.mustBeCompiled()
	if cfg.Epochs <= 0 {
		panic(fmt.Errorf("%w: epochs must be > 0, got %d", nn.ErrInvalidConfiguration, cfg.Epochs))
	}

	history := &History{
		RunID:   uuid.NewString(),
		Metrics: make(map[string][]float64, len(m.metrics)),
	}

	var testX, testY *tensor.Tensor
	if ds.CountRowType(dataset.Test) > 0 {
		testX = ds.Tensor(dataset.Test, dataset.Feature)
		testY = ds.Tensor(dataset.Test, dataset.Target)
	}

	if cfg.Verbose {
		m.logger.Printf("run=%s train_rows=%d test_rows=%d epochs=%d batch_size=%d",
			history.RunID, ds.CountRowType(dataset.Train), ds.CountRowType(dataset.Test), cfg.Epochs, cfg.BatchSize)
	}

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		start := time.Now()

		batches := m.Batches(ds, cfg.BatchSize, cfg.Shuffle)
		losses := make([]float64, 0, len(batches))
		for _, b := range batches {
			losses = append(losses, m.TrainBatch(b))
		}
		epochLoss := floats.Sum(losses) / float64(len(losses))
		history.Loss = append(history.Loss, epochLoss)
		m.state = Trained

		line := fmt.Sprintf("run=%s epoch=%d loss=%.4f", history.RunID, epoch, epochLoss)
		if testX != nil && testY != nil {
			testLoss, scores := m.Evaluate(testX, testY)
			history.TestLoss = append(history.TestLoss, testLoss)
			line += fmt.Sprintf(" test_loss=%.4f", testLoss)
			for _, metric := range m.metrics {
				name := metric.String()
				history.Metrics[name] = append(history.Metrics[name], scores[name])
				line += fmt.Sprintf(" %s=%.4f", name, scores[name])
			}
		}

		if cfg.Verbose {
			m.logger.Printf("%s elapsed_ms=%.2f", line, float64(time.Since(start).Microseconds())/1000)
		}
	}

	return history
}
