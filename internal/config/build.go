package config

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/born-ml/newron/internal/dataset"
	"github.com/born-ml/newron/internal/metrics"
	"github.com/born-ml/newron/internal/nn"
	"github.com/born-ml/newron/internal/optim"
)

// LayerSpecs converts the layer list into specs.
//
// Dense layers must chain: each one takes as many inputs as the previous
// Dense layer produces.
func (c *Config) LayerSpecs() ([]nn.LayerSpec, error) {
	specs := make([]nn.LayerSpec, 0, len(c.Layers))
	width := 0
	for i, l := range c.Layers {
		kind, err := nn.ParseLayerKind(l.Type)
		if err != nil {
			return nil, fmt.Errorf("layers[%d]: %w", i, err)
		}

		switch kind {
		case nn.KindDense:
			if l.In <= 0 || l.Out <= 0 {
				return nil, fmt.Errorf("layers[%d]: dense needs in > 0 and out > 0 (got %d, %d)", i, l.In, l.Out)
			}
			if width != 0 && l.In != width {
				return nil, fmt.Errorf("layers[%d]: dense expects %d inputs but the previous layer produces %d", i, l.In, width)
			}
			width = l.Out
			specs = append(specs, nn.DenseSpec(l.In, l.Out))
		case nn.KindDropout:
			if l.Rate < 0 || 1-l.Rate < nn.MinKeepProb {
				return nil, fmt.Errorf("layers[%d]: dropout rate must be in [0, %v] (got %v)", i, 1-nn.MinKeepProb, l.Rate)
			}
			specs = append(specs, nn.DropoutSpec(l.Rate))
		default:
			specs = append(specs, nn.LayerSpec{Kind: kind})
		}
	}
	return specs, nil
}

// BuildLoss resolves the configured loss.
func (c *Config) BuildLoss() (nn.Loss, error) {
	return nn.LossByName(c.Loss)
}

// BuildOptimizer resolves the configured optimizer with its learning rate.
func (c *Config) BuildOptimizer() (optim.Optimizer, error) {
	return optim.ByName(c.Optimizer, c.LearningRate)
}

// BuildMetrics resolves the configured metric names.
func (c *Config) BuildMetrics() ([]metrics.Metric, error) {
	out := make([]metrics.Metric, 0, len(c.Metrics))
	for _, name := range lo.Uniq(c.Metrics) {
		m, err := metrics.ParseMetric(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// LoadDataset loads the configured dataset and applies the train/test split.
func (c *Config) LoadDataset() (*dataset.Dataset, error) {
	d := c.Dataset

	var (
		ds  *dataset.Dataset
		err error
	)
	switch d.Kind {
	case KindCSV:
		opts := dataset.CSVOptions{TargetColumns: d.TargetColumns, MaxRows: d.MaxRows}
		if d.Comma != "" {
			opts.Comma = []rune(d.Comma)[0]
		}
		ds, err = dataset.FromCSV(d.Path, opts)
	case KindIDX:
		ds, err = dataset.FromIDX(d.Path, d.Train, d.MaxRows)
	case KindRaw:
		ds, err = dataset.FromRawData(d.Rows)
	default:
		err = fmt.Errorf("unknown dataset kind %q", d.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	if d.TestRatio > 0 {
		if err := ds.SplitTrainTest(d.TestRatio, c.Seed); err != nil {
			return nil, err
		}
	}
	return ds, nil
}
