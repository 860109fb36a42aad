package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/newron/internal/dataset"
	"github.com/born-ml/newron/internal/metrics"
	"github.com/born-ml/newron/internal/nn"
	"github.com/born-ml/newron/internal/optim"
)

const xorYAML = `
seed: 42
epochs: 50
batch_size: 4
shuffle: true
loss: mse
optimizer: sgd
learning_rate: 0.1
metrics: [accuracy, accuracy, f1]
dataset:
  kind: raw
  rows:
    - [0, 0, 0]
    - [0, 1, 1]
    - [1, 0, 1]
    - [1, 1, 0]
layers:
  - {type: dense, in: 2, out: 8}
  - {type: tanh}
  - {type: dropout, rate: 0.1}
  - {type: dense, in: 8, out: 1}
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, xorYAML))
	require.NoError(t, err)

	assert.Equal(t, uint32(42), cfg.Seed)
	assert.Equal(t, 50, cfg.Epochs)
	assert.Equal(t, 4, cfg.BatchSize)
	assert.True(t, cfg.Shuffle)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, KindRaw, cfg.Dataset.Kind)
	assert.Len(t, cfg.Dataset.Rows, 4)
	assert.Len(t, cfg.Layers, 4)
}

func TestBuilders(t *testing.T) {
	cfg, err := Load(writeConfig(t, xorYAML))
	require.NoError(t, err)

	specs, err := cfg.LayerSpecs()
	require.NoError(t, err)
	assert.Equal(t, []nn.LayerSpec{
		nn.DenseSpec(2, 8),
		nn.TanHSpec(),
		nn.DropoutSpec(0.1),
		nn.DenseSpec(8, 1),
	}, specs)

	loss, err := cfg.BuildLoss()
	require.NoError(t, err)
	assert.Equal(t, nn.MSEName, loss.Name())

	opt, err := cfg.BuildOptimizer()
	require.NoError(t, err)
	assert.IsType(t, &optim.SGD{}, opt)
	assert.Equal(t, 0.1, opt.LR())

	ms, err := cfg.BuildMetrics()
	require.NoError(t, err)
	assert.Equal(t, []metrics.Metric{metrics.Accuracy, metrics.MacroF1}, ms)

	ds, err := cfg.LoadDataset()
	require.NoError(t, err)
	assert.Equal(t, 4, ds.CountRowType(dataset.Train))
	assert.Equal(t, 2, ds.NumberFeatures())
}

func TestLoadDataset_CSVWithSplit(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("a;b;y\n1;2;0\n3;4;1\n5;6;1\n7;8;0\n"), 0o600))

	cfg := &Config{
		Seed:      3,
		Epochs:    1,
		BatchSize: 1,
		Dataset: DatasetConfig{
			Kind:          KindCSV,
			Path:          csvPath,
			Comma:         ";",
			TargetColumns: []string{"y"},
			TestRatio:     0.5,
		},
		Layers: []LayerConfig{{Type: "dense", In: 2, Out: 1}},
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, nn.MSEName, cfg.Loss, "loss defaults to mse")

	ds, err := cfg.LoadDataset()
	require.NoError(t, err)
	assert.Equal(t, 2, ds.CountRowType(dataset.Test))
	assert.Equal(t, 2, ds.CountRowType(dataset.Train))

	cfg.Dataset.Path = filepath.Join(dir, "missing.csv")
	_, err = cfg.LoadDataset()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyOverrides(t *testing.T) {
	cfg := &Config{Epochs: 10, BatchSize: 2, Seed: 1}

	cfg.ApplyOverrides(Overrides{})
	assert.Equal(t, &Config{Epochs: 10, BatchSize: 2, Seed: 1}, cfg)

	cfg.ApplyOverrides(Overrides{Epochs: 5, BatchSize: 8, Seed: 9, Verbose: true})
	assert.Equal(t, 5, cfg.Epochs)
	assert.Equal(t, 8, cfg.BatchSize)
	assert.Equal(t, uint32(9), cfg.Seed)
	assert.True(t, cfg.Verbose)
}

func TestValidate_Errors(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Epochs:    1,
			BatchSize: 1,
			Dataset:   DatasetConfig{Kind: KindRaw, Rows: [][]float64{{1, 2}}},
			Layers:    []LayerConfig{{Type: "dense", In: 1, Out: 1}},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"epochs", func(c *Config) { c.Epochs = 0 }},
		{"batch size", func(c *Config) { c.BatchSize = -1 }},
		{"learning rate", func(c *Config) { c.LearningRate = -0.1 }},
		{"loss", func(c *Config) { c.Loss = "hinge" }},
		{"optimizer", func(c *Config) { c.Optimizer = "rmsprop" }},
		{"metric", func(c *Config) { c.Metrics = []string{"auc"} }},
		{"dataset kind", func(c *Config) { c.Dataset.Kind = "parquet" }},
		{"dataset path", func(c *Config) { c.Dataset = DatasetConfig{Kind: KindCSV} }},
		{"dataset rows", func(c *Config) { c.Dataset.Rows = nil }},
		{"test ratio", func(c *Config) { c.Dataset.TestRatio = 1 }},
		{"comma", func(c *Config) { c.Dataset.Comma = ";;" }},
		{"no layers", func(c *Config) { c.Layers = nil }},
		{"layer type", func(c *Config) { c.Layers[0].Type = "conv2d" }},
		{"dense size", func(c *Config) { c.Layers[0].Out = 0 }},
		{"dense chain", func(c *Config) {
			c.Layers = append(c.Layers, LayerConfig{Type: "relu"}, LayerConfig{Type: "dense", In: 3, Out: 1})
		}},
		{"dropout rate", func(c *Config) { c.Layers = append(c.Layers, LayerConfig{Type: "dropout", Rate: 1}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "epochs: [1, 2]\n"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(writeConfig(t, "epochs: 1\nunknown_key: true\n"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(writeConfig(t, "epochs: 1\nbatch_size: 1\n"))
	assert.ErrorContains(t, err, "dataset.kind")
}
