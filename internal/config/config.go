// Package config loads YAML run configurations.
//
// A configuration describes a complete training run: the dataset, the layer
// stack, the loss, the optimizer and the fit parameters.
//
//	seed: 42
//	epochs: 500
//	batch_size: 4
//	loss: mse
//	learning_rate: 0.1
//	dataset:
//	  kind: csv
//	  path: xor.csv
//	layers:
//	  - {type: dense, in: 2, out: 8}
//	  - {type: tanh}
//	  - {type: dense, in: 8, out: 1}
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/newron/internal/nn"
	"github.com/born-ml/newron/internal/optim"
)

// Dataset kinds.
const (
	KindCSV = "csv"
	KindIDX = "idx"
	KindRaw = "raw"
)

// Config captures the knobs of a training run.
type Config struct {
	Seed         uint32        `yaml:"seed"`
	Epochs       int           `yaml:"epochs"`
	BatchSize    int           `yaml:"batch_size"`
	Shuffle      bool          `yaml:"shuffle"`
	Verbose      bool          `yaml:"verbose"`
	Loss         string        `yaml:"loss"`
	Optimizer    string        `yaml:"optimizer"`
	LearningRate float64       `yaml:"learning_rate"`
	Metrics      []string      `yaml:"metrics"`
	Dataset      DatasetConfig `yaml:"dataset"`
	Layers       []LayerConfig `yaml:"layers"`
}

// DatasetConfig describes where the data comes from.
type DatasetConfig struct {
	Kind          string      `yaml:"kind"` // csv, idx or raw
	Path          string      `yaml:"path"` // file for csv, directory for idx
	TargetColumns []string    `yaml:"target_columns"`
	Comma         string      `yaml:"comma"`
	MaxRows       int         `yaml:"max_rows"`
	Train         bool        `yaml:"train"` // idx: load the training files
	TestRatio     float64     `yaml:"test_ratio"`
	Rows          [][]float64 `yaml:"rows"` // raw: inline table, last column is the target
}

// LayerConfig describes one layer.
type LayerConfig struct {
	Type string  `yaml:"type"`
	In   int     `yaml:"in"`
	Out  int     `yaml:"out"`
	Rate float64 `yaml:"rate"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Epochs    int
	BatchSize int
	Seed      uint32
	Verbose   bool
}

// Load reads and validates a Config from YAML.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg := &Config{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.BatchSize > 0 {
		c.BatchSize = o.BatchSize
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Verbose {
		c.Verbose = true
	}
}

// Validate verifies the config is runnable and fills defaults.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be > 0 (got %d)", c.Epochs)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", c.BatchSize)
	}
	if c.LearningRate < 0 {
		return fmt.Errorf("learning_rate must be >= 0 (got %v)", c.LearningRate)
	}
	if c.Loss == "" {
		c.Loss = nn.MSEName
	}
	if _, err := nn.LossByName(c.Loss); err != nil {
		return err
	}
	if _, err := optim.ByName(c.Optimizer, c.LearningRate); err != nil {
		return err
	}
	if _, err := c.BuildMetrics(); err != nil {
		return err
	}
	if err := c.Dataset.validate(); err != nil {
		return err
	}
	if len(c.Layers) == 0 {
		return errors.New("at least one layer must be configured")
	}
	_, err := c.LayerSpecs()
	return err
}

func (d DatasetConfig) validate() error {
	switch d.Kind {
	case KindCSV, KindIDX:
		if d.Path == "" {
			return fmt.Errorf("dataset.path is required for %s datasets", d.Kind)
		}
	case KindRaw:
		if len(d.Rows) == 0 {
			return errors.New("dataset.rows is required for raw datasets")
		}
	default:
		return fmt.Errorf("dataset.kind must be one of %s, %s, %s (got %q)", KindCSV, KindIDX, KindRaw, d.Kind)
	}
	if len([]rune(d.Comma)) > 1 {
		return fmt.Errorf("dataset.comma must be a single character (got %q)", d.Comma)
	}
	if d.TestRatio < 0 || d.TestRatio >= 1 {
		return fmt.Errorf("dataset.test_ratio must be in [0, 1) (got %v)", d.TestRatio)
	}
	return nil
}
