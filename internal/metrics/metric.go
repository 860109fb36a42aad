package metrics

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/newron/internal/tensor"
)

// Metric selects a score computed from a confusion matrix.
type Metric int

// Supported metrics. Macro scores average the per-class score over all classes.
const (
	Accuracy Metric = iota
	MacroPrecision
	MacroRecall
	MacroF1
)

var metricNames = []string{
	Accuracy:       "accuracy",
	MacroPrecision: "precision",
	MacroRecall:    "recall",
	MacroF1:        "f1",
}

// String returns the configuration name of m.
func (m Metric) String() string {
	if int(m) >= 0 && int(m) < len(metricNames) {
		return metricNames[m]
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric resolves a configuration name (case-insensitive).
func ParseMetric(name string) (Metric, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range metricNames {
		if n == name {
			return Metric(m), nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q", name)
}

// Score computes m on an existing confusion matrix.
func (m Metric) Score(cm *ConfusionMatrix) float64 {
	var perClass func(int) float64
	switch m {
	case Accuracy:
		return cm.Accuracy()
	case MacroPrecision:
		perClass = cm.Precision
	case MacroRecall:
		perClass = cm.Recall
	case MacroF1:
		perClass = cm.F1
	default:
		panic(fmt.Sprintf("metrics: unknown metric %d", int(m)))
	}

	scores := make([]float64, cm.Classes())
	for c := range scores {
		scores[c] = perClass(c)
	}
	return floats.Sum(scores) / float64(len(scores))
}

// Evaluate computes m for yPred against yTrue.
func Evaluate(m Metric, yTrue, yPred *tensor.Tensor) float64 {
	return m.Score(NewConfusionMatrix(yTrue, yPred))
}
