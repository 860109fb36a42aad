// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package metrics scores classification predictions.
//
// Scores are derived from a confusion matrix whose rows are true classes
// and whose columns are predicted classes. Multi-column tensors are decoded
// with a row-wise argmax, single-column tensors with a 0.5 threshold.
//
// Example:
//
//	cm := metrics.NewConfusionMatrix(yTrue, yPred)
//	fmt.Println(cm.Accuracy(), cm.Recall(1), cm.Precision(1))
package metrics

import (
	"github.com/born-ml/newron/internal/metrics"
	"github.com/born-ml/newron/internal/tensor"
)

// Metric selects a score computed from a confusion matrix.
type Metric = metrics.Metric

// Supported metrics.
const (
	Accuracy       = metrics.Accuracy
	MacroPrecision = metrics.MacroPrecision
	MacroRecall    = metrics.MacroRecall
	MacroF1        = metrics.MacroF1
)

// ConfusionMatrix counts (true, predicted) class pairs.
type ConfusionMatrix = metrics.ConfusionMatrix

// NewConfusionMatrix builds the confusion matrix of yPred against yTrue.
func NewConfusionMatrix(yTrue, yPred *tensor.Tensor) *ConfusionMatrix {
	return metrics.NewConfusionMatrix(yTrue, yPred)
}

// ParseMetric resolves "accuracy", "precision", "recall" or "f1".
func ParseMetric(name string) (Metric, error) {
	return metrics.ParseMetric(name)
}

// Evaluate computes m for yPred against yTrue.
func Evaluate(m Metric, yTrue, yPred *tensor.Tensor) float64 {
	return metrics.Evaluate(m, yTrue, yPred)
}
