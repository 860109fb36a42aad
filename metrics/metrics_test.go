// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/newron/metrics"
	"github.com/born-ml/newron/tensor"
)

func TestEvaluate(t *testing.T) {
	yTrue := tensor.FromRows([][]float64{{1, 0}, {1, 0}, {0, 1}, {0, 1}})
	yPred := tensor.FromRows([][]float64{{0.9, 0.1}, {0.2, 0.8}, {0.3, 0.7}, {0.1, 0.9}})

	assert.InDelta(t, 0.75, metrics.Evaluate(metrics.Accuracy, yTrue, yPred), 1e-12)
	assert.InDelta(t, 0.75, metrics.NewConfusionMatrix(yTrue, yPred).Accuracy(), 1e-12)

	m, err := metrics.ParseMetric("f1")
	assert.NoError(t, err)
	assert.Equal(t, metrics.MacroF1, m)
}
