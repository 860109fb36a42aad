// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/newron/dataset"
	"github.com/born-ml/newron/metrics"
	"github.com/born-ml/newron/model"
	"github.com/born-ml/newron/nn"
	"github.com/born-ml/newron/optim"
	"github.com/born-ml/newron/tensor"
)

func TestTrainThroughPublicAPI(t *testing.T) {
	ds, err := dataset.FromRawData([][]float64{{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 0}})
	require.NoError(t, err)
	require.NoError(t, ds.SplitTrainTest(0.5, 1))

	m := model.New()
	m.Add(nn.Dense(2, 4))
	m.Add(nn.TanH())
	m.Add(nn.Dense(4, 1))
	m.Compile(model.CompileConfig{
		Loss:      nn.NewMSE(),
		Optimizer: optim.NewAdam(optim.AdamConfig{LR: 0.01}),
		Metrics:   []metrics.Metric{metrics.Accuracy},
		Seed:      3,
	})

	history := m.Fit(ds, model.FitConfig{Epochs: 10, BatchSize: 2})
	assert.Len(t, history.Loss, 10)
	assert.Len(t, history.TestLoss, 10)
	assert.Len(t, history.Metrics["accuracy"], 10)
	assert.Equal(t, model.Trained, m.State())
	assert.Equal(t, tensor.Shape{1, 1}, m.Predict([]float64{1, 0}).Shape())
}
