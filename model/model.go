// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package model provides the Sequential training orchestrator.
//
// Example:
//
//	m := model.New()
//	m.Add(nn.Dense(2, 8))
//	m.Add(nn.TanH())
//	m.Add(nn.Dense(8, 1))
//	m.Compile(model.CompileConfig{
//	    Loss:      nn.NewMSE(),
//	    Optimizer: optim.NewSGD(optim.SGDConfig{LR: 0.1}),
//	    Seed:      42,
//	})
//
//	ds, _ := dataset.FromRawData(rows)
//	history := m.Fit(ds, model.FitConfig{Epochs: 500, BatchSize: 4})
//	fmt.Println(history.Loss[len(history.Loss)-1])
package model

import (
	"github.com/born-ml/newron/internal/model"
)

// Sequential is a feed-forward stack of layers trained with backpropagation.
type Sequential = model.Sequential

// CompileConfig binds loss, optimizer, metrics and seed to a model.
type CompileConfig = model.CompileConfig

// FitConfig configures a training run.
type FitConfig = model.FitConfig

// History records a training run.
type History = model.History

// Batch is one mini-batch of training rows.
type Batch = model.Batch

// Dataset is the data source consumed by Fit.
type Dataset = model.Dataset

// State is the lifecycle stage of a model.
type State = model.State

// Model states.
const (
	Unconfigured = model.Unconfigured
	Compiled     = model.Compiled
	Trained      = model.Trained
)

// Errors wrapped by model panics.
var (
	ErrNotCompiled = model.ErrNotCompiled
	ErrEmptyModel  = model.ErrEmptyModel
	ErrEmptyBatch  = model.ErrEmptyBatch
)

// New creates an empty model.
func New() *Sequential {
	return model.New()
}
