// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset loads tabular training data for newron models.
//
// # Overview
//
// A Dataset is a matrix of float64 rows with one tag per row (Train, Test
// or SkipRow) and one tag per column (Feature, Target or SkipColumn).
// Sources:
//   - FromRawData: in-memory rows, last column is the target
//   - FromCSV: a CSV file with a header line
//   - FromIDX: MNIST-style IDX image and label files
//
// # Basic Usage
//
//	ds, err := dataset.FromCSV("iris.csv", dataset.CSVOptions{
//	    TargetColumns: []string{"setosa", "versicolor", "virginica"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := ds.SplitTrainTest(0.2, 42); err != nil {
//	    log.Fatal(err)
//	}
package dataset

import (
	"github.com/born-ml/newron/internal/dataset"
)

// Dataset is a tagged matrix of samples.
type Dataset = dataset.Dataset

// CSVOptions configures FromCSV.
type CSVOptions = dataset.CSVOptions

// RowType tags how a row is used.
type RowType = dataset.RowType

// ColumnType tags how a column is used.
type ColumnType = dataset.ColumnType

// Row types.
const (
	Train   = dataset.Train
	Test    = dataset.Test
	SkipRow = dataset.SkipRow
)

// Column types.
const (
	Feature    = dataset.Feature
	Target     = dataset.Target
	SkipColumn = dataset.SkipColumn
)

// Errors returned by the loaders.
var (
	ErrEmptyData = dataset.ErrEmptyData
	ErrBadFormat = dataset.ErrBadFormat
)

// FromRawData builds a dataset whose last column is the target.
func FromRawData(rows [][]float64) (*Dataset, error) {
	return dataset.FromRawData(rows)
}

// FromCSV loads a CSV file with a header line.
func FromCSV(path string, opts CSVOptions) (*Dataset, error) {
	return dataset.FromCSV(path, opts)
}

// FromIDX loads the MNIST training (train=true) or test files found in dir.
// maxSamples limits the number of rows read; 0 reads all of them.
func FromIDX(dir string, train bool, maxSamples int) (*Dataset, error) {
	return dataset.FromIDX(dir, train, maxSamples)
}
