// Package dataset holds tabular training data.
//
// A Dataset is a matrix of float64 values with a header. Every row is tagged
// Train, Test or SkipRow and every column Feature, Target or SkipColumn, so a
// single table can be sliced into the four tensors a training run needs.
//
// Example:
//
//	ds, err := dataset.FromCSV("wine.csv", dataset.CSVOptions{TargetColumns: []string{"quality"}})
//	if err != nil {
//	    return err
//	}
//	ds.SplitTrainTest(0.2, 42)
//	x := ds.Tensor(dataset.Train, dataset.Feature)
package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/born-ml/newron/internal/random"
	"github.com/born-ml/newron/internal/tensor"
)

// Errors returned by loaders.
var (
	ErrEmptyData = errors.New("empty dataset")
	ErrBadFormat = errors.New("bad dataset format")
)

// RowType tags how a row is used.
type RowType int

// Row types.
const (
	Train RowType = iota
	Test
	SkipRow
)

// String returns the row type name.
func (t RowType) String() string {
	switch t {
	case Train:
		return "train"
	case Test:
		return "test"
	case SkipRow:
		return "skip"
	default:
		return fmt.Sprintf("RowType(%d)", int(t))
	}
}

// ColumnType tags how a column is used.
type ColumnType int

// Column types.
const (
	Feature ColumnType = iota
	Target
	SkipColumn
)

// String returns the column type name.
func (t ColumnType) String() string {
	switch t {
	case Feature:
		return "feature"
	case Target:
		return "target"
	case SkipColumn:
		return "skip"
	default:
		return fmt.Sprintf("ColumnType(%d)", int(t))
	}
}

// Dataset is an in-memory table of numeric values.
type Dataset struct {
	data     [][]float64
	header   []string
	rowTypes []RowType
	colTypes []ColumnType
}

// FromRawData builds a dataset from rows of equal length.
//
// The last column is the target, the others are features named X_0..X_n
// and every row is a training row. The rows are copied.
func FromRawData(data [][]float64) (*Dataset, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, ErrEmptyData
	}

	cols := len(data[0])
	header := lo.Times(cols, func(i int) string {
		return fmt.Sprintf("X_%d", i)
	})
	header[cols-1] = "Y"

	colTypes := lo.Times(cols, func(int) ColumnType { return Feature })
	colTypes[cols-1] = Target

	return newDataset(data, header, colTypes)
}

// newDataset validates the table and copies it.
func newDataset(data [][]float64, header []string, colTypes []ColumnType) (*Dataset, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	rows := make([][]float64, len(data))
	for i, row := range data {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrBadFormat, i, len(row), len(header))
		}
		rows[i] = append([]float64(nil), row...)
	}

	return &Dataset{
		data:     rows,
		header:   header,
		rowTypes: make([]RowType, len(rows)),
		colTypes: colTypes,
	}, nil
}

// SplitTrainTest shuffles the rows with seed and marks the first
// floor(testRatio*n) of them Test and the rest Train.
// Rows tagged SkipRow are reset as well.
func (d *Dataset) SplitTrainTest(testRatio float64, seed uint32) error {
	if testRatio < 0 || testRatio >= 1 {
		return fmt.Errorf("%w: test ratio %v must be in [0, 1)", ErrBadFormat, testRatio)
	}

	indices := lo.Range(len(d.data))
	random.New(seed).ShuffleInts(indices)

	nTest := int(testRatio * float64(len(indices)))
	for i, idx := range indices {
		if i < nTest {
			d.rowTypes[idx] = Test
		} else {
			d.rowTypes[idx] = Train
		}
	}
	return nil
}

// SetColumnType changes the type of the column called name.
func (d *Dataset) SetColumnType(name string, t ColumnType) error {
	idx := lo.IndexOf(d.header, name)
	if idx < 0 {
		return fmt.Errorf("%w: no column %q", ErrBadFormat, name)
	}
	d.colTypes[idx] = t
	return nil
}

// SetRowType changes the type of row i.
func (d *Dataset) SetRowType(i int, t RowType) error {
	if i < 0 || i >= len(d.rowTypes) {
		return fmt.Errorf("%w: row %d out of range [0, %d)", ErrBadFormat, i, len(d.rowTypes))
	}
	d.rowTypes[i] = t
	return nil
}

// Header returns the column names.
func (d *Dataset) Header() []string {
	return append([]string(nil), d.header...)
}

// Tensor returns the [rows, cols] slice of the rows of type rows and the
// columns of type cols, in table order. It returns nil when the selection
// is empty.
func (d *Dataset) Tensor(rows RowType, cols ColumnType) *tensor.Tensor {
	rowIdx := lo.Filter(lo.Range(len(d.data)), func(i, _ int) bool { return d.rowTypes[i] == rows })
	colIdx := lo.Filter(lo.Range(len(d.header)), func(j, _ int) bool { return d.colTypes[j] == cols })
	if len(rowIdx) == 0 || len(colIdx) == 0 {
		return nil
	}

	values := make([]float64, 0, len(rowIdx)*len(colIdx))
	for _, i := range rowIdx {
		for _, j := range colIdx {
			values = append(values, d.data[i][j])
		}
	}
	return tensor.New(values, tensor.Shape{len(rowIdx), len(colIdx)})
}

// CountRowType returns the number of rows of type t.
func (d *Dataset) CountRowType(t RowType) int {
	return lo.Count(d.rowTypes, t)
}

// RowCount returns the number of rows.
func (d *Dataset) RowCount() int {
	return len(d.data)
}

// NumberFeatures returns the number of Feature columns.
func (d *Dataset) NumberFeatures() int {
	return lo.Count(d.colTypes, Feature)
}

// NumberTargets returns the number of Target columns.
func (d *Dataset) NumberTargets() int {
	return lo.Count(d.colTypes, Target)
}

// String shows the header and the first rows.
func (d *Dataset) String() string {
	const preview = 3

	var sb strings.Builder
	sb.WriteString(strings.Join(d.header, "\t"))
	sb.WriteString("\n")
	for _, row := range d.data[:min(preview, len(d.data))] {
		sb.WriteString(strings.Join(lo.Map(row, func(v float64, _ int) string {
			return fmt.Sprintf("%.3g", v)
		}), "\t"))
		sb.WriteString("\n")
	}
	if len(d.data) > preview {
		fmt.Fprintf(&sb, "... (%d rows)\n", len(d.data))
	}
	return sb.String()
}
