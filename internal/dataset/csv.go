package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// CSVOptions configures FromCSV.
type CSVOptions struct {
	// TargetColumns names the target columns. Empty selects the last column.
	TargetColumns []string

	// Comma is the field delimiter (default: ',').
	Comma rune

	// MaxRows limits the number of data rows read (0 = all).
	MaxRows int
}

// FromCSV loads a CSV file whose first row is a header and whose other rows
// are numeric.
//
// CSV Format:
//
//	fixed acidity,volatile acidity,...,quality
//	7.4,0.7,...,5
//
// Columns named in opts.TargetColumns become targets, the others features.
func FromCSV(path string, opts CSVOptions) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read CSV: %w", ErrBadFormat, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: %s has no data rows", ErrEmptyData, path)
	}

	header := lo.Map(records[0], func(name string, _ int) string { return strings.TrimSpace(name) })
	records = records[1:]
	if opts.MaxRows > 0 && len(records) > opts.MaxRows {
		records = records[:opts.MaxRows]
	}

	data := make([][]float64, len(records))
	for i, record := range records {
		data[i] = make([]float64, len(record))
		for j, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, column %q: %w", ErrBadFormat, i+1, header[min(j, len(header)-1)], err)
			}
			data[i][j] = v
		}
	}

	colTypes := lo.Times(len(header), func(int) ColumnType { return Feature })
	if len(opts.TargetColumns) == 0 {
		colTypes[len(colTypes)-1] = Target
	}
	for _, name := range opts.TargetColumns {
		idx := lo.IndexOf(header, name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: target column %q not in header", ErrBadFormat, name)
		}
		colTypes[idx] = Target
	}

	return newDataset(data, header, colTypes)
}
