package dataset

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// IDX magic numbers.
const (
	idxImagesMagic = 2051
	idxLabelsMagic = 2049

	// mnistClasses is the number of one-hot label columns FromIDX produces.
	mnistClasses = 10

	maxIDXSide  = 1 << 12
	idxPrealloc = 1 << 16
)

// FromIDX loads an MNIST-style dataset from the official IDX binary files.
//
// Parameters:
//   - dir: Directory containing the IDX files
//   - train: If true, load train-*-idx?-ubyte, else t10k-*-idx?-ubyte
//   - maxSamples: Maximum number of samples to load (0 = load all)
//
// Pixels are scaled to [0, 1] feature columns named px_0..px_n and labels are
// one-hot encoded into ten target columns named y_0..y_9.
func FromIDX(dir string, train bool, maxSamples int) (*Dataset, error) {
	prefix := "t10k"
	if train {
		prefix = "train"
	}

	images, err := readIDXImages(filepath.Join(dir, prefix+"-images-idx3-ubyte"), maxSamples)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}
	labels, err := readIDXLabels(filepath.Join(dir, prefix+"-labels-idx1-ubyte"), maxSamples)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}
	if len(images) != len(labels) {
		return nil, fmt.Errorf("%w: image count (%d) != label count (%d)", ErrBadFormat, len(images), len(labels))
	}
	if len(images) == 0 {
		return nil, ErrEmptyData
	}

	numSamples := len(images)

	pixels := len(images[0])
	header := make([]string, 0, pixels+mnistClasses)
	colTypes := make([]ColumnType, 0, pixels+mnistClasses)
	for j := 0; j < pixels; j++ {
		header = append(header, fmt.Sprintf("px_%d", j))
		colTypes = append(colTypes, Feature)
	}
	for c := 0; c < mnistClasses; c++ {
		header = append(header, fmt.Sprintf("y_%d", c))
		colTypes = append(colTypes, Target)
	}

	data := make([][]float64, numSamples)
	for i := range data {
		if labels[i] >= mnistClasses {
			return nil, fmt.Errorf("%w: label out of range [0, 9] at sample %d: %d", ErrBadFormat, i, labels[i])
		}
		row := make([]float64, pixels+mnistClasses)
		for j, px := range images[i] {
			row[j] = float64(px) / 255.0
		}
		row[pixels+int(labels[i])] = 1
		data[i] = row
	}

	return newDataset(data, header, colTypes)
}

// readIDXImages reads an image file in IDX format.
//
// IDX file format for images:
//
//	magic number: 0x00000803 (2051)
//	number of images: 4 bytes
//	number of rows: 4 bytes
//	number of cols: 4 bytes
//	pixel data: unsigned bytes (0-255)
//
// At most limit images are read when limit > 0.
func readIDXImages(filename string, limit int) ([][]byte, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var hdr struct {
		Magic, Count, Rows, Cols uint32
	}
	if err := binary.Read(file, binary.BigEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", ErrBadFormat, err)
	}
	if hdr.Magic != idxImagesMagic {
		return nil, fmt.Errorf("%w: invalid magic number: got %d, want %d", ErrBadFormat, hdr.Magic, idxImagesMagic)
	}

	if hdr.Rows == 0 || hdr.Cols == 0 || hdr.Rows > maxIDXSide || hdr.Cols > maxIDXSide {
		return nil, fmt.Errorf("%w: invalid image size %dx%d", ErrBadFormat, hdr.Rows, hdr.Cols)
	}

	count := capCount(hdr.Count, limit)
	imageSize := int(hdr.Rows * hdr.Cols)

	// The header is not trusted: grow with the data actually read.
	images := make([][]byte, 0, min(count, idxPrealloc))
	for i := 0; i < count; i++ {
		img := make([]byte, imageSize)
		if _, err := io.ReadFull(file, img); err != nil {
			return nil, fmt.Errorf("%w: failed to read image %d of %d: %w", ErrBadFormat, i, count, err)
		}
		images = append(images, img)
	}

	return images, nil
}

// readIDXLabels reads a label file in IDX format.
//
// IDX file format for labels:
//
//	magic number: 0x00000801 (2049)
//	number of labels: 4 bytes
//	label data: unsigned bytes
//
// At most limit labels are read when limit > 0.
func readIDXLabels(filename string, limit int) ([]byte, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var hdr struct {
		Magic, Count uint32
	}
	if err := binary.Read(file, binary.BigEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", ErrBadFormat, err)
	}
	if hdr.Magic != idxLabelsMagic {
		return nil, fmt.Errorf("%w: invalid magic number: got %d, want %d", ErrBadFormat, hdr.Magic, idxLabelsMagic)
	}

	count := capCount(hdr.Count, limit)
	labels, err := io.ReadAll(io.LimitReader(file, int64(count)))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read labels: %w", ErrBadFormat, err)
	}
	if len(labels) != count {
		return nil, fmt.Errorf("%w: header announces %d labels, file holds %d", ErrBadFormat, count, len(labels))
	}

	return labels, nil
}

// capCount returns the header count, limited to limit when limit > 0.
func capCount(count uint32, limit int) int {
	n := int(count)
	if limit > 0 && n > limit {
		return limit
	}
	return n
}
