// Package metrics evaluates classification predictions.
//
// Predictions and targets are [batch, classes] tensors. Each row is decoded
// to a class index with argmax, so both one-hot targets and probability
// outputs are accepted. Single-column tensors are treated as binary outputs
// thresholded at 0.5.
package metrics

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/newron/internal/tensor"
)

// BinaryThreshold splits single-column outputs into class 0 and class 1.
const BinaryThreshold = 0.5

// ConfusionMatrix counts predictions per (true class, predicted class).
//
// Row i holds the samples whose true class is i, column j the samples
// predicted as j. The diagonal holds the correct predictions.
type ConfusionMatrix struct {
	counts *mat.Dense
}

// NewConfusionMatrix builds the confusion matrix of yPred against yTrue.
//
// Panics with tensor.ErrShapeMismatch when the shapes differ.
func NewConfusionMatrix(yTrue, yPred *tensor.Tensor) *ConfusionMatrix {
	if !yTrue.Shape().Equal(yPred.Shape()) {
		panic(fmt.Errorf("%w: confusion matrix: targets %v and predictions %v",
			tensor.ErrShapeMismatch, yTrue.Shape(), yPred.Shape()))
	}

	trueClasses, classes := decode(yTrue)
	predClasses, _ := decode(yPred)

	counts := mat.NewDense(classes, classes, nil)
	for i, c := range trueClasses {
		p := predClasses[i]
		counts.Set(c, p, counts.At(c, p)+1)
	}
	return &ConfusionMatrix{counts: counts}
}

// decode returns the class index of each row and the number of classes.
func decode(t *tensor.Tensor) ([]int, int) {
	rows, cols := t.Dims()
	if cols > 1 {
		return t.ArgMaxRows(), cols
	}

	classes := make([]int, rows)
	for i := range classes {
		if t.At(i, 0) >= BinaryThreshold {
			classes[i] = 1
		}
	}
	return classes, 2
}

// Classes returns the number of classes.
func (cm *ConfusionMatrix) Classes() int {
	n, _ := cm.counts.Dims()
	return n
}

// At returns the number of samples of true class i predicted as j.
func (cm *ConfusionMatrix) At(i, j int) int {
	return int(cm.counts.At(i, j))
}

// Counts returns the matrix as integer rows.
func (cm *ConfusionMatrix) Counts() [][]int {
	n := cm.Classes()
	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, n)
		for j := range out[i] {
			out[i][j] = cm.At(i, j)
		}
	}
	return out
}

// Total returns the number of samples.
func (cm *ConfusionMatrix) Total() int {
	return int(mat.Sum(cm.counts))
}

// Accuracy returns the fraction of correct predictions.
func (cm *ConfusionMatrix) Accuracy() float64 {
	return ratio(mat.Trace(cm.counts), mat.Sum(cm.counts))
}

// Recall returns the fraction of samples of class c that were predicted as c.
func (cm *ConfusionMatrix) Recall(c int) float64 {
	return ratio(cm.counts.At(c, c), mat.Sum(cm.counts.RowView(c)))
}

// Precision returns the fraction of predictions of class c that were right.
func (cm *ConfusionMatrix) Precision(c int) float64 {
	return ratio(cm.counts.At(c, c), mat.Sum(cm.counts.ColView(c)))
}

// F1 returns the harmonic mean of Precision(c) and Recall(c).
func (cm *ConfusionMatrix) F1(c int) float64 {
	p, r := cm.Precision(c), cm.Recall(c)
	return ratio(2*p*r, p+r)
}

// String renders the matrix with true classes as rows.
func (cm *ConfusionMatrix) String() string {
	var sb strings.Builder
	for _, row := range cm.Counts() {
		sb.WriteString(strings.Trim(fmt.Sprint(row), "[]"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// ratio returns num/den, or 0 when den is 0.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
