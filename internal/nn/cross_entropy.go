package nn

import (
	"math"

	"github.com/born-ml/newron/internal/tensor"
)

// CategoricalCrossEntropy computes the cross-entropy of one-hot targets.
//
// Softmax is applied to yPred inside the loss, even when the model already
// ends with a Softmax layer, so raw logits and probabilities are both valid
// predictions.
//
//	Loss = mean_i(-log(softmax(yPred)[i, class_i]))
//	∂Loss/∂yPred = (softmax(yPred) - yTrue) / batch_size
//
// Example:
//
//	loss := nn.NewCategoricalCrossEntropy()
//	l := loss.Loss(oneHot, logits)
//	grad := loss.Grad(oneHot, logits)
type CategoricalCrossEntropy struct{}

// NewCategoricalCrossEntropy creates a categorical cross-entropy loss.
func NewCategoricalCrossEntropy() *CategoricalCrossEntropy {
	return &CategoricalCrossEntropy{}
}

// Loss returns the mean negative log-likelihood of the target classes.
func (CategoricalCrossEntropy) Loss(yTrue, yPred *tensor.Tensor) float64 {
	checkedDiff("CategoricalCrossEntropy", yTrue, yPred)

	probs := SoftmaxRows(yPred)
	classes := yTrue.ArgMaxRows()

	var sum float64
	for i, c := range classes {
		sum -= math.Log(math.Max(probs.At(i, c), minProb))
	}
	return sum / float64(len(classes))
}

// Grad returns (softmax(yPred) - yTrue) / batch_size.
func (CategoricalCrossEntropy) Grad(yTrue, yPred *tensor.Tensor) *tensor.Tensor {
	checkedDiff("CategoricalCrossEntropy", yTrue, yPred)

	rows, _ := yPred.Dims()
	return SoftmaxRows(yPred).Sub(yTrue).Scale(1 / float64(rows))
}

// Name returns "categorical_cross_entropy".
func (CategoricalCrossEntropy) Name() string {
	return CategoricalCrossEntropyName
}

// minProb keeps log away from -Inf when a probability underflows to zero.
const minProb = 1e-15
