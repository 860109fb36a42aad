package nn

import (
	"fmt"
	"strings"
)

// LayerKind enumerates the layers a LayerSpec can describe.
type LayerKind int

// Layer kinds.
const (
	KindDense LayerKind = iota
	KindReLU
	KindSigmoid
	KindTanH
	KindSoftmax
	KindDropout
)

var layerKindNames = map[LayerKind]string{
	KindDense:   "dense",
	KindReLU:    "relu",
	KindSigmoid: "sigmoid",
	KindTanH:    "tanh",
	KindSoftmax: "softmax",
	KindDropout: "dropout",
}

// String returns the configuration name of the kind.
func (k LayerKind) String() string {
	if name, ok := layerKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("LayerKind(%d)", int(k))
}

// ParseLayerKind resolves a configuration name (case-insensitive).
func ParseLayerKind(name string) (LayerKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, n := range layerKindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown layer type %q", ErrInvalidConfiguration, name)
}

// LayerSpec declares a layer without allocating it.
//
// A model stores specs and turns them into fresh layers every time it is
// compiled, so recompiling restarts training from newly initialized weights.
//
// Example:
//
//	specs := []nn.LayerSpec{
//		nn.DenseSpec(2, 8),
//		nn.TanHSpec(),
//		nn.DenseSpec(8, 1),
//	}
type LayerSpec struct {
	Kind    LayerKind
	Inputs  int     // Dense only
	Outputs int     // Dense only
	Rate    float64 // Dropout only
}

// DenseSpec describes a Dense layer with in inputs and out outputs.
func DenseSpec(in, out int) LayerSpec {
	return LayerSpec{Kind: KindDense, Inputs: in, Outputs: out}
}

// ReLUSpec describes a ReLU activation.
func ReLUSpec() LayerSpec { return LayerSpec{Kind: KindReLU} }

// SigmoidSpec describes a Sigmoid activation.
func SigmoidSpec() LayerSpec { return LayerSpec{Kind: KindSigmoid} }

// TanHSpec describes a TanH activation.
func TanHSpec() LayerSpec { return LayerSpec{Kind: KindTanH} }

// SoftmaxSpec describes a Softmax layer.
func SoftmaxSpec() LayerSpec { return LayerSpec{Kind: KindSoftmax} }

// DropoutSpec describes a Dropout layer dropping a rate fraction of its inputs.
func DropoutSpec(rate float64) LayerSpec {
	return LayerSpec{Kind: KindDropout, Rate: rate}
}

// UsesSeed reports whether Build consumes its seed.
func (s LayerSpec) UsesSeed() bool {
	return s.Kind == KindDense || s.Kind == KindDropout
}

// Build allocates the layer described by s.
// seed is ignored by kinds for which UsesSeed is false.
func (s LayerSpec) Build(seed uint32) Layer {
	switch s.Kind {
	case KindDense:
		return NewDense(s.Inputs, s.Outputs, seed)
	case KindReLU:
		return NewReLU()
	case KindSigmoid:
		return NewSigmoid()
	case KindTanH:
		return NewTanH()
	case KindSoftmax:
		return NewSoftmax()
	case KindDropout:
		return NewDropout(s.Rate, seed)
	default:
		panic(fmt.Errorf("%w: cannot build %s", ErrInvalidConfiguration, s.Kind))
	}
}

// String returns a compact description such as "dense(2, 8)".
func (s LayerSpec) String() string {
	switch s.Kind {
	case KindDense:
		return fmt.Sprintf("%s(%d, %d)", s.Kind, s.Inputs, s.Outputs)
	case KindDropout:
		return fmt.Sprintf("%s(%g)", s.Kind, s.Rate)
	default:
		return s.Kind.String()
	}
}
