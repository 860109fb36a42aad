package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayerSpec_Build(t *testing.T) {
	tests := []struct {
		spec     LayerSpec
		info     string
		usesSeed bool
	}{
		{DenseSpec(2, 3), "Dense(2 -> 3)", true},
		{ReLUSpec(), "ReLU", false},
		{SigmoidSpec(), "Sigmoid", false},
		{TanHSpec(), "TanH", false},
		{SoftmaxSpec(), "Softmax", false},
		{DropoutSpec(0.25), "Dropout(rate=0.25)", true},
	}

	for _, tt := range tests {
		t.Run(tt.spec.String(), func(t *testing.T) {
			layer := tt.spec.Build(1)
			assert.Equal(t, tt.info, layer.Info())
			assert.Equal(t, tt.usesSeed, tt.spec.UsesSeed())
		})
	}
}

func TestLayerSpec_FreshLayers(t *testing.T) {
	spec := DenseSpec(2, 2)
	a := spec.Build(9).(*Dense)
	b := spec.Build(9).(*Dense)

	assert.NotSame(t, a.Param(Weights), b.Param(Weights))
	assert.True(t, a.Param(Weights).Equal(b.Param(Weights)))
}

func TestParseLayerKind(t *testing.T) {
	for kind, name := range layerKindNames {
		got, err := ParseLayerKind(name)
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	got, err := ParseLayerKind("  TanH ")
	require.NoError(t, err)
	assert.Equal(t, KindTanH, got)

	_, err = ParseLayerKind("conv2d")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Equal(t, "LayerKind(42)", LayerKind(42).String())
}

func TestLayerSpec_String(t *testing.T) {
	assert.Equal(t, "dense(2, 8)", DenseSpec(2, 8).String())
	assert.Equal(t, "dropout(0.1)", DropoutSpec(0.1).String())
	assert.Equal(t, "softmax", SoftmaxSpec().String())
}
