package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func matrix23() *Tensor {
	return New([]float64{
		1, 2, 3,
		4, 5, 6,
	}, Shape{2, 3})
}

func TestReductions(t *testing.T) {
	tests := []struct {
		name string
		got  *Tensor
		want *Tensor
	}{
		{"sum axis 0", matrix23().Sum(0), New([]float64{5, 7, 9}, Shape{1, 3})},
		{"sum axis 1", matrix23().Sum(1), New([]float64{6, 15}, Shape{2, 1})},
		{"mean axis 0", matrix23().Mean(0), New([]float64{2.5, 3.5, 4.5}, Shape{1, 3})},
		{"mean axis 1", matrix23().Mean(1), New([]float64{2, 5}, Shape{2, 1})},
		{"max axis 0", matrix23().Max(0), New([]float64{4, 5, 6}, Shape{1, 3})},
		{"max axis 1", matrix23().Max(1), New([]float64{3, 6}, Shape{2, 1})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.got.Equal(tt.want), "got %v%v, want %v%v", tt.got, tt.got.Shape(), tt.want, tt.want.Shape())
		})
	}
}

func TestMax_NegativeValues(t *testing.T) {
	a := New([]float64{-3, -1, -2, -5}, Shape{2, 2})
	assert.Equal(t, []float64{-2, -1}, a.Max(0).Data())
	assert.Equal(t, []float64{-1, -2}, a.Max(1).Data())
}

func TestReduction_Errors(t *testing.T) {
	requirePanicsWith(t, ErrShapeMismatch, func() { matrix23().Sum(2) })
	requirePanicsWith(t, ErrUnimplemented, func() { New([]float64{1, 2}, Shape{2}).Mean(0) })
}

func TestArgMaxRows(t *testing.T) {
	a := New([]float64{
		0, 1, 0,
		0.7, 0.2, 0.1,
		0.1, 0.1, 0.8,
	}, Shape{3, 3})
	assert.Equal(t, []int{1, 0, 2}, a.ArgMaxRows())
}

func TestTranspose(t *testing.T) {
	a := New([]float64{
		4, 6, 8,
		10, 12, 14,
	}, Shape{2, 3})

	want := New([]float64{
		4, 10,
		6, 12,
		8, 14,
	}, Shape{3, 2})

	got := a.Transpose()
	assert.True(t, got.Equal(want), "got %v", got)
	assert.True(t, got.Transpose().Equal(a), "double transpose must round-trip")
}

func TestTranspose_MatMulConsistency(t *testing.T) {
	a := Random(Shape{3, 4}, 1)
	b := Random(Shape{4, 2}, 2)

	// (AB)ᵀ = BᵀAᵀ
	left := a.MatMul(b).Transpose()
	right := b.Transpose().MatMul(a.Transpose())
	assert.True(t, left.EqualApprox(right, 1e-12))
}

func TestRowAndRows(t *testing.T) {
	a := New([]float64{1, 2, 3, 4, 5, 6, 7, 8}, Shape{4, 2})

	assert.True(t, a.Row(1).Equal(New([]float64{3, 4}, Shape{1, 2})))
	assert.True(t, a.Rows([]int{1, 3}).Equal(New([]float64{3, 4, 7, 8}, Shape{2, 2})))
	assert.True(t, a.Rows([]int{3, 3, 0}).Equal(New([]float64{7, 8, 7, 8, 1, 2}, Shape{3, 2})))

	assert.Panics(t, func() { a.Row(4) })
	requirePanicsWith(t, ErrShapeMismatch, func() { a.Rows(nil) })
}

func TestRow_IsCopy(t *testing.T) {
	a := New([]float64{1, 2, 3, 4}, Shape{2, 2})
	r := a.Row(0)
	r.SubAssign(Ones(Shape{1, 2}))
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data())
}

func TestReshape(t *testing.T) {
	v := New([]float64{1, 2, 3, 4}, Shape{4})
	m := v.Reshape(Shape{2, 2})
	assertEqualShape(t, Shape{2, 2}, m.Shape(), "Reshape")
	requirePanicsWith(t, ErrShapeMismatch, func() { v.Reshape(Shape{3, 2}) })
}
