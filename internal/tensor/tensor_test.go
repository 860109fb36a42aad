package tensor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("%s: shape mismatch (-want +got):\n%s", msg, diff)
	}
}

// requirePanicsWith runs f and checks that it panics with an error matching target.
func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	f()
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{4}, 4},
		{Shape{2, 3}, 6},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{}.Validate())
	assert.NoError(t, Shape{2, 3}.Validate())
	assert.ErrorIs(t, Shape{2, 0}.Validate(), ErrShapeMismatch)
	assert.ErrorIs(t, Shape{2, 3, 4}.Validate(), ErrUnimplemented)
}

func TestBroadcastRows(t *testing.T) {
	tests := []struct {
		a, b      Shape
		want      Shape
		broadcast bool
		wantErr   bool
	}{
		{Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false, false},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{3, 5}, Shape{1, 5}, Shape{3, 5}, true, false},
		{Shape{3, 4}, Shape{3, 5}, nil, false, true},
		{Shape{2, 5}, Shape{3, 5}, nil, false, true},
		{Shape{5}, Shape{1, 5}, nil, false, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v+%v", tt.a, tt.b), func(t *testing.T) {
			got, broadcast, err := BroadcastRows(tt.a, tt.b)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrShapeMismatch)
				return
			}
			require.NoError(t, err)
			assertEqualShape(t, tt.want, got, "result")
			assert.Equal(t, tt.broadcast, broadcast)
		})
	}
}

// Construction Tests

func TestNew_CopiesData(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	a := New(data, Shape{2, 2})
	data[0] = 100

	assert.Equal(t, 1.0, a.At(0, 0))
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data())
}

func TestNew_RejectsBadLength(t *testing.T) {
	requirePanicsWith(t, ErrShapeMismatch, func() {
		New([]float64{1, 2, 3}, Shape{2, 2})
	})
	requirePanicsWith(t, ErrUnimplemented, func() {
		New(make([]float64, 8), Shape{2, 2, 2})
	})
}

func TestFromRows(t *testing.T) {
	a := FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	assertEqualShape(t, Shape{3, 2}, a.Shape(), "FromRows")
	assert.Equal(t, 6.0, a.At(2, 1))

	requirePanicsWith(t, ErrShapeMismatch, func() {
		FromRows([][]float64{{1, 2}, {3}})
	})
}

func TestZerosOnesFull(t *testing.T) {
	z := Zeros(Shape{2, 3})
	o := Ones(Shape{2, 3})
	f := Full(Shape{4}, 2.5)

	assert.Equal(t, make([]float64, 6), z.Data())
	for _, v := range o.Data() {
		assert.Equal(t, 1.0, v)
	}
	assert.Equal(t, []float64{2.5, 2.5, 2.5, 2.5}, f.Data())
}

func TestRandom_RangeAndDeterminism(t *testing.T) {
	a := Random(Shape{20, 20}, 5)
	b := Random(Shape{20, 20}, 5)
	c := Random(Shape{20, 20}, 6)

	assert.True(t, a.Equal(b), "same seed must give same values")
	assert.False(t, a.Equal(c), "different seeds should diverge")
	for _, v := range a.Data() {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
}

func TestRandomNormal_Moments(t *testing.T) {
	n := RandomNormal(Shape{100, 100}, 3.0, 0.5, 42)

	mean := n.Mean(0).Mean(1).Item(0)
	assert.InDelta(t, 3.0, mean, 0.05)

	centered := n.Map(func(v float64) float64 { return (v - mean) * (v - mean) })
	variance := centered.Mean(0).Mean(1).Item(0)
	assert.InDelta(t, 0.25, variance, 0.02)
}

func TestMask(t *testing.T) {
	mask := Mask(Shape{10, 10}, 0.4, 777)

	var sum float64
	for _, v := range mask.Data() {
		require.True(t, v == 0 || v == 1, "mask value %v is not 0/1", v)
		sum += v
	}
	assert.Equal(t, 60.0, sum)

	again := Mask(Shape{10, 10}, 0.4, 777)
	assert.True(t, mask.Equal(again))
}

func TestMask_Bounds(t *testing.T) {
	none := Mask(Shape{3, 3}, 0, 1)
	all := Mask(Shape{3, 3}, 1, 1)

	assert.True(t, none.Equal(Ones(Shape{3, 3})))
	assert.True(t, all.Equal(Zeros(Shape{3, 3})))
}

// Accessor Tests

func TestAt(t *testing.T) {
	a := New([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	assert.Equal(t, 6.0, a.At(1, 2))
	assert.Panics(t, func() { a.At(2, 0) })
}

func TestRound(t *testing.T) {
	a := New([]float64{0.26894, 0.73106, -1.23456}, Shape{3})
	assert.Equal(t, []float64{0.269, 0.731, -1.235}, a.Round(3).Data())
}

func TestString(t *testing.T) {
	assert.Equal(t, "3.5", New([]float64{3.5}, Shape{}).String())
	assert.Equal(t, "[1 2]", New([]float64{1, 2}, Shape{2}).String())
	assert.Equal(t, "\n|1     0.33  |\n", New([]float64{1, 0.333333}, Shape{1, 2}).String())
}
