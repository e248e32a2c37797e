package ugen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

func pair() (*Source, *Source) {
	a := NewSource(core.WithBlockSize(4))
	b := NewSource(core.WithBlockSize(4))
	a.SetData([]float64{1, 2, 3, 4})
	b.SetData([]float64{4, 3, 2, 0})
	return a, b
}

func TestNodeOperators(t *testing.T) {
	a, b := pair()

	tests := []struct {
		name string
		got  *Source
		want []float64
	}{
		{"add", Add(a, b), []float64{5, 5, 5, 4}},
		{"sub", Sub(a, b), []float64{-3, -1, 1, 4}},
		{"mul", Mul(a, b), []float64{4, 6, 6, 0}},
		{"add scalar", AddScalar(a, 1), []float64{2, 3, 4, 5}},
		{"sub scalar", SubScalar(a, 1), []float64{0, 1, 2, 3}},
		{"scale", Scale(a, 0.5), []float64{0.5, 1, 1.5, 2}},
		{"div scalar", DivScalar(a, 2), []float64{0.5, 1, 1.5, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDeltaSlice(t, tt.want, tt.got.Samples(), 1e-15)
		})
	}
}

func TestDivByZeroFollowsIEEE(t *testing.T) {
	a, b := pair()

	out := Div(a, b).Samples()
	assert.InDelta(t, 0.25, out[0], 1e-15)
	assert.True(t, math.IsInf(out[3], 1))
}

func TestOperatorsSnapshot(t *testing.T) {
	a, b := pair()
	sum := Add(a, b)

	// Changing operands afterwards does not change the result.
	a.Fill(100)
	b.Fill(100)
	sum.Process()
	assert.Equal(t, []float64{5, 5, 5, 4}, sum.Samples())

	// Operands are left untouched.
	assert.Equal(t, []float64{100, 100, 100, 100}, a.Samples())
}

func TestOperatorKeepsConfig(t *testing.T) {
	a := NewSource(core.WithBlockSize(3), core.WithSampleRate(8000))
	b := NewSource(core.WithBlockSize(8))

	out := Mul(a, b)
	require.Equal(t, 3, out.FrameCount())
	assert.Equal(t, 8000.0, out.SampleRate())
}

func TestSourceSetData(t *testing.T) {
	s := NewSource(core.WithBlockSize(4))
	s.Fill(7)

	n := s.SetData([]float64{1, 2})
	assert.Equal(t, 2, n)
	assert.Equal(t, []float64{1, 2, 7, 7}, s.Process())
}
