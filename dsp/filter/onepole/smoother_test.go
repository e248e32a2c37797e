package onepole

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/signal"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
	"github.com/cwbudde/algo-ugen/internal/testutil"
)

const sr = 44100.0

func TestCoefficientsStableForSweptCutoff(t *testing.T) {
	nyquist := sr / 2
	for k := 1; k < 200; k++ {
		freq := nyquist * float64(k) / 200

		a, b := LowPassCoefficients(freq, sr)
		assert.Less(t, math.Abs(b), 1.0, "lowpass %v Hz", freq)
		assert.InDelta(t, 1+b, a, 1e-15)
		// Unity gain at DC.
		assert.InDelta(t, 1, a/(1+b), 1e-12)

		a, b = HighPassCoefficients(freq, sr)
		assert.Less(t, math.Abs(b), 1.0, "highpass %v Hz", freq)
		assert.InDelta(t, 1+b, a, 1e-15)
	}
}

func TestLowPassCutoffOrdering(t *testing.T) {
	// A higher cutoff means a smaller pole magnitude.
	_, bLow := LowPassCoefficients(100, sr)
	_, bHigh := LowPassCoefficients(5000, sr)
	assert.Greater(t, math.Abs(bLow), math.Abs(bHigh))
}

func TestConstantCutoffComputesOnce(t *testing.T) {
	src := ugen.NewSource()
	lp, err := NewLowPass(src, ugen.Const(800))
	require.NoError(t, err)
	hp, err := NewHighPass(ugen.NewView(src), ugen.Const(800))
	require.NoError(t, err)

	for range 100 {
		src.Fill(1)
		lp.Process()
		hp.Process()
	}
	assert.Equal(t, 1, lp.updates)
	assert.Equal(t, 1, hp.updates)
	assert.Equal(t, HighPassMode, hp.Mode())
}

func TestSweptCutoffStaysBounded(t *testing.T) {
	const block = 64
	noise, err := signal.NewNoise(1, 3, core.WithBlockSize(block))
	require.NoError(t, err)
	sweep := ugen.NewSource(core.WithBlockSize(block))

	lp, err := NewLowPass(noise, ugen.Mod(sweep))
	require.NoError(t, err)

	nyquist := lp.SampleRate() / 2
	blocks := 300
	for n := range blocks {
		for i := range block {
			pos := float64(n*block+i+1) / float64(blocks*block+1)
			sweep.SetSample(i, pos*nyquist)
		}
		out := lp.Process()
		testutil.RequireFinite(t, out)
		for _, v := range out {
			require.LessOrEqual(t, math.Abs(v), 1.0)
		}
	}
	assert.Equal(t, blocks*block, lp.updates)
}

func TestLowPassConvergesToDC(t *testing.T) {
	src := ugen.NewSource()
	lp, err := NewLowPass(src, ugen.Const(1000))
	require.NoError(t, err)

	out := testutil.Feed(src, lp, testutil.DC(0.5, 4096))
	assert.InDelta(t, 0.5, out[len(out)-1], 1e-9)
	testutil.RequireStrictlyMonotonic(t, out[:64], true)
}

func TestRMSEstimatesRectifiedLevel(t *testing.T) {
	osc, err := signal.NewSine(ugen.Const(441), 1, core.WithSampleRate(sr))
	require.NoError(t, err)
	rms, err := NewRMS(osc, ugen.Const(DefaultRMSCutoff))
	require.NoError(t, err)

	out := testutil.Drain(rms, int(sr)/core.DefaultBlockSize)
	tail := out[len(out)-4096:]
	for _, v := range tail {
		assert.InDelta(t, 2/math.Pi, v, 0.02)
	}
}

func TestResetClearsMemory(t *testing.T) {
	src := ugen.NewSource(core.WithBlockSize(8))
	lp, err := NewLowPass(src, ugen.Const(300))
	require.NoError(t, err)

	first := testutil.Feed(src, lp, testutil.Impulse(16, 0))
	lp.Reset()
	second := testutil.Feed(src, lp, testutil.Impulse(16, 0))
	testutil.RequireSliceNearlyEqual(t, first, second, 0)
}

func TestNewRejectsBadInputs(t *testing.T) {
	_, err := NewLowPass(nil, ugen.Const(10))
	require.ErrorIs(t, err, ugen.ErrNilNode)

	src := ugen.NewSource(core.WithBlockSize(64))
	short := ugen.NewSource(core.WithBlockSize(8))
	_, err = NewRMS(src, ugen.Mod(short))
	require.ErrorIs(t, err, ugen.ErrShortBlock)
}
