package response

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/filter/iir"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
)

const testRate = 48000

func newLowPass(t *testing.T, cutoff float64) (*ugen.Source, *iir.Filter) {
	t.Helper()

	src := ugen.NewSource(core.WithSampleRate(testRate), core.WithBlockSize(64))
	lp, err := iir.NewLowPass(src, ugen.Const(cutoff))
	require.NoError(t, err)
	return src, lp
}

func TestImpulseIdentity(t *testing.T) {
	src := ugen.NewSource(core.WithBlockSize(4))
	ir, err := Impulse(src, src, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0}, ir)
}

func TestImpulseErrors(t *testing.T) {
	src := ugen.NewSource()

	_, err := Impulse(nil, src, 8)
	require.ErrorIs(t, err, ErrNoNode)

	_, err = Impulse(src, src, 0)
	require.ErrorIs(t, err, ErrEmpty)
}

func TestSpectrumMatchesDesignedResponse(t *testing.T) {
	src, lp := newLowPass(t, 1000)

	ir, err := Impulse(src, lp, 8192)
	require.NoError(t, err)

	s, err := NewSpectrum(ir, testRate)
	require.NoError(t, err)
	require.Equal(t, 8192, s.FFTSize)
	require.Len(t, s.MagnitudeDB, 4097)
	assert.InDelta(t, testRate/2.0, s.Frequencies[len(s.Frequencies)-1], 1e-9)

	for k := 1; k < len(s.Frequencies)-1; k += 37 {
		f := s.Frequencies[k]
		assert.InDelta(t, lp.MagnitudeDB(f), s.MagnitudeDB[k], 0.05, "bin %d (%.1f Hz)", k, f)
	}
	assert.Equal(t, s.MagnitudeDB[171], s.At(s.Frequencies[171]+1))
}

func TestSpectrumPeakOfResonator(t *testing.T) {
	src := ugen.NewSource(core.WithSampleRate(testRate), core.WithBlockSize(64))
	bp, err := iir.NewResonZ(src, ugen.Const(2000), ugen.Const(100))
	require.NoError(t, err)

	ir, err := Impulse(src, bp, 16384)
	require.NoError(t, err)

	s, err := NewSpectrum(ir, testRate)
	require.NoError(t, err)

	freq, _ := s.Peak()
	binWidth := testRate / float64(s.FFTSize)
	assert.InDelta(t, 2000, freq, 3*binWidth)
}

func TestSpectrumPadding(t *testing.T) {
	s, err := NewSpectrum([]float64{1, 0, 0}, 8)
	require.NoError(t, err)
	assert.Equal(t, 4, s.FFTSize)
	for _, v := range s.MagnitudeDB {
		assert.InDelta(t, 0, v, 1e-9)
	}
}

func TestSpectrumErrors(t *testing.T) {
	_, err := NewSpectrum(nil, testRate)
	require.ErrorIs(t, err, ErrEmpty)

	_, err = NewSpectrum([]float64{1}, 0)
	require.ErrorIs(t, err, ErrSampleRate)

	_, err = NewSpectrum([]float64{1}, math.NaN())
	require.ErrorIs(t, err, ErrSampleRate)

	assert.True(t, math.IsInf(Spectrum{}.At(100), -1))
}

func TestToneLevel(t *testing.T) {
	src, lp := newLowPass(t, 1000)

	// 150 blocks of 64 frames hold exactly 200 cycles of 1 kHz.
	level, err := ToneLevelDB(src, lp, 1000, 20, 150)
	require.NoError(t, err)
	assert.InDelta(t, -3.0103, level, 0.05)

	src.Fill(0)
	pass, err := ToneLevelDB(src, src, 1000, 0, 150)
	require.NoError(t, err)
	assert.InDelta(t, 0, pass, 1e-6)
}

func TestToneLevelErrors(t *testing.T) {
	src := ugen.NewSource()

	_, err := ToneLevelDB(src, nil, 1000, 0, 1)
	require.ErrorIs(t, err, ErrNoNode)

	_, err = ToneLevelDB(src, src, 1000, 0, 0)
	require.ErrorIs(t, err, ErrEmpty)

	_, err = ToneLevelDB(src, src, -1, 0, 1)
	require.Error(t, err)
}

func TestNextPowerOf2(t *testing.T) {
	for _, tc := range []struct{ in, want int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {1000, 1024}, {1024, 1024},
	} {
		assert.Equal(t, tc.want, nextPowerOf2(tc.in), "n=%d", tc.in)
	}
}
