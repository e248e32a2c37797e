package iir

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/signal"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
	"github.com/cwbudde/algo-ugen/internal/testutil"
)

const sr = 44100.0

func TestConstantParamsComputeOnce(t *testing.T) {
	designs := []Design{
		ButterworthLowPass, ButterworthHighPass, ButterworthBandPass,
		ButterworthBandReject, ResonatorR, ResonatorZ, Resonator,
	}
	for _, d := range designs {
		t.Run(d.Name, func(t *testing.T) {
			src := ugen.NewSource(core.WithSampleRate(sr))
			f, err := New(src, d, ugen.Const(1000), ugen.Const(100))
			require.NoError(t, err)
			want := f.Coefficients()

			for range 500 {
				src.Fill(0.5)
				f.Process()
			}
			assert.Equal(t, 1, f.updates)
			assert.Equal(t, want, f.Coefficients())
		})
	}
}

func TestModulatedFrequencyRecomputesOnChange(t *testing.T) {
	src := ugen.NewSource(core.WithBlockSize(8))
	mod := ugen.NewSource(core.WithBlockSize(8))
	mod.SetData([]float64{500, 500, 500, 500, 1000, 1000, 1000, 1000})

	f, err := NewLowPass(src, ugen.Mod(mod))
	require.NoError(t, err)
	assert.Equal(t, 0, f.updates)

	f.Process()
	assert.Equal(t, 2, f.updates)
	assert.Equal(t, LowPass(1000, 0, f.SampleRate()), f.Coefficients())

	// Frame 0 differs from the last frame of the previous block.
	f.Process()
	assert.Equal(t, 4, f.updates)

	mod.Fill(1000)
	f.Process()
	assert.Equal(t, 4, f.updates)
}

func TestModulatedBandwidthRecomputes(t *testing.T) {
	src := ugen.NewSource(core.WithBlockSize(4))
	bw := ugen.NewSource(core.WithBlockSize(4))
	bw.SetData([]float64{50, 60, 60, 70})

	f, err := NewBandPass(src, ugen.Const(1000), ugen.Mod(bw))
	require.NoError(t, err)

	f.Process()
	assert.Equal(t, 3, f.updates)
	assert.Equal(t, BandPass(1000, 70, f.SampleRate()), f.Coefficients())
}

func TestBandwidthIgnoredBySingleParameterDesigns(t *testing.T) {
	src := ugen.NewSource(core.WithBlockSize(4))
	bw := ugen.NewSource(core.WithBlockSize(4))
	bw.SetData([]float64{1, 2, 3, 4})

	f, err := New(src, ButterworthLowPass, ugen.Const(1000), ugen.Mod(bw))
	require.NoError(t, err)
	assert.Equal(t, 1, f.updates)

	f.Process()
	assert.Equal(t, 1, f.updates)
}

func TestSetFrequencyTakesEffectNextFrame(t *testing.T) {
	src := ugen.NewSource()
	f, err := NewHighPass(src, ugen.Const(200))
	require.NoError(t, err)

	f.Process()
	f.SetFrequency(ugen.Const(400))
	f.Process()
	assert.Equal(t, 2, f.updates)
	assert.Equal(t, HighPass(400, 0, f.SampleRate()), f.Coefficients())
}

func TestNewRejectsBadInputs(t *testing.T) {
	_, err := NewLowPass(nil, ugen.Const(1000))
	require.ErrorIs(t, err, ugen.ErrNilNode)

	short := ugen.NewSource(core.WithBlockSize(16))
	_, err = NewLowPass(short, ugen.Const(1000), core.WithBlockSize(32))
	require.ErrorIs(t, err, ugen.ErrShortBlock)

	src := ugen.NewSource(core.WithBlockSize(32))
	_, err = NewBandPass(src, ugen.Const(1000), ugen.Mod(short))
	require.ErrorIs(t, err, ugen.ErrShortBlock)

	_, err = New(src, Design{Name: "empty"}, ugen.Const(1), ugen.Const(1))
	require.ErrorIs(t, err, ErrNoDesign)
}

func TestButterworthResponse(t *testing.T) {
	const fc = 1000.0

	lp := LowPass(fc, 0, sr)
	assert.InDelta(t, 0, lp.MagnitudeDB(0, sr), 1e-9)
	assert.InDelta(t, -3.0103, lp.MagnitudeDB(fc, sr), 1e-3)
	assert.Less(t, lp.MagnitudeDB(10*fc, sr), -39.0)

	hp := HighPass(fc, 0, sr)
	assert.InDelta(t, 0, hp.MagnitudeDB(sr/2, sr), 1e-9)
	assert.InDelta(t, -3.0103, hp.MagnitudeDB(fc, sr), 1e-3)
	assert.Less(t, hp.MagnitudeDB(fc/10, sr), -39.0)

	bp := BandPass(fc, 200, sr)
	assert.InDelta(t, 0, bp.MagnitudeDB(fc, sr), 1e-9)
	assert.Less(t, bp.MagnitudeDB(fc/4, sr), -10.0)
	assert.Less(t, bp.MagnitudeDB(fc*4, sr), -10.0)

	br := BandReject(fc, 200, sr)
	assert.Less(t, br.MagnitudeDB(fc, sr), -90.0)
	assert.InDelta(t, 0, br.MagnitudeDB(0, sr), 1e-9)
	assert.InDelta(t, 0, br.MagnitudeDB(sr/2, sr), 1e-9)

	for _, c := range []Coefficients{lp, hp, bp, br} {
		assert.True(t, c.Stable())
		assert.Equal(t, 1.0, c.Scale)
	}
}

func TestResonatorPoleRadius(t *testing.T) {
	const (
		fc = 2000.0
		bw = 100.0
	)
	r := math.Exp(-bw * math.Pi / sr)

	for _, c := range []Coefficients{ResonR(fc, bw, sr), ResonZ(fc, bw, sr)} {
		assert.InDelta(t, r, c.MaxPoleRadius(), 1e-12)
		assert.True(t, c.Stable())
		assert.Greater(t, c.MagnitudeDB(fc, sr), c.MagnitudeDB(fc/2, sr)+12)
		assert.Greater(t, c.MagnitudeDB(fc, sr), c.MagnitudeDB(fc*2, sr)+12)
	}

	assert.Equal(t, -r, ResonR(fc, bw, sr).B2)
	assert.Equal(t, -1.0, ResonZ(fc, bw, sr).B2)
	// ResonZ blocks DC completely.
	z := ResonZ(fc, bw, sr)
	assert.Less(t, z.MagnitudeSquared(0, sr), 1e-20)

	pz := z.PoleZeroPair()
	assert.InDelta(t, 1, real(pz.Zeros[0]), 1e-12)
	assert.InDelta(t, -1, real(pz.Zeros[1]), 1e-12)
	for _, p := range pz.Poles {
		assert.InDelta(t, r, cmplx.Abs(p), 1e-12)
	}
	assert.InDelta(t, 2*math.Pi*fc/sr, math.Abs(cmplx.Phase(pz.Poles[0])), 1e-3)
}

func TestAllPoleMatchesRecursion(t *testing.T) {
	src := ugen.NewSource(core.WithBlockSize(16))
	f, err := NewReson(src, ugen.Const(3000), ugen.Const(300))
	require.NoError(t, err)
	c := f.Coefficients()

	in := testutil.Impulse(64, 0)
	got := testutil.Feed(src, f, in)

	var y1, y2 float64
	for i, x := range in {
		y := c.Scale*x - c.A1*y1 - c.A2*y2
		assert.InDelta(t, y, got[i], 1e-15, "frame %d", i)
		y2, y1 = y1, y
	}
}

func TestSectionMatchesDesignedFilter(t *testing.T) {
	srcA := ugen.NewSource()
	srcB := ugen.NewSource()

	designed, err := NewLowPass(srcA, ugen.Const(3000))
	require.NoError(t, err)
	section, err := NewSection(srcB, LowPass(3000, 0, srcB.SampleRate()), DirectForm2)
	require.NoError(t, err)

	in := testutil.DeterministicSine(440, srcA.SampleRate(), 1, 512)
	a := testutil.Feed(srcA, designed, in)
	b := testutil.Feed(srcB, section, in)
	diff, err := testutil.MaxAbsDiff(a, b)
	require.NoError(t, err)
	assert.Zero(t, diff)
	assert.Equal(t, 0, section.updates)
}

func TestResetClearsState(t *testing.T) {
	src := ugen.NewSource(core.WithBlockSize(8))
	f, err := NewLowPass(src, ugen.Const(500))
	require.NoError(t, err)

	first := append([]float64(nil), testutil.Feed(src, f, testutil.Impulse(8, 0))...)
	d1, d2 := f.State()
	assert.NotZero(t, d1)
	assert.NotZero(t, d2)

	f.Reset()
	second := testutil.Feed(src, f, testutil.Impulse(8, 0))
	testutil.RequireSliceNearlyEqual(t, first, second, 0)
}

func TestMagnitudeDBHonoursTopology(t *testing.T) {
	src := ugen.NewSource()
	reson, err := NewReson(src, ugen.Const(1000), ugen.Const(50))
	require.NoError(t, err)
	c := reson.Coefficients()

	allPole := Coefficients{
		Coefficients: c.Coefficients,
		Scale:        c.Scale,
	}
	allPole.B0, allPole.B1, allPole.B2 = 1, 0, 0
	assert.InDelta(t, allPole.MagnitudeDB(1000, sr), reson.MagnitudeDB(1000), 1e-12)
}

func TestLowPassAttenuatesHighSine(t *testing.T) {
	blocks := int(sr)/core.DefaultBlockSize + 1

	level := func(freq float64) float64 {
		osc, err := signal.NewSine(ugen.Const(freq), 1, core.WithSampleRate(sr))
		require.NoError(t, err)
		lp, err := NewLowPass(osc, ugen.Const(1000))
		require.NoError(t, err)

		out := testutil.Drain(lp, blocks)
		testutil.RequireFinite(t, out)
		return testutil.RMS(out[len(out)/2:])
	}

	pass := level(100)
	stop := level(20000)
	attenuation := core.LinearToDB(stop / pass)
	assert.Less(t, attenuation, -40.0)
	assert.InDelta(t, 1/math.Sqrt2, pass, 0.01)
}
