package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/spectrum"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
)

// Errors returned by the measurement functions.
var (
	ErrEmpty      = errors.New("response: no samples to analyse")
	ErrSampleRate = errors.New("response: sample rate must be positive")
	ErrNoNode     = errors.New("response: source and output must not be nil")
)

// Impulse writes a unit impulse into src, pulls out until length frames
// have been produced and returns them. src is silent after the first
// frame. Nodes in the graph keep their state; reset them first for a
// clean measurement.
func Impulse(src *ugen.Source, out ugen.Node, length int) ([]float64, error) {
	if src == nil || out == nil {
		return nil, ErrNoNode
	}
	if length <= 0 {
		return nil, ErrEmpty
	}

	res := make([]float64, 0, length+out.FrameCount())
	src.Fill(0)
	src.SetSample(0, 1)
	for len(res) < length {
		res = append(res, out.Process()...)
		src.Fill(0)
	}
	return res[:length], nil
}

// Spectrum is the one-sided magnitude response of an impulse response.
type Spectrum struct {
	FFTSize     int
	SampleRate  float64
	Frequencies []float64
	MagnitudeDB []float64
}

// NewSpectrum transforms ir, zero-padded to the next power of two, and
// keeps bins 0..N/2.
func NewSpectrum(ir []float64, sampleRate float64) (Spectrum, error) {
	if len(ir) == 0 {
		return Spectrum{}, ErrEmpty
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return Spectrum{}, fmt.Errorf("%w: %v", ErrSampleRate, sampleRate)
	}

	fftSize := nextPowerOf2(len(ir))
	if fftSize < 2 {
		fftSize = 2
	}
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Spectrum{}, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}
	bins := make([]complex128, fftSize)
	if err := plan.Forward(bins, in); err != nil {
		return Spectrum{}, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	half := bins[:fftSize/2+1]
	freqs := make([]float64, len(half))
	for k := range freqs {
		freqs[k] = spectrum.BinFrequency(k, fftSize, sampleRate)
	}
	return Spectrum{
		FFTSize:     fftSize,
		SampleRate:  sampleRate,
		Frequencies: freqs,
		MagnitudeDB: spectrum.MagnitudeDB(half),
	}, nil
}

// At returns the magnitude in dB of the bin nearest to freq.
func (s Spectrum) At(freq float64) float64 {
	if len(s.MagnitudeDB) == 0 {
		return math.Inf(-1)
	}
	k := int(math.Round(freq * float64(s.FFTSize) / s.SampleRate))
	k = int(core.Clamp(float64(k), 0, float64(len(s.MagnitudeDB)-1)))
	return s.MagnitudeDB[k]
}

// Peak returns the frequency and level of the loudest bin.
func (s Spectrum) Peak() (float64, float64) {
	if len(s.MagnitudeDB) == 0 {
		return 0, math.Inf(-1)
	}
	best := 0
	for k, v := range s.MagnitudeDB {
		if v > s.MagnitudeDB[best] {
			best = k
		}
	}
	return s.Frequencies[best], s.MagnitudeDB[best]
}

// ToneLevelDB drives src with a unit sine at freq, discards settle blocks
// of out and returns the level of freq in the next measure blocks in dB
// relative to the input.
func ToneLevelDB(src *ugen.Source, out ugen.Node, freq float64, settle, measure int) (float64, error) {
	if src == nil || out == nil {
		return 0, ErrNoNode
	}
	if measure <= 0 {
		return 0, ErrEmpty
	}

	g, err := spectrum.NewGoertzel(freq, src.SampleRate())
	if err != nil {
		return 0, fmt.Errorf("response: %w", err)
	}

	block := src.FrameCount()
	step := 2 * math.Pi * freq / src.SampleRate()
	frame := 0
	for b := 0; b < settle+measure; b++ {
		for i := range block {
			src.SetSample(i, math.Sin(step*float64(frame)))
			frame++
		}
		y := out.Process()
		if b >= settle {
			g.ProcessBlock(y)
		}
	}
	return g.LevelDB(), nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
