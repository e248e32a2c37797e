// Package signal provides deterministic test-signal nodes (sine and white
// noise) and a peak normalizer for rendered output.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
)

// Sine is a sine source with a modulatable frequency in Hz. Phase is
// accumulated, so frequency changes stay continuous.
type Sine struct {
	ugen.Base

	freq      ugen.Param
	amplitude float64
	phase     float64
}

// NewSine returns a sine node starting at phase 0.
func NewSine(freq ugen.Param, amplitude float64, opts ...core.ProcessorOption) (*Sine, error) {
	cfg := core.ApplyProcessorOptions(opts...)
	if err := ugen.CheckParams(cfg.BlockSize, freq); err != nil {
		return nil, fmt.Errorf("signal: frequency: %w", err)
	}
	return &Sine{
		Base:      ugen.NewBase(cfg),
		freq:      freq,
		amplitude: amplitude,
	}, nil
}

// SetFrequency replaces the frequency parameter.
func (s *Sine) SetFrequency(p ugen.Param) { s.freq = p }

// Process computes the next block.
func (s *Sine) Process() []float64 {
	out := s.Samples()
	sr := s.SampleRate()
	for i := range out {
		out[i] = s.amplitude * math.Sin(2*math.Pi*s.phase)
		s.phase += s.freq.At(i) / sr
		s.phase -= math.Floor(s.phase)
	}
	return out
}

// Reset rewinds the phase to 0.
func (s *Sine) Reset() { s.phase = 0 }

// Noise is a seeded white-noise source in [-amplitude, amplitude].
type Noise struct {
	ugen.Base

	amplitude float64
	seed      int64
	rng       *rand.Rand
}

// NewNoise returns a noise node. Equal seeds give equal sequences.
func NewNoise(amplitude float64, seed int64, opts ...core.ProcessorOption) (*Noise, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}
	return &Noise{
		Base:      ugen.NewBase(core.ApplyProcessorOptions(opts...)),
		amplitude: amplitude,
		seed:      seed,
		rng:       rand.New(rand.NewSource(seed)),
	}, nil
}

// Process computes the next block.
func (n *Noise) Process() []float64 {
	out := n.Samples()
	for i := range out {
		out[i] = (n.rng.Float64()*2 - 1) * n.amplitude
	}
	return out
}

// Reset restarts the sequence from the seed.
func (n *Noise) Reset() { n.rng = rand.New(rand.NewSource(n.seed)) }

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
