package onepole

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
)

// DefaultRMSCutoff is the smoothing cutoff used by RMS and Balance when no
// cutoff is given, in Hz.
const DefaultRMSCutoff = 10.0

// Mode selects the coefficient formula.
type Mode uint8

const (
	// LowPassMode smooths with c = 2 - cos(w).
	LowPassMode Mode = iota
	// HighPassMode uses the mirrored formula c = 2 + cos(w).
	HighPassMode
)

func (m Mode) String() string {
	switch m {
	case LowPassMode:
		return "lowpass"
	case HighPassMode:
		return "highpass"
	default:
		return "unknown"
	}
}

// LowPassCoefficients returns (a, b) for cutoff freq.
func LowPassCoefficients(freq, sampleRate float64) (float64, float64) {
	c := 2 - math.Cos(2*math.Pi*freq/sampleRate)
	b := math.Sqrt(c*c-1) - c
	return 1 + b, b
}

// HighPassCoefficients returns (a, b) for the mirrored high-pass form.
// The response is unity at DC and rises towards Nyquist.
func HighPassCoefficients(freq, sampleRate float64) (float64, float64) {
	c := 2 + math.Cos(2*math.Pi*freq/sampleRate)
	b := c - math.Sqrt(c*c-1)
	return 1 + b, b
}

// Smoother is a one-pole filter node.
type Smoother struct {
	ugen.Base

	in      ugen.Node
	freq    ugen.Param
	mode    Mode
	rectify bool

	a, b float64
	y    float64

	lastFreq float64
	primed   bool
	updates  int
}

func newSmoother(in ugen.Node, freq ugen.Param, mode Mode, rectify bool, opts []core.ProcessorOption) (*Smoother, error) {
	cfg := ugen.ConfigFrom(in, opts...)
	if err := ugen.CheckInputs(cfg.BlockSize, in); err != nil {
		return nil, fmt.Errorf("onepole: input: %w", err)
	}
	if err := ugen.CheckParams(cfg.BlockSize, freq); err != nil {
		return nil, fmt.Errorf("onepole: cutoff: %w", err)
	}

	s := &Smoother{
		Base:    ugen.NewBase(cfg),
		in:      in,
		freq:    freq,
		mode:    mode,
		rectify: rectify,
	}
	if !freq.IsModulated() {
		s.update(0)
	}
	return s, nil
}

// NewLowPass returns a one-pole low-pass with cutoff freq.
func NewLowPass(in ugen.Node, freq ugen.Param, opts ...core.ProcessorOption) (*Smoother, error) {
	return newSmoother(in, freq, LowPassMode, false, opts)
}

// NewHighPass returns a one-pole smoother using the high-pass formula.
func NewHighPass(in ugen.Node, freq ugen.Param, opts ...core.ProcessorOption) (*Smoother, error) {
	return newSmoother(in, freq, HighPassMode, false, opts)
}

// NewRMS returns an amplitude estimator: the rectified input smoothed by a
// low-pass at cutoff freq.
func NewRMS(in ugen.Node, freq ugen.Param, opts ...core.ProcessorOption) (*Smoother, error) {
	return newSmoother(in, freq, LowPassMode, true, opts)
}

// Process pulls the input and filters one block.
func (s *Smoother) Process() []float64 {
	x := s.in.Process()
	out := s.Samples()
	for i := range out {
		s.update(i)
		v := x[i]
		if s.rectify {
			v = math.Abs(v)
		}
		s.y = s.a*v - s.b*s.y
		out[i] = s.y
	}
	return out
}

func (s *Smoother) update(i int) {
	freq := s.freq.At(i)
	if s.primed && freq == s.lastFreq {
		return
	}
	if s.mode == HighPassMode {
		s.a, s.b = HighPassCoefficients(freq, s.SampleRate())
	} else {
		s.a, s.b = LowPassCoefficients(freq, s.SampleRate())
	}
	s.lastFreq = freq
	s.primed = true
	s.updates++
}

// SetFrequency replaces the cutoff parameter.
func (s *Smoother) SetFrequency(p ugen.Param) { s.freq = p }

// Frequency returns the cutoff parameter.
func (s *Smoother) Frequency() ugen.Param { return s.freq }

// Mode returns the coefficient formula in use.
func (s *Smoother) Mode() Mode { return s.mode }

// Coefficients returns the current (a, b).
func (s *Smoother) Coefficients() (float64, float64) { return s.a, s.b }

// Reset clears the filter memory.
func (s *Smoother) Reset() { s.y = 0 }
