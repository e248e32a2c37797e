package iir

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
)

// ErrNoDesign is returned when a Design has no Compute function.
var ErrNoDesign = errors.New("iir: design has no compute function")

// Filter is a two-pole recursive filter node. It pulls its input once per
// Process call; the frequency and bandwidth parameters are read but never
// pulled.
type Filter struct {
	ugen.Base

	in     ugen.Node
	design Design
	freq   ugen.Param
	bw     ugen.Param

	coeffs Coefficients
	d1, d2 float64

	lastFreq float64
	lastBW   float64
	primed   bool
	updates  int
}

// New returns a filter running design on in. The bandwidth parameter is
// ignored by designs that do not use it.
func New(in ugen.Node, design Design, freq, bandwidth ugen.Param, opts ...core.ProcessorOption) (*Filter, error) {
	if design.Compute == nil {
		return nil, ErrNoDesign
	}
	cfg := ugen.ConfigFrom(in, opts...)
	if err := ugen.CheckInputs(cfg.BlockSize, in); err != nil {
		return nil, fmt.Errorf("iir: input: %w", err)
	}
	if err := ugen.CheckParams(cfg.BlockSize, freq, bandwidth); err != nil {
		return nil, fmt.Errorf("iir: parameter: %w", err)
	}

	f := &Filter{
		Base:   ugen.NewBase(cfg),
		in:     in,
		design: design,
		freq:   freq,
		bw:     bandwidth,
	}
	if f.static() {
		f.update(0)
	}
	return f, nil
}

// NewLowPass returns a Butterworth low-pass with cutoff freq.
func NewLowPass(in ugen.Node, freq ugen.Param, opts ...core.ProcessorOption) (*Filter, error) {
	return New(in, ButterworthLowPass, freq, ugen.Const(0), opts...)
}

// NewHighPass returns a Butterworth high-pass with cutoff freq.
func NewHighPass(in ugen.Node, freq ugen.Param, opts ...core.ProcessorOption) (*Filter, error) {
	return New(in, ButterworthHighPass, freq, ugen.Const(0), opts...)
}

// NewBandPass returns a Butterworth band-pass.
func NewBandPass(in ugen.Node, freq, bandwidth ugen.Param, opts ...core.ProcessorOption) (*Filter, error) {
	return New(in, ButterworthBandPass, freq, bandwidth, opts...)
}

// NewBandReject returns a Butterworth band-reject.
func NewBandReject(in ugen.Node, freq, bandwidth ugen.Param, opts ...core.ProcessorOption) (*Filter, error) {
	return New(in, ButterworthBandReject, freq, bandwidth, opts...)
}

// NewResonR returns a resonator with zeros at ±sqrt(r).
func NewResonR(in ugen.Node, freq, bandwidth ugen.Param, opts ...core.ProcessorOption) (*Filter, error) {
	return New(in, ResonatorR, freq, bandwidth, opts...)
}

// NewResonZ returns a resonator with zeros at ±1.
func NewResonZ(in ugen.Node, freq, bandwidth ugen.Param, opts ...core.ProcessorOption) (*Filter, error) {
	return New(in, ResonatorZ, freq, bandwidth, opts...)
}

// NewReson returns an all-pole resonator.
func NewReson(in ugen.Node, freq, bandwidth ugen.Param, opts ...core.ProcessorOption) (*Filter, error) {
	return New(in, Resonator, freq, bandwidth, opts...)
}

// NewSection returns a filter with fixed coefficients. It never recomputes.
func NewSection(in ugen.Node, c Coefficients, topology Topology, opts ...core.ProcessorOption) (*Filter, error) {
	cfg := ugen.ConfigFrom(in, opts...)
	if err := ugen.CheckInputs(cfg.BlockSize, in); err != nil {
		return nil, fmt.Errorf("iir: input: %w", err)
	}
	return &Filter{
		Base:   ugen.NewBase(cfg),
		in:     in,
		design: Design{Name: "section", Topology: topology},
		coeffs: c,
		primed: true,
	}, nil
}

// Process pulls the input and filters one block.
func (f *Filter) Process() []float64 {
	x := f.in.Process()
	out := f.Samples()
	allPole := f.design.Topology == AllPole

	for i := range out {
		f.update(i)
		c := &f.coeffs

		w := c.Scale*x[i] - c.A1*f.d1 - c.A2*f.d2
		if allPole {
			out[i] = w
		} else {
			out[i] = c.B0*w + c.B1*f.d1 + c.B2*f.d2
		}
		f.d2 = f.d1
		f.d1 = w
	}
	return out
}

// update recomputes the coefficients when the parameters resolved at frame
// i differ from the ones they were last computed for.
func (f *Filter) update(i int) {
	if f.design.Compute == nil {
		return
	}
	freq := f.freq.At(i)
	bw := f.lastBW
	if f.design.Bandwidth {
		bw = f.bw.At(i)
	}
	if f.primed && freq == f.lastFreq && bw == f.lastBW {
		return
	}
	f.coeffs = f.design.Compute(freq, bw, f.SampleRate())
	f.lastFreq = freq
	f.lastBW = bw
	f.primed = true
	f.updates++
}

func (f *Filter) static() bool {
	return !f.freq.IsModulated() && (!f.design.Bandwidth || !f.bw.IsModulated())
}

// SetFrequency replaces the frequency parameter. The new value takes
// effect on the next processed frame.
func (f *Filter) SetFrequency(p ugen.Param) { f.freq = p }

// SetBandwidth replaces the bandwidth parameter.
func (f *Filter) SetBandwidth(p ugen.Param) { f.bw = p }

// Frequency returns the frequency parameter.
func (f *Filter) Frequency() ugen.Param { return f.freq }

// Bandwidth returns the bandwidth parameter.
func (f *Filter) Bandwidth() ugen.Param { return f.bw }

// Design returns the coefficient design.
func (f *Filter) Design() Design { return f.design }

// Coefficients returns the coefficients in effect for the last processed
// frame. Before the first Process call they are zero unless every
// parameter the design reads is constant.
func (f *Filter) Coefficients() Coefficients { return f.coeffs }

// State returns the delay memory (d1, d2).
func (f *Filter) State() (float64, float64) { return f.d1, f.d2 }

// Reset clears the delay memory. Coefficients are kept.
func (f *Filter) Reset() {
	f.d1 = 0
	f.d2 = 0
}

// MagnitudeDB returns the gain of the current coefficients at freqHz,
// honouring the filter topology.
func (f *Filter) MagnitudeDB(freqHz float64) float64 {
	c := f.coeffs
	if f.design.Topology == AllPole {
		c.B0, c.B1, c.B2 = 1, 0, 0
	}
	return c.MagnitudeDB(freqHz, f.SampleRate())
}
