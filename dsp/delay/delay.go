package delay

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/interp"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
)

// ErrMaxDelay is returned for a maximum delay that is NaN or infinite.
var ErrMaxDelay = errors.New("delay: max delay must be finite")

// Option configures a Delay or Comb.
type Option func(*settings)

type settings struct {
	feedback ugen.Param
	mode     interp.Mode
	modeSet  bool
	proc     []core.ProcessorOption
}

// WithFeedback sets the feedback gain applied to the output before it is
// written back. Defaults to 0. Comb ignores it.
func WithFeedback(p ugen.Param) Option {
	return func(s *settings) { s.feedback = p }
}

// WithInterpolation sets how fractional delays are read. Without it, a
// modulated delay reads with Linear and a constant delay with None.
func WithInterpolation(m interp.Mode) Option {
	return func(s *settings) {
		s.mode = m
		s.modeSet = true
	}
}

// WithProcessorOptions overrides the sample rate or block size inherited
// from the input.
func WithProcessorOptions(opts ...core.ProcessorOption) Option {
	return func(s *settings) { s.proc = append(s.proc, opts...) }
}

// Delay is a variable delay node with feedback. The delay parameter is in
// seconds.
type Delay struct {
	ugen.Base

	in       ugen.Node
	line     *Line
	delay    ugen.Param
	feedback ugen.Param
	mode     interp.Mode

	// gain returns the feedback gain for frame i.
	gain func(i int) float64
}

// New returns a delay node on in holding up to maxDelay seconds.
func New(in ugen.Node, maxDelay float64, delay ugen.Param, opts ...Option) (*Delay, error) {
	s := settings{feedback: ugen.Const(0)}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if !s.modeSet && delay.IsModulated() {
		s.mode = interp.Linear
	}

	if math.IsNaN(maxDelay) || math.IsInf(maxDelay, 0) {
		return nil, fmt.Errorf("%w: %v", ErrMaxDelay, maxDelay)
	}
	cfg := ugen.ConfigFrom(in, s.proc...)
	if err := ugen.CheckInputs(cfg.BlockSize, in); err != nil {
		return nil, fmt.Errorf("delay: input: %w", err)
	}
	if err := ugen.CheckParams(cfg.BlockSize, delay, s.feedback); err != nil {
		return nil, fmt.Errorf("delay: parameter: %w", err)
	}

	line, err := NewLine(LineSize(maxDelay, cfg.SampleRate))
	if err != nil {
		return nil, err
	}

	d := &Delay{
		Base:     ugen.NewBase(cfg),
		in:       in,
		line:     line,
		delay:    delay,
		feedback: s.feedback,
		mode:     s.mode,
	}
	d.gain = d.feedbackGain
	return d, nil
}

// LineSize returns the number of cells needed for maxDelay seconds:
// ceil(maxDelay*sampleRate), at least 1.
func LineSize(maxDelay, sampleRate float64) int {
	n := math.Ceil(maxDelay * sampleRate)
	if n < 1 {
		return 1
	}
	return int(n)
}

// Process pulls the input and delays one block.
func (d *Delay) Process() []float64 {
	x := d.in.Process()
	out := d.Samples()
	sr := d.SampleRate()

	for i := range out {
		out[i] = d.line.Tap(d.delay.At(i)*sr, d.mode)
		d.line.Write(x[i] + out[i]*d.gain(i))
	}
	return out
}

func (d *Delay) feedbackGain(i int) float64 {
	return d.feedback.At(i)
}

// SetDelay replaces the delay parameter.
func (d *Delay) SetDelay(p ugen.Param) { d.delay = p }

// SetFeedback replaces the feedback parameter.
func (d *Delay) SetFeedback(p ugen.Param) { d.feedback = p }

// SetInterpolation changes how fractional delays are read.
func (d *Delay) SetInterpolation(m interp.Mode) { d.mode = m }

// Interpolation returns the read mode.
func (d *Delay) Interpolation() interp.Mode { return d.mode }

// MaxDelay returns the longest delay the line holds, in seconds.
func (d *Delay) MaxDelay() float64 {
	return float64(d.line.Len()) / d.SampleRate()
}

// WritePos returns the current write cursor.
func (d *Delay) WritePos() int { return d.line.WritePos() }

// Snapshot returns a copy of the delay line contents.
func (d *Delay) Snapshot() []float64 { return d.line.Snapshot() }

// Reset clears the delay line.
func (d *Delay) Reset() { d.line.Reset() }
