package delay

import (
	"github.com/cwbudde/algo-ugen/dsp/ugen"
	"github.com/cwbudde/algo-ugen/internal/fastmath"
)

// CombGain returns the feedback gain that makes a signal recirculating
// every delay seconds decay by 60 dB in decayTime seconds.
func CombGain(delay, decayTime float64) float64 {
	return fastmath.Pow(0.001, delay/decayTime)
}

// Comb is a feedback comb filter parameterized by decay time.
type Comb struct {
	*Delay

	decay ugen.Param

	lastDelay float64
	lastDecay float64
	coeff     float64
	primed    bool
	updates   int
}

// NewComb returns a comb filter on in. decayTime is the time in seconds for
// the feedback to fall by 60 dB. WithFeedback has no effect.
func NewComb(in ugen.Node, maxDelay float64, delay, decayTime ugen.Param, opts ...Option) (*Comb, error) {
	d, err := New(in, maxDelay, delay, opts...)
	if err != nil {
		return nil, err
	}
	if err := ugen.CheckParams(d.FrameCount(), decayTime); err != nil {
		return nil, err
	}

	c := &Comb{Delay: d, decay: decayTime}
	d.gain = c.gain
	d.feedback = ugen.Const(0)
	return c, nil
}

// gain returns the cached coefficient, recomputing it when the delay or
// decay time resolved for frame i changed.
func (c *Comb) gain(i int) float64 {
	delay := c.delay.At(i)
	decay := c.decay.At(i)
	if !c.primed || delay != c.lastDelay || decay != c.lastDecay {
		c.coeff = CombGain(delay, decay)
		c.lastDelay = delay
		c.lastDecay = decay
		c.primed = true
		c.updates++
	}
	return c.coeff
}

// SetDecayTime replaces the decay time parameter.
func (c *Comb) SetDecayTime(p ugen.Param) { c.decay = p }

// DecayTime returns the decay time parameter.
func (c *Comb) DecayTime() ugen.Param { return c.decay }

// Gain returns the feedback gain used for the last processed frame, or 0
// before the first block.
func (c *Comb) Gain() float64 { return c.coeff }
