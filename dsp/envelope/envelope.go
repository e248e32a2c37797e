package envelope

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
	"github.com/cwbudde/algo-ugen/internal/fastmath"
	"github.com/cwbudde/algo-ugen/internal/log"
)

// NearZero replaces zero endpoints of exponential segments.
const NearZero = 1e-5

var logger log.Logger = log.GetLogger()

// Curve is the shape of one segment.
type Curve uint8

const (
	// Linear segments add a constant increment per frame.
	Linear Curve = iota
	// Exponential segments multiply by a constant ratio per frame.
	Exponential
)

func (c Curve) String() string {
	switch c {
	case Linear:
		return "linear"
	case Exponential:
		return "exponential"
	default:
		return "unknown"
	}
}

// Uniform returns n copies of c.
func Uniform(c Curve, n int) []Curve {
	if n < 0 {
		n = 0
	}
	out := make([]Curve, n)
	for i := range out {
		out[i] = c
	}
	return out
}

// Option configures an Envelope.
type Option func(*settings)

type settings struct {
	offset  float64
	release bool
	proc    []core.ProcessorOption
}

// WithOffset adds v to every output frame.
func WithOffset(v float64) Option {
	return func(s *settings) { s.offset = v }
}

// WithRelease withholds the final segment until Release is called.
func WithRelease(release bool) Option {
	return func(s *settings) { s.release = release }
}

// WithProcessorOptions sets the sample rate or block size.
func WithProcessorOptions(opts ...core.ProcessorOption) Option {
	return func(s *settings) { s.proc = append(s.proc, opts...) }
}

// Nudge replaces zero endpoints of an exponential segment from a to b with
// ±NearZero. A zero start takes the sign of b, then a zero end takes the
// sign of the (possibly nudged) start, so two zeros become +NearZero.
func Nudge(a, b float64) (float64, float64) {
	if a == 0 {
		if b >= 0 {
			a = NearZero
		} else {
			a = -NearZero
		}
	}
	if b == 0 {
		if a >= 0 {
			b = NearZero
		} else {
			b = -NearZero
		}
	}
	return a, b
}

// Envelope is a multi-segment envelope node.
type Envelope struct {
	ugen.Base

	levels []float64
	times  []float64
	curves []Curve
	// starts and ends hold the endpoints each segment ramps between, with
	// exponential zeros nudged.
	starts []float64
	ends   []float64

	offset  float64
	release bool
	valid   bool

	seg   int
	count int
	val   float64
	incr  float64
}

// Valid reports whether levels, times and curves describe at least one
// segment consistently.
func Valid(levels, times []float64, curves []Curve) bool {
	return len(times) >= 1 &&
		len(levels) == len(times)+1 &&
		len(curves) == len(times)
}

// New returns an envelope already retriggered into its first segment. An
// invalid configuration yields an envelope that emits zeros.
func New(levels, times []float64, curves []Curve, opts ...Option) *Envelope {
	var s settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	e := &Envelope{
		Base:    ugen.NewBase(core.ApplyProcessorOptions(s.proc...)),
		levels:  append([]float64(nil), levels...),
		times:   append([]float64(nil), times...),
		curves:  append([]Curve(nil), curves...),
		offset:  s.offset,
		release: s.release,
		valid:   Valid(levels, times, curves),
	}
	if !e.valid {
		logger.WithFields(logrus.Fields{
			"levels": len(levels),
			"times":  len(times),
			"curves": len(curves),
		}).Debug("envelope: invalid segment configuration, output disabled")
		return e
	}

	n := len(e.times)
	e.starts = make([]float64, n)
	e.ends = make([]float64, n)
	for i := range n {
		a, b := e.levels[i], e.levels[i+1]
		if e.curves[i] == Exponential {
			a, b = Nudge(a, b)
		}
		e.starts[i] = a
		e.ends[i] = b
	}

	e.Retrig()
	return e
}

// Retrig restarts the envelope from the first level.
func (e *Envelope) Retrig() {
	if !e.valid {
		return
	}
	e.val = e.levels[0]
	e.start(0)
}

// Release starts the final segment from the current value. It does nothing
// unless a release segment is configured.
func (e *Envelope) Release() {
	if !e.valid || !e.release {
		return
	}
	e.start(len(e.times) - 1)
}

func (e *Envelope) start(seg int) {
	e.seg = seg
	e.count = 0

	frames := e.times[seg] * e.SampleRate()
	a, b := e.starts[seg], e.ends[seg]
	if e.curves[seg] == Exponential {
		if e.val == 0 {
			e.val = a
		}
		e.incr = fastmath.Pow(b/a, 1/frames)
		return
	}
	e.incr = (b - a) / frames
}

// Process computes the next block.
func (e *Envelope) Process() []float64 {
	out := e.Samples()
	if !e.valid {
		core.Zero(out)
		return out
	}

	sr := e.SampleRate()
	last := len(e.times) - 1
	for i := range out {
		out[i] = e.val + e.offset

		frames := e.times[e.seg] * sr
		if float64(e.count) < frames {
			if e.curves[e.seg] == Exponential {
				e.val *= e.incr
			} else {
				e.val += e.incr
			}
			e.count++
			if float64(e.count) >= frames {
				e.val = e.ends[e.seg]
			}
			continue
		}

		e.val = e.ends[e.seg]
		if e.seg < last-1 || (!e.release && e.seg < last) {
			e.start(e.seg + 1)
		}
	}
	return out
}

// Valid reports whether the envelope produces output.
func (e *Envelope) Valid() bool { return e.valid }

// Segment returns the index of the active segment.
func (e *Envelope) Segment() int { return e.seg }

// Segments returns the number of segments.
func (e *Envelope) Segments() int { return len(e.times) }

// Value returns the value the next frame emits, without the offset.
func (e *Envelope) Value() float64 { return e.val }

// Offset returns the constant added to every frame.
func (e *Envelope) Offset() float64 { return e.offset }

// HasRelease reports whether the final segment waits for Release.
func (e *Envelope) HasRelease() bool { return e.release }

// Done reports whether the final segment has completed.
func (e *Envelope) Done() bool {
	if !e.valid {
		return true
	}
	last := len(e.times) - 1
	return e.seg == last && float64(e.count) >= e.times[last]*e.SampleRate()
}
