package envelope

// ExpCurveOffset is the level shift the exponential presets apply so their
// curves never touch zero.
const ExpCurveOffset = 0.1

// Line traces a single linear ramp from start to end over dur seconds.
func Line(start, end, dur float64, opts ...Option) *Envelope {
	return New([]float64{start, end}, []float64{dur}, []Curve{Linear}, opts...)
}

// ExpCurve traces a single exponential curve from start to end.
func ExpCurve(start, end, dur float64, opts ...Option) *Envelope {
	return New([]float64{start, end}, []float64{dur}, []Curve{Exponential}, opts...)
}

// LineSeg traces linear segments through levels.
func LineSeg(levels, times []float64, opts ...Option) *Envelope {
	return New(levels, times, Uniform(Linear, len(times)), opts...)
}

// ExpSeg traces exponential segments through levels.
func ExpSeg(levels, times []float64, opts ...Option) *Envelope {
	return New(levels, times, Uniform(Exponential, len(times)), opts...)
}

// LineEnv is a linear rise, sustain and decay lasting total seconds.
func LineEnv(attack, sustain, total, decay float64, opts ...Option) *Envelope {
	return LineSeg(
		[]float64{0, sustain, sustain, 0},
		[]float64{attack, total - attack - decay, decay},
		opts...,
	)
}

// ExpEnv is the exponential counterpart of LineEnv. Levels are shifted by
// ExpCurveOffset and the shift is removed from the output; a WithOffset
// option given here adds to it.
func ExpEnv(attack, sustain, total, decay float64, opts ...Option) *Envelope {
	const k = ExpCurveOffset
	return ExpSeg(
		[]float64{k, sustain + k, sustain + k, k},
		[]float64{attack, total - attack - decay, decay},
		expOptions(opts)...,
	)
}

// LineADSR is a linear attack, decay, sustain and release envelope. The
// release segment waits for Release.
func LineADSR(attack, peak, decay, sustain, release float64, opts ...Option) *Envelope {
	return LineSeg(
		[]float64{0, peak, sustain, 0},
		[]float64{attack, decay, release},
		append([]Option{WithRelease(true)}, opts...)...,
	)
}

// ExpADSR is the exponential counterpart of LineADSR.
func ExpADSR(attack, peak, decay, sustain, release float64, opts ...Option) *Envelope {
	const k = ExpCurveOffset
	return ExpSeg(
		[]float64{k, peak + k, sustain + k, k},
		[]float64{attack, decay, release},
		expOptions(append([]Option{WithRelease(true)}, opts...))...,
	)
}

// expOptions applies opts and then lowers the resulting offset by
// ExpCurveOffset.
func expOptions(opts []Option) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, func(s *settings) { s.offset -= ExpCurveOffset })
}
