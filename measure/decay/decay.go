package decay

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
	"github.com/cwbudde/algo-ugen/measure/response"
)

// Errors returned by the analyser.
var (
	ErrEmpty      = errors.New("decay: impulse response is empty")
	ErrSampleRate = errors.New("decay: sample rate must be positive")
	ErrNoDecay    = errors.New("decay: response does not decay far enough")
)

// Floor is the level assigned to parts of the Schroeder curve that hold no
// energy.
const Floor = -200.0

// Range is an evaluation range on the Schroeder curve in dB.
type Range struct {
	Start, End float64
}

// Standard evaluation ranges.
var (
	EDTRange = Range{Start: 0, End: -10}
	T20Range = Range{Start: -5, End: -25}
	T30Range = Range{Start: -5, End: -35}
)

// Result holds the decay times of one impulse response in seconds. A time
// is zero when the response never crossed the end of its range.
type Result struct {
	RT60       float64
	EDT        float64
	T20        float64
	T30        float64
	CenterTime float64
	Peak       int
}

// Analyzer estimates decay times at a fixed sampling rate.
type Analyzer struct {
	SampleRate float64
}

// NewAnalyzer returns an analyser for sampleRate.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate}
}

func (a *Analyzer) check(ir []float64) error {
	if len(ir) == 0 {
		return ErrEmpty
	}
	if !(a.SampleRate > 0) || math.IsInf(a.SampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrSampleRate, a.SampleRate)
	}
	return nil
}

// Analyze measures ir from its absolute peak onwards.
func (a *Analyzer) Analyze(ir []float64) (Result, error) {
	if err := a.check(ir); err != nil {
		return Result{}, err
	}

	peak := Peak(ir)
	tail := ir[peak:]
	curve := Schroeder(tail)

	res := Result{
		Peak:       peak,
		CenterTime: a.centerTime(tail),
		EDT:        a.fit(curve, EDTRange),
		T20:        a.fit(curve, T20Range),
		T30:        a.fit(curve, T30Range),
	}
	res.RT60 = res.T30
	if res.RT60 == 0 {
		res.RT60 = res.T20
	}
	return res, nil
}

// RT60 is Analyze reduced to the reverberation time. It returns ErrNoDecay
// if neither T30 nor T20 can be fitted.
func (a *Analyzer) RT60(ir []float64) (float64, error) {
	res, err := a.Analyze(ir)
	if err != nil {
		return 0, err
	}
	if res.RT60 == 0 {
		return 0, ErrNoDecay
	}
	return res.RT60, nil
}

// DecayTime fits r to the Schroeder curve of ir and extrapolates to -60 dB.
func (a *Analyzer) DecayTime(ir []float64, r Range) (float64, error) {
	if err := a.check(ir); err != nil {
		return 0, err
	}
	if !(r.End < r.Start) {
		return 0, fmt.Errorf("decay: range end %v must lie below start %v", r.End, r.Start)
	}
	t := a.fit(Schroeder(ir), r)
	if t == 0 {
		return 0, ErrNoDecay
	}
	return t, nil
}

// CenterTime returns the energy centroid of ir in seconds.
func (a *Analyzer) CenterTime(ir []float64) (float64, error) {
	if err := a.check(ir); err != nil {
		return 0, err
	}
	return a.centerTime(ir), nil
}

// MeasureNode captures seconds of out's impulse response, driving src, and
// analyses it. The graph's sampling rate overrides the analyser's.
func (a *Analyzer) MeasureNode(src *ugen.Source, out ugen.Node, seconds float64) (Result, error) {
	if src == nil || out == nil {
		return Result{}, response.ErrNoNode
	}
	cfg := ugen.ConfigOf(out)
	frames := int(math.Ceil(cfg.Frames(seconds)))
	ir, err := response.Impulse(src, out, frames)
	if err != nil {
		return Result{}, fmt.Errorf("decay: %w", err)
	}
	return NewAnalyzer(cfg.SampleRate).Analyze(ir)
}

// Schroeder returns the backward-integrated energy of ir in dB relative to
// the total, so the curve starts at 0 dB. Samples after the last non-zero
// sample read Floor. An all-zero response yields all zeros.
func Schroeder(ir []float64) []float64 {
	out := make([]float64, len(ir))
	var sum float64
	for i := len(ir) - 1; i >= 0; i-- {
		sum += ir[i] * ir[i]
		out[i] = sum
	}
	if len(out) == 0 || out[0] <= 0 {
		return make([]float64, len(ir))
	}

	total := out[0]
	for i, e := range out {
		if e <= 0 {
			out[i] = Floor
			continue
		}
		out[i] = core.LinearPowerToDB(e / total)
	}
	return out
}

// Peak returns the index of the largest absolute sample, the first on ties.
func Peak(ir []float64) int {
	idx, best := 0, 0.0
	for i, v := range ir {
		if av := math.Abs(v); av > best {
			idx, best = i, av
		}
	}
	return idx
}

// Onset returns the index of the first sample within thresholdDB of the
// peak. thresholdDB is negative, e.g. -20.
func Onset(ir []float64, thresholdDB float64) int {
	if len(ir) == 0 {
		return 0
	}
	limit := math.Abs(ir[Peak(ir)]) * core.DBToLinear(thresholdDB)
	for i, v := range ir {
		if math.Abs(v) >= limit {
			return i
		}
	}
	return 0
}

// fit regresses curve between the first crossings of r.Start and r.End and
// returns the time to fall 60 dB at the fitted slope, or 0.
func (a *Analyzer) fit(curve []float64, r Range) float64 {
	first, last := -1, -1
	for i, v := range curve {
		if first < 0 && v <= r.Start {
			first = i
		}
		if first >= 0 && v <= r.End {
			last = i
			break
		}
	}
	if first < 0 || last <= first {
		return 0
	}

	var sx, sy, sxx, sxy float64
	for i := first; i <= last; i++ {
		x := float64(i - first)
		y := curve[i]
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}
	n := float64(last - first + 1)
	den := n*sxx - sx*sx
	if den == 0 {
		return 0
	}

	slope := (n*sxy - sx*sy) / den * a.SampleRate
	if !(slope < 0) {
		return 0
	}
	return -60 / slope
}

func (a *Analyzer) centerTime(ir []float64) float64 {
	var num, den float64
	for i, v := range ir {
		e := v * v
		num += float64(i) * e
		den += e
	}
	if den <= 0 {
		return 0
	}
	return num / den / a.SampleRate
}
