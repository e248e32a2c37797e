// Package level meters the output of a node block by block.
package level

import (
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
)

// Level summarises the samples a Meter has seen. The dB fields read -Inf
// for silence.
type Level struct {
	Frames        int
	DC            float64
	RMS           float64
	RMSDB         float64
	Peak          float64
	PeakDB        float64
	PeakPos       int
	Crest         float64 // peak / RMS, 0 for silence
	ZeroCrossings int
}

// Meter accumulates level statistics across blocks. A zero crossing is
// counted only between neighbouring samples of opposite sign; a sample of
// exactly zero ends neither side.
type Meter struct {
	n        int
	sum      float64
	sumSq    float64
	peak     float64
	peakPos  int
	last     float64
	crossing int
}

// NewMeter returns an empty meter.
func NewMeter() *Meter {
	return &Meter{}
}

// Update adds a block.
func (m *Meter) Update(block []float64) {
	for _, x := range block {
		if a := math.Abs(x); a > m.peak {
			m.peak = a
			m.peakPos = m.n
		}
		if m.n > 0 && m.last*x < 0 {
			m.crossing++
		}
		m.sum += x
		m.sumSq += x * x
		m.last = x
		m.n++
	}
}

// Pull processes n for the given number of blocks and meters the output.
func (m *Meter) Pull(n ugen.Node, blocks int) {
	for range blocks {
		m.Update(n.Process())
	}
}

// Result returns the statistics gathered so far.
func (m *Meter) Result() Level {
	if m.n == 0 {
		return Level{RMSDB: math.Inf(-1), PeakDB: math.Inf(-1)}
	}

	nf := float64(m.n)
	rms := math.Sqrt(m.sumSq / nf)
	l := Level{
		Frames:        m.n,
		DC:            m.sum / nf,
		RMS:           rms,
		RMSDB:         core.LinearToDB(rms),
		Peak:          m.peak,
		PeakDB:        core.LinearToDB(m.peak),
		PeakPos:       m.peakPos,
		ZeroCrossings: m.crossing,
	}
	if rms > 0 {
		l.Crest = m.peak / rms
	}
	return l
}

// Reset clears the meter.
func (m *Meter) Reset() {
	*m = Meter{}
}

// Measure meters a finished buffer.
func Measure(data []float64) Level {
	m := NewMeter()
	m.Update(data)
	return m.Result()
}
