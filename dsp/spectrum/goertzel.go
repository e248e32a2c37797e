package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
)

// Goertzel evaluates one DFT bin over all samples processed since the last
// Reset.
//
// Leakage occurs when the target frequency does not complete an integer
// number of cycles in the processed span; the level of a steady tone is
// still accurate to within a few percent once the span covers many cycles.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	cos, sin   float64
	s0, s1     float64
	n          int
}

// NewGoertzel creates an analyser for frequency, which must lie in
// [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}
	if frequency < 0 || frequency > sampleRate/2 || math.IsNaN(frequency) {
		return nil, fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v", frequency)
	}

	w := 2 * math.Pi * frequency / sampleRate
	return &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      2 * math.Cos(w),
		cos:        math.Cos(w),
		sin:        math.Sin(w),
	}, nil
}

// Reset clears the accumulated state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
	g.n = 0
}

// ProcessBlock accumulates a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1
	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}
	g.s0, g.s1 = s0, s1
	g.n += len(input)
}

// ProcessNode pulls blocks from n and accumulates them.
func (g *Goertzel) ProcessNode(n ugen.Node, blocks int) {
	for range blocks {
		g.ProcessBlock(n.Process())
	}
}

// Bin returns the complex DFT term of the processed samples.
func (g *Goertzel) Bin() complex128 {
	return complex(g.s0-g.s1*g.cos, g.s1*g.sin)
}

// Power returns |X[k]|^2.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns |X[k]|.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}
	return math.Sqrt(p)
}

// Amplitude returns the peak amplitude of a sine at the target frequency
// that would produce the accumulated bin.
func (g *Goertzel) Amplitude() float64 {
	if g.n == 0 {
		return 0
	}
	return 2 * g.Magnitude() / float64(g.n)
}

// LevelDB returns Amplitude in dB.
func (g *Goertzel) LevelDB() float64 {
	return core.LinearToDB(g.Amplitude())
}

// Frequency returns the target frequency.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// Samples returns the number of samples accumulated since Reset.
func (g *Goertzel) Samples() int { return g.n }
