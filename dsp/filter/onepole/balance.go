package onepole

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
)

// ZeroHandling decides the gain when the input level estimate is not
// positive.
type ZeroHandling uint8

const (
	// SubstituteMinimum divides by core.MinNormal instead of zero.
	SubstituteMinimum ZeroHandling = iota
	// ClampToOne passes the input through unchanged.
	ClampToOne
)

func (z ZeroHandling) String() string {
	switch z {
	case SubstituteMinimum:
		return "substitute-minimum"
	case ClampToOne:
		return "clamp-to-one"
	default:
		return "unknown"
	}
}

// Balance scales its input so that its level follows the level of a
// comparator signal.
type Balance struct {
	ugen.Base

	in   *ugen.View
	sig  *Smoother
	comp *Smoother
	zero ZeroHandling
}

// NewBalance returns a Balance node. Both in and comp are pulled once per
// block through the internal level estimators.
func NewBalance(in, comp ugen.Node, freq ugen.Param, zero ZeroHandling, opts ...core.ProcessorOption) (*Balance, error) {
	sig, err := NewRMS(in, freq, opts...)
	if err != nil {
		return nil, err
	}
	cmp, err := NewRMS(comp, freq, ugen.ConfigOf(sig).Options()...)
	if err != nil {
		return nil, fmt.Errorf("onepole: comparator: %w", err)
	}
	return &Balance{
		Base: ugen.NewBase(ugen.ConfigOf(sig)),
		in:   ugen.NewView(in),
		sig:  sig,
		comp: cmp,
		zero: zero,
	}, nil
}

// Process pulls both level estimators and writes the balanced block.
func (b *Balance) Process() []float64 {
	level := b.sig.Process()
	target := b.comp.Process()
	x := b.in.Samples()
	out := b.Samples()

	for i := range out {
		out[i] = x[i] * b.ratio(target[i], level[i])
	}
	return out
}

func (b *Balance) ratio(num, den float64) float64 {
	if den > 0 {
		return num / den
	}
	if b.zero == ClampToOne {
		return 1
	}
	return num / core.MinNormal
}

// SetFrequency sets the cutoff of both level estimators.
func (b *Balance) SetFrequency(p ugen.Param) {
	b.sig.SetFrequency(p)
	b.comp.SetFrequency(p)
}

// ZeroHandling returns the division policy.
func (b *Balance) ZeroHandling() ZeroHandling { return b.zero }

// Reset clears both estimators.
func (b *Balance) Reset() {
	b.sig.Reset()
	b.comp.Reset()
}
