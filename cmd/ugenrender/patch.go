package main

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/delay"
	"github.com/cwbudde/algo-ugen/dsp/envelope"
	"github.com/cwbudde/algo-ugen/dsp/filter/iir"
	"github.com/cwbudde/algo-ugen/dsp/filter/onepole"
	"github.com/cwbudde/algo-ugen/dsp/signal"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
)

// settings are the knobs shared by all patches.
type settings struct {
	freq    float64
	decay   float64
	seconds float64
	seed    int64
	delay   []delay.Option
	proc    core.ProcessorConfig
}

// patch renders one block per step. Nodes are pulled in dependency order
// and operator results are copied into sources, since operators combine
// the current blocks only.
type patch struct {
	name string
	step func() []float64
}

type builder func(s settings) (*patch, error)

var registry = map[string]builder{
	"pluck": newPluck,
	"sweep": newSweep,
	"comb":  newChorus,
}

func patchNames() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func buildPatch(name string, s settings) (*patch, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown patch %q (use -list to see available)", name)
	}
	return b(s)
}

// newPluck excites a tuned comb with a short noise burst and darkens the
// result with a two-pole low-pass.
func newPluck(s settings) (*patch, error) {
	opts := s.proc.Options()

	noise, err := signal.NewNoise(1, s.seed, opts...)
	if err != nil {
		return nil, err
	}
	burst := envelope.ExpCurve(1, 0.001, 0.01, envelope.WithProcessorOptions(opts...))
	excite := ugen.NewSource(opts...)

	period := 1 / s.freq
	comb, err := delay.NewComb(excite, 2*period, ugen.Const(period), ugen.Const(s.decay), s.delay...)
	if err != nil {
		return nil, err
	}
	lp, err := iir.NewLowPass(comb, ugen.Const(4*s.freq))
	if err != nil {
		return nil, err
	}

	return &patch{name: "pluck", step: func() []float64 {
		noise.Process()
		burst.Process()
		excite.SetData(ugen.Mul(noise, burst).Samples())
		return lp.Process()
	}}, nil
}

// newSweep runs noise through a resonator whose centre follows an
// exponential glide and restores the noise level with Balance.
func newSweep(s settings) (*patch, error) {
	opts := s.proc.Options()

	noise, err := signal.NewNoise(0.5, s.seed, opts...)
	if err != nil {
		return nil, err
	}
	glide := envelope.ExpCurve(s.freq, 8*s.freq, s.seconds, envelope.WithProcessorOptions(opts...))

	res, err := iir.NewResonZ(noise, ugen.Mod(glide), ugen.Const(s.freq/10))
	if err != nil {
		return nil, err
	}
	bal, err := onepole.NewBalance(res, ugen.NewView(noise), ugen.Const(onepole.DefaultRMSCutoff), onepole.SubstituteMinimum)
	if err != nil {
		return nil, err
	}

	return &patch{name: "sweep", step: func() []float64 {
		glide.Process()
		return bal.Process()
	}}, nil
}

// newChorus feeds a decaying sine through a feedback delay whose length is
// swept by a slow sine, then smooths the result with a one-pole low-pass.
func newChorus(s settings) (*patch, error) {
	opts := s.proc.Options()

	osc, err := signal.NewSine(ugen.Const(s.freq), 0.5, opts...)
	if err != nil {
		return nil, err
	}
	const attack = 0.005
	release := min(s.decay, s.seconds-attack)
	amp := envelope.ExpEnv(attack, 1, s.seconds, release, envelope.WithProcessorOptions(opts...))
	dry := ugen.NewSource(opts...)

	lfo, err := signal.NewSine(ugen.Const(0.5), 1, opts...)
	if err != nil {
		return nil, err
	}
	const base, depth = 0.012, 0.004
	delayTime := ugen.NewSource(opts...)

	dopts := append([]delay.Option{delay.WithFeedback(ugen.Const(0.6))}, s.delay...)
	dl, err := delay.New(dry, base+2*depth, ugen.Mod(delayTime), dopts...)
	if err != nil {
		return nil, err
	}
	mix := ugen.NewSource(opts...)
	lp, err := onepole.NewLowPass(mix, ugen.Const(6000))
	if err != nil {
		return nil, err
	}

	return &patch{name: "comb", step: func() []float64 {
		osc.Process()
		amp.Process()
		dry.SetData(ugen.Mul(osc, amp).Samples())
		lfo.Process()
		delayTime.SetData(ugen.AddScalar(ugen.Scale(lfo, depth), base).Samples())
		dl.Process()
		mix.SetData(ugen.Add(dry, dl).Samples())
		return lp.Process()
	}}, nil
}

// render pulls frames samples from p.
func render(p *patch, frames int) []float64 {
	out := make([]float64, 0, frames)
	for len(out) < frames {
		out = append(out, p.step()...)
	}
	return out[:frames]
}
