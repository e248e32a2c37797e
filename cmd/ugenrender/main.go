// Command ugenrender renders a small signal graph to a WAV file.
//
// Usage:
//
//	ugenrender [flags] patch
//
// Examples:
//
//	ugenrender -o pluck.wav pluck
//	ugenrender -freq 220 -decay 2 -o long.wav pluck
//	ugenrender -seconds 4 -interp hermite -o chorus.wav comb
//	ugenrender -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/delay"
	"github.com/cwbudde/algo-ugen/dsp/interp"
	"github.com/cwbudde/algo-ugen/dsp/signal"
	"github.com/cwbudde/algo-ugen/internal/log"
	"github.com/cwbudde/algo-ugen/measure/level"
)

func main() {
	out := flag.String("o", "out.wav", "output WAV file")
	rate := flag.Int("rate", 48000, "sample rate in Hz")
	block := flag.Int("block", 64, "block size in frames")
	seconds := flag.Float64("seconds", 2, "duration in seconds")
	freq := flag.Float64("freq", 440, "base frequency in Hz")
	decay := flag.Float64("decay", 1, "decay time in seconds")
	seed := flag.Int64("seed", 1, "noise seed")
	mode := flag.String("interp", "", "delay interpolation (none, linear, hermite)")
	peak := flag.Float64("peak", 0.9, "normalize to this peak level, 0 disables")
	list := flag.Bool("list", false, "list available patches")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ugenrender [flags] patch\n\n")
		fmt.Fprintf(os.Stderr, "Renders a signal graph to a 16-bit mono WAV file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ugenrender -o pluck.wav pluck\n")
		fmt.Fprintf(os.Stderr, "  ugenrender -seconds 4 -interp hermite -o chorus.wav comb\n")
		fmt.Fprintf(os.Stderr, "  ugenrender -list\n")
	}
	flag.Parse()

	if *list {
		for _, n := range patchNames() {
			fmt.Println(n)
		}
		return
	}

	logger := log.NewLogger(os.Stderr, *verbose || log.Debugging())
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	s := settings{
		freq:    *freq,
		decay:   *decay,
		seconds: *seconds,
		seed:    *seed,
		proc:    core.ApplyProcessorOptions(core.WithSampleRate(float64(*rate)), core.WithBlockSize(*block)),
	}
	if *mode != "" {
		m, err := interp.ParseMode(*mode)
		if err != nil {
			logger.WithError(err).Fatal("invalid interpolation")
		}
		s.delay = append(s.delay, delay.WithInterpolation(m))
	}

	if err := run(logger, flag.Arg(0), s, *peak, *out); err != nil {
		logger.WithError(err).Fatal("render failed")
	}
}

func run(logger *logrus.Logger, name string, s settings, peak float64, path string) error {
	if !(s.seconds > 0) || !(s.freq > 0) || !(s.decay > 0) {
		return fmt.Errorf("seconds, freq and decay must be positive")
	}

	features := cpu.DetectFeatures()
	logger.WithFields(logrus.Fields{
		"arch": features.Architecture,
		"sse2": features.HasSSE2,
		"avx2": features.HasAVX2,
		"neon": features.HasNEON,
	}).Debug("cpu features")

	p, err := buildPatch(name, s)
	if err != nil {
		return err
	}

	frames := int(math.Ceil(s.proc.Frames(s.seconds)))
	data := render(p, frames)

	lvl := level.Measure(data)
	logger.WithFields(logrus.Fields{
		"peak_db": fmt.Sprintf("%.1f", lvl.PeakDB),
		"rms_db":  fmt.Sprintf("%.1f", lvl.RMSDB),
		"crest":   fmt.Sprintf("%.2f", lvl.Crest),
	}).Debug("raw output level")
	if peak > 0 {
		if data, err = signal.Normalize(data, peak); err != nil {
			return fmt.Errorf("normalize: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := writeWAV(f, data, int(s.proc.SampleRate)); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"patch":  p.name,
		"frames": frames,
		"rate":   s.proc.SampleRate,
		"block":  s.proc.BlockSize,
		"file":   path,
	}).Info("rendered")
	return nil
}
