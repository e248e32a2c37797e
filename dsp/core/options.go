package core

import "math"

const (
	// DefaultSampleRate is the sampling rate used when none is configured.
	DefaultSampleRate = 44100.0
	// DefaultBlockSize is the number of frames a node computes per pull.
	DefaultBlockSize = 64
)

// ProcessorConfig defines the fixed processing settings of a node.
// Neither value changes after the node is constructed.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the defaults for generator nodes.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: DefaultSampleRate,
		BlockSize:  DefaultBlockSize,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 && !math.IsInf(sampleRate, 0) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the number of frames per block.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	return ApplyProcessorOptionsTo(DefaultProcessorConfig(), opts...)
}

// ApplyProcessorOptionsTo applies options on top of base instead of the
// defaults. Nodes with an input use it to inherit the input's settings.
func ApplyProcessorOptionsTo(base ProcessorConfig, opts ...ProcessorOption) ProcessorConfig {
	cfg := base
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Nyquist returns half the sample rate.
func (c ProcessorConfig) Nyquist() float64 {
	return c.SampleRate / 2
}

// Frames converts a duration in seconds to a frame count at the configured
// rate. The result is not rounded.
func (c ProcessorConfig) Frames(seconds float64) float64 {
	return seconds * c.SampleRate
}

// Options returns options that reproduce c exactly when applied.
func (c ProcessorConfig) Options() []ProcessorOption {
	return []ProcessorOption{WithSampleRate(c.SampleRate), WithBlockSize(c.BlockSize)}
}
