package ugen

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

var (
	// ErrNilNode is returned when a constructor receives a nil input node.
	ErrNilNode = errors.New("ugen: node is nil")
	// ErrShortBlock is returned when an input or modulator produces fewer
	// frames per block than the consuming node needs.
	ErrShortBlock = errors.New("ugen: block shorter than consumer")
)

// Node is a block-based signal producer.
type Node interface {
	// Process computes the next block and returns it. The returned slice
	// is owned by the node and overwritten by the next call.
	Process() []float64
	// Samples returns the last computed block without recomputing.
	Samples() []float64
	// Sample returns frame i of the last computed block.
	Sample(i int) float64
	// SampleRate returns the fixed sampling rate in frames per second.
	SampleRate() float64
	// FrameCount returns the fixed block length.
	FrameCount() int
}

// Base carries the buffer and sampling rate every node owns. Concrete nodes
// embed it and add a Process method.
type Base struct {
	buf        []float64
	sampleRate float64
}

// NewBase allocates a zeroed block of cfg.BlockSize frames.
func NewBase(cfg core.ProcessorConfig) Base {
	if cfg.BlockSize <= 0 {
		cfg.BlockSize = core.DefaultBlockSize
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = core.DefaultSampleRate
	}
	return Base{
		buf:        make([]float64, cfg.BlockSize),
		sampleRate: cfg.SampleRate,
	}
}

// Samples returns the current block.
func (b *Base) Samples() []float64 { return b.buf }

// Sample returns frame i of the current block.
func (b *Base) Sample(i int) float64 { return b.buf[i] }

// SampleRate returns the sampling rate.
func (b *Base) SampleRate() float64 { return b.sampleRate }

// FrameCount returns the block length.
func (b *Base) FrameCount() int { return len(b.buf) }

// Config returns the settings the node was built with.
func (b *Base) Config() core.ProcessorConfig {
	return core.ProcessorConfig{SampleRate: b.sampleRate, BlockSize: len(b.buf)}
}

// ConfigOf returns the sample rate and block size of n.
func ConfigOf(n Node) core.ProcessorConfig {
	return core.ProcessorConfig{SampleRate: n.SampleRate(), BlockSize: n.FrameCount()}
}

// ConfigFrom starts from the settings of in and applies opts on top.
// A nil input falls back to the package defaults.
func ConfigFrom(in Node, opts ...core.ProcessorOption) core.ProcessorConfig {
	if in == nil {
		return core.ApplyProcessorOptions(opts...)
	}
	return core.ApplyProcessorOptionsTo(ConfigOf(in), opts...)
}

// CheckInputs reports whether every node is non-nil and produces at least
// blockSize frames.
func CheckInputs(blockSize int, nodes ...Node) error {
	for _, n := range nodes {
		if n == nil {
			return ErrNilNode
		}
		if n.FrameCount() < blockSize {
			return fmt.Errorf("%w: %d < %d", ErrShortBlock, n.FrameCount(), blockSize)
		}
	}
	return nil
}

// CheckParams reports whether every modulated parameter references a node
// producing at least blockSize frames.
func CheckParams(blockSize int, params ...Param) error {
	for _, p := range params {
		if !p.IsModulated() {
			continue
		}
		if err := CheckInputs(blockSize, p.Node()); err != nil {
			return err
		}
	}
	return nil
}
