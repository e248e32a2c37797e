package ugen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// counter is a node that writes its pull count into every frame.
type counter struct {
	Base
	pulls int
}

func newCounter(opts ...core.ProcessorOption) *counter {
	return &counter{Base: NewBase(core.ApplyProcessorOptions(opts...))}
}

func (c *counter) Process() []float64 {
	c.pulls++
	core.Fill(c.buf, float64(c.pulls))
	return c.buf
}

func TestNewBaseDefaults(t *testing.T) {
	b := NewBase(core.ProcessorConfig{})
	assert.Equal(t, core.DefaultBlockSize, b.FrameCount())
	assert.Equal(t, core.DefaultSampleRate, b.SampleRate())
}

func TestProcessIsUnconditional(t *testing.T) {
	c := newCounter(core.WithBlockSize(8))

	c.Process()
	c.Process()
	assert.Equal(t, 2, c.pulls)
	assert.Equal(t, 2.0, c.Sample(7))

	// Samples does not recompute.
	_ = c.Samples()
	assert.Equal(t, 2, c.pulls)
}

func TestConfigFromInheritsInput(t *testing.T) {
	in := NewSource(core.WithSampleRate(22050), core.WithBlockSize(32))

	cfg := ConfigFrom(in)
	assert.Equal(t, 22050.0, cfg.SampleRate)
	assert.Equal(t, 32, cfg.BlockSize)

	cfg = ConfigFrom(in, core.WithBlockSize(16))
	assert.Equal(t, 16, cfg.BlockSize)

	cfg = ConfigFrom(nil)
	assert.Equal(t, core.DefaultProcessorConfig(), cfg)
}

func TestCheckInputs(t *testing.T) {
	short := NewSource(core.WithBlockSize(8))
	long := NewSource(core.WithBlockSize(64))

	require.NoError(t, CheckInputs(8, short, long))
	require.ErrorIs(t, CheckInputs(16, long, short), ErrShortBlock)
	require.ErrorIs(t, CheckInputs(8, long, nil), ErrNilNode)
}

func TestCheckParams(t *testing.T) {
	short := NewSource(core.WithBlockSize(8))

	require.NoError(t, CheckParams(64, Const(1)))
	require.NoError(t, CheckParams(8, Mod(short)))
	require.ErrorIs(t, CheckParams(64, Const(1), Mod(short)), ErrShortBlock)
}

func TestViewDoesNotPull(t *testing.T) {
	c := newCounter(core.WithBlockSize(4))
	v := NewView(c)

	c.Process()
	out := v.Process()
	assert.Equal(t, 1, c.pulls)
	assert.Equal(t, []float64{1, 1, 1, 1}, out)
	assert.Equal(t, c.SampleRate(), v.SampleRate())
	assert.Equal(t, 4, v.FrameCount())
	assert.Equal(t, 1.0, v.Sample(3))

	assert.Nil(t, NewView(nil))
}
