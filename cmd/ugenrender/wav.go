package main

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitDepth     = 16
	pcmFormat    = 1
	fullScale16  = 0x7FFF
	monoChannels = 1
)

// writeWAV encodes data as 16-bit mono PCM. Samples outside [-1, 1] are
// clipped.
func writeWAV(w io.WriteSeeker, data []float64, sampleRate int) error {
	e := wav.NewEncoder(w, sampleRate, bitDepth, monoChannels, pcmFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(data)),
	}
	for i, v := range data {
		buf.Data[i] = int(math.Round(math.Max(-1, math.Min(1, v)) * fullScale16))
	}

	if err := e.Write(buf); err != nil {
		return fmt.Errorf("wav: write: %w", err)
	}
	if err := e.Close(); err != nil {
		return fmt.Errorf("wav: close: %w", err)
	}
	return nil
}
