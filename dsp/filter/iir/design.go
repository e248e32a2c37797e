package iir

import (
	"math"

	"github.com/cwbudde/algo-ugen/dsp/filter/biquad"
)

// Coefficients is one section plus the input scale applied before the
// recursion.
type Coefficients struct {
	biquad.Coefficients

	Scale float64
}

// MagnitudeDB returns the section's gain at freqHz, including Scale.
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return c.Coefficients.MagnitudeDB(freqHz, sampleRate) + 20*math.Log10(math.Abs(c.Scale))
}

// Topology selects the per-frame recursion.
type Topology uint8

const (
	// DirectForm2 runs the full two-pole, two-zero section.
	DirectForm2 Topology = iota
	// AllPole uses only Scale, A1 and A2; the output is the intermediate
	// value w itself.
	AllPole
)

// DesignFunc computes coefficients from a frequency, a bandwidth (ignored
// by single-parameter designs) and the sample rate, all in Hz.
type DesignFunc func(freq, bandwidth, sampleRate float64) Coefficients

// Design is the coefficient-update strategy plugged into a Filter.
type Design struct {
	Name string
	// Bandwidth marks designs whose coefficients depend on the bandwidth
	// parameter; only those watch it for changes.
	Bandwidth bool
	Topology  Topology
	Compute   DesignFunc
}

var (
	// ButterworthLowPass is a 2nd-order Butterworth low-pass.
	ButterworthLowPass = Design{Name: "butterworth-lowpass", Compute: LowPass}
	// ButterworthHighPass is a 2nd-order Butterworth high-pass.
	ButterworthHighPass = Design{Name: "butterworth-highpass", Compute: HighPass}
	// ButterworthBandPass is a 2nd-order Butterworth band-pass.
	ButterworthBandPass = Design{Name: "butterworth-bandpass", Bandwidth: true, Compute: BandPass}
	// ButterworthBandReject is a 2nd-order Butterworth band-reject.
	ButterworthBandReject = Design{Name: "butterworth-bandreject", Bandwidth: true, Compute: BandReject}
	// ResonatorR is a band-pass resonator with zeros at z = ±sqrt(r),
	// keeping low-frequency response closer to unity.
	ResonatorR = Design{Name: "resonr", Bandwidth: true, Compute: ResonR}
	// ResonatorZ is a band-pass resonator with zeros at z = ±1.
	ResonatorZ = Design{Name: "resonz", Bandwidth: true, Compute: ResonZ}
	// Resonator is the classic all-pole resonator.
	Resonator = Design{Name: "reson", Bandwidth: true, Topology: AllPole, Compute: ResonR}
)

// LowPass designs a Butterworth low-pass at cutoff freq using the bilinear
// transform.
func LowPass(freq, _, sampleRate float64) Coefficients {
	l := 1 / math.Tan(math.Pi*freq/sampleRate)
	sqrt2l := math.Sqrt2 * l
	lsq := l * l

	a0 := 1 / (1 + sqrt2l + lsq)
	return Coefficients{
		Coefficients: biquad.Coefficients{
			B0: a0,
			B1: 2 * a0,
			B2: a0,
			A1: 2 * (1 - lsq) * a0,
			A2: (1 - sqrt2l + lsq) * a0,
		},
		Scale: 1,
	}
}

// HighPass designs a Butterworth high-pass at cutoff freq.
func HighPass(freq, _, sampleRate float64) Coefficients {
	l := math.Tan(math.Pi * freq / sampleRate)
	sqrt2l := math.Sqrt2 * l
	lsq := l * l

	a0 := 1 / (1 + sqrt2l + lsq)
	return Coefficients{
		Coefficients: biquad.Coefficients{
			B0: a0,
			B1: -2 * a0,
			B2: a0,
			A1: 2 * (lsq - 1) * a0,
			A2: (1 - sqrt2l + lsq) * a0,
		},
		Scale: 1,
	}
}

// BandPass designs a Butterworth band-pass centred on freq.
func BandPass(freq, bandwidth, sampleRate float64) Coefficients {
	l := 1 / math.Tan(math.Pi*bandwidth/sampleRate)
	cosl := 2 * math.Cos(2*math.Pi*freq/sampleRate)

	a0 := 1 / (1 + l)
	return Coefficients{
		Coefficients: biquad.Coefficients{
			B0: a0,
			B1: 0,
			B2: -a0,
			A1: -l * cosl * a0,
			A2: (l - 1) * a0,
		},
		Scale: 1,
	}
}

// BandReject designs a Butterworth band-reject centred on freq.
func BandReject(freq, bandwidth, sampleRate float64) Coefficients {
	l := math.Tan(math.Pi * bandwidth / sampleRate)
	cosl := 2 * math.Cos(2*math.Pi*freq/sampleRate)

	a0 := 1 / (1 + l)
	return Coefficients{
		Coefficients: biquad.Coefficients{
			B0: a0,
			B1: -cosl * a0,
			B2: a0,
			A1: -cosl * a0,
			A2: (1 - l) * a0,
		},
		Scale: 1,
	}
}

// ResonR designs a resonator whose pole radius is exp(-pi*bandwidth/sr).
func ResonR(freq, bandwidth, sampleRate float64) Coefficients {
	r := math.Exp(-bandwidth * math.Pi / sampleRate)
	rr := 2 * r
	rsq := r * r
	costh := (rr / (1 + rsq)) * math.Cos(2*math.Pi*freq/sampleRate)

	return Coefficients{
		Coefficients: biquad.Coefficients{
			B0: 1,
			B1: 0,
			B2: -r,
			A1: -rr * costh,
			A2: rsq,
		},
		Scale: (1 - rsq) * math.Sin(math.Acos(costh)),
	}
}

// ResonZ is ResonR with the numerator zeros moved to z = ±1.
func ResonZ(freq, bandwidth, sampleRate float64) Coefficients {
	c := ResonR(freq, bandwidth, sampleRate)
	c.B2 = -1
	return c
}
