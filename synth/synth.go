// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
)

// Kind selects the generated waveform shape.
type Kind int

const (
	Sine Kind = iota
	Square
	Triangle
	Sawtooth
)

func (k Kind) String() string {
	switch k {
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Sawtooth:
		return "sawtooth"
	default:
		return "sine"
	}
}

// Params describes a synthesized waveform. The sample rate is implied:
// SamplesPerCycle samples per period at Frequency Hz.
type Params struct {
	Kind            Kind
	Frequency       float64
	SamplesPerCycle int
	Periods         int
}

// SampleRate is the rate the generated waveform plays back at.
func (p Params) SampleRate() int {
	return int(p.Frequency * float64(p.SamplesPerCycle))
}

// Preset returns one of the canned parameter sets offered by the tool.
// Valid choices are 1 through 4; anything else reports ok=false.
func Preset(choice int) (p Params, ok bool) {
	switch choice {
	case 1:
		return Params{Kind: Sine, Frequency: 440, SamplesPerCycle: 100, Periods: 10}, true
	case 2:
		return Params{Kind: Square, Frequency: 220, SamplesPerCycle: 80, Periods: 20}, true
	case 3:
		return Params{Kind: Triangle, Frequency: 100, SamplesPerCycle: 200, Periods: 5}, true
	case 4:
		return Params{Kind: Sawtooth, Frequency: 50, SamplesPerCycle: 120, Periods: 15}, true
	}
	return Params{}, false
}

// Generate synthesizes the waveform described by p, peak-normalized to
// [-1, 1]. It returns the samples and the implied sample rate.
func Generate(p Params) ([]float64, int, error) {
	if p.Frequency <= 0 {
		return nil, 0, ErrInvalidFrequency
	}
	if p.SamplesPerCycle <= 0 || p.Periods <= 0 {
		return nil, 0, ErrInvalidLength
	}

	total := p.SamplesPerCycle * p.Periods
	rate := p.SampleRate()
	samples := make([]float64, total)

	for i := range samples {
		t := float64(i) / float64(rate)
		phase := 2 * math.Pi * p.Frequency * t
		samples[i] = sampleAt(p.Kind, phase)
	}

	normalize(samples)

	return samples, rate, nil
}

func sampleAt(kind Kind, phase float64) float64 {
	switch kind {
	case Square:
		s := math.Sin(phase)
		if s > 0 {
			return 1
		}
		if s < 0 {
			return -1
		}
		return 0
	case Triangle:
		// rises -1..1 over the first half cycle, falls back over the second
		frac := phase / (2 * math.Pi)
		frac -= math.Floor(frac)
		if frac < 0.5 {
			return 4*frac - 1
		}
		return 3 - 4*frac
	case Sawtooth:
		frac := phase / (2 * math.Pi)
		frac -= math.Floor(frac)
		return 2*frac - 1
	default:
		return math.Sin(phase)
	}
}

func normalize(samples []float64) {
	peak := 0.0
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak == 0 || peak == 1 {
		return
	}
	for i := range samples {
		samples[i] /= peak
	}
}
