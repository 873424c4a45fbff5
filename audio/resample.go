// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/wavedraw/utils"

// filterAlpha is the coefficient of the one-pole low-pass applied
// before downsampling. A simplified filter - for production, use a
// proper FIR filter.
const filterAlpha = 0.5

// Resample converts a mono buffer from srcRate to dstRate using
// Catmull-Rom cubic interpolation. Edge samples are duplicated for the
// spline's outer knots. Equal rates return a copy of the input. When
// downsampling, a one-pole low-pass runs over the input first to tame
// aliasing.
func Resample(samples []float64, srcRate, dstRate int) ([]float64, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(samples) == 0 {
		return nil, nil
	}

	if srcRate == dstRate {
		out := make([]float64, len(samples))
		copy(out, samples)
		return out, nil
	}

	ratio := float64(srcRate) / float64(dstRate)
	if ratio > 1 {
		samples = lowPass(samples)
	}
	outLen := int(float64(len(samples)) / ratio)
	if outLen < 1 {
		outLen = 1
	}

	at := func(i int) float64 {
		if i < 0 {
			i = 0
		}
		if i >= len(samples) {
			i = len(samples) - 1
		}
		return samples[i]
	}

	out := make([]float64, outLen)
	for i := range out {
		pos := float64(i) * ratio
		base := int(pos)
		frac := pos - float64(base)

		out[i] = utils.CubicInterpolate(at(base-1), at(base), at(base+1), at(base+2), frac)
	}

	return out, nil
}

// lowPass runs a one-pole low-pass over samples. The filter state is
// seeded with the first sample to avoid a warm-up transient.
func lowPass(samples []float64) []float64 {
	out := make([]float64, len(samples))
	state := samples[0]
	for i, v := range samples {
		state = filterAlpha*v + (1-filterAlpha)*state
		out[i] = state
	}
	return out
}
