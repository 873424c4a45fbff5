// SPDX-License-Identifier: EPL-2.0

package envelope

import "fmt"

// ApplyConfig controls the synthesis transform.
type ApplyConfig struct {
	// ClampOutput limits results to [-1, 1]. Off by default so drawn
	// bounds above full scale are not silently altered.
	ClampOutput bool
}

// Apply re-synthesizes the waveform against a drawn envelope snapshot.
//
// Each positive sample is scaled by the positive envelope value at its
// index, each negative sample by the magnitude of the negative envelope
// value, but only where the user actually drew: untouched indices keep
// their original sample, so undrawn envelopes reproduce the input
// exactly. Zero samples stay zero regardless of either envelope.
//
// The transform is a pure function of (original, snapshot, cfg) with no
// state and no smoothing across neighbors: the same inputs always
// produce the same output bit for bit.
func Apply(original []float64, snap Snapshot, cfg ApplyConfig) []float64 {
	if len(original) != snap.Len() {
		panic(fmt.Sprintf("envelope: length mismatch, waveform %d vs envelope %d",
			len(original), snap.Len()))
	}

	out := make([]float64, len(original))
	for i, v := range original {
		switch {
		case v > 0:
			if snap.PositiveDrawn[i] {
				out[i] = v * snap.Positive[i]
			} else {
				out[i] = v
			}
		case v < 0:
			if snap.NegativeDrawn[i] {
				out[i] = v * -snap.Negative[i]
			} else {
				out[i] = v
			}
		default:
			// zero has no polarity to scale
			out[i] = 0
		}

		if cfg.ClampOutput {
			if out[i] > 1 {
				out[i] = 1
			} else if out[i] < -1 {
				out[i] = -1
			}
		}
	}

	return out
}
