// SPDX-License-Identifier: EPL-2.0

package utils

// Float64ToInt16 converts a normalized sample to 16-bit PCM.
// Input is clamped to [-1, 1] before scaling.
func Float64ToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Scale by 32767 on both halves so +1.0 does not overflow
	return int16(x * 32767.0)
}

// Int16ToFloat64 converts a 16-bit PCM sample to the normalized [-1, 1] range.
func Int16ToFloat64(v int16) float64 {
	return float64(v) / 32768.0
}

// Clamp limits x to the closed interval [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
