// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Collect drains a mono Source into a float64 slice.
// bufferSize controls the read chunk size (4096 is a good default).
func Collect(src Source, bufferSize int) ([]float64, error) {
	if bufferSize <= 0 {
		bufferSize = 4096
	}

	var samples []float64
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		for i := 0; i < n; i++ {
			samples = append(samples, float64(buf[i]))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return samples, nil
}

// PeakNormalize scales samples in place so the largest absolute value
// becomes 1. Returns the peak found before scaling. All-zero input is
// left untouched and reports a zero peak.
func PeakNormalize(samples []float64) float64 {
	peak := 0.0
	for _, s := range samples {
		if s > peak {
			peak = s
		} else if -s > peak {
			peak = -s
		}
	}

	if peak == 0 {
		return 0
	}

	inv := 1.0 / peak
	for i := range samples {
		samples[i] *= inv
	}

	return peak
}
