// SPDX-License-Identifier: EPL-2.0

package export

import (
	"fmt"
	"os"

	"github.com/ik5/wavedraw/formats/wav"
	"github.com/ik5/wavedraw/utils"
)

// WriteWAVFile writes samples as a mono 16-bit PCM WAV file at path.
// Samples outside [-1, 1] are clipped during quantization.
func WriteWAVFile(path string, sampleRate int, samples []float64) error {
	pcm := make([]int16, len(samples))
	for i, v := range samples {
		pcm[i] = utils.Float64ToInt16(v)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	err = wav.Encode16(f, sampleRate, pcm)
	if err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
