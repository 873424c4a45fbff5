// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer converts a multi-channel Source to mono by averaging channels.
// Mono input passes through untouched.
type MonoMixer struct {
	src Source
	tmp []float32
	// partial frame carried between reads when the source returns a
	// sample count that is not a multiple of its channel count
	rem []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if m.src.Channels() == 1 {
		return m.src.ReadSamples(dst)
	}

	channels := m.src.Channels()
	samplesNeeded := len(dst) * channels

	// Grow tmp if needed; never shrink to avoid thrashing
	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]float32, samplesNeeded)
	}
	m.tmp = m.tmp[:samplesNeeded]

	// Lead with samples carried over from the previous read.
	total := copy(m.tmp, m.rem)
	m.rem = m.rem[:0]

	var err error
	for total < channels && err == nil {
		var n int
		n, err = m.src.ReadSamples(m.tmp[total:])
		total += n
		if n == 0 {
			break
		}
	}

	frames := total / channels
	if frames == 0 {
		return 0, err
	}

	// An incomplete trailing frame waits for the next read.
	if leftover := total % channels; leftover > 0 {
		m.rem = append(m.rem, m.tmp[total-leftover:total]...)
	}

	switch channels {
	case 2: // stereo fast path
		for f := 0; f < frames; f++ {
			idx := f << 1
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	default:
		invChannels := float32(1.0) / float32(channels)
		for f := 0; f < frames; f++ {
			sum := float32(0)
			baseIdx := f * channels
			for c := 0; c < channels; c++ {
				sum += m.tmp[baseIdx+c]
			}
			dst[f] = sum * invChannels
		}
	}

	return frames, err
}
