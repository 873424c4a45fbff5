// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"io"

	"github.com/ik5/wavedraw/audio"
)

// source streams a generated waveform as an audio.Source, so synthetic
// input follows the same load path as decoded files.
type source struct {
	samples    []float64
	sampleRate int
	pos        int
}

// NewSource generates the waveform described by p and exposes it as a
// mono audio.Source.
func NewSource(p Params) (audio.Source, error) {
	samples, rate, err := Generate(p)
	if err != nil {
		return nil, err
	}

	return &source{samples: samples, sampleRate: rate}, nil
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return 1 }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := min(len(dst), len(s.samples)-s.pos)
	for i := 0; i < n; i++ {
		dst[i] = float32(s.samples[s.pos+i])
	}
	s.pos += n

	var err error
	if s.pos >= len(s.samples) {
		err = io.EOF
	}

	return n, err
}
