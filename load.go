// SPDX-License-Identifier: EPL-2.0

package wavedraw

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/wavedraw/audio"
	"github.com/ik5/wavedraw/formats/aiff"
	"github.com/ik5/wavedraw/formats/mp3"
	"github.com/ik5/wavedraw/formats/vorbis"
	"github.com/ik5/wavedraw/formats/wav"
)

// DefaultRegistry returns a registry with every built-in decoder
// registered under its usual file extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// FromSource drains src into a drawing-ready waveform: downmixed to
// mono, collected as float64 and peak-normalized to [-1, 1]. Empty or
// all-silent input fails with ErrDegenerateWaveform before any drawing
// session can start on it.
func FromSource(src audio.Source) ([]float64, int, error) {
	mono := audio.NewMonoMixer(src)

	samples, err := audio.Collect(mono, mono.BufSize())
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	if len(samples) == 0 {
		return nil, 0, ErrDegenerateWaveform
	}

	if peak := audio.PeakNormalize(samples); peak == 0 {
		return nil, 0, ErrDegenerateWaveform
	}

	return samples, src.SampleRate(), nil
}

// LoadFile decodes an audio file by extension and prepares it for a
// drawing session. Supported formats: WAV, MP3, Ogg Vorbis, AIFF.
func LoadFile(path string) ([]float64, int, error) {
	dec, ok := DefaultRegistry().Get(filepath.Ext(path))
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	defer src.Close()

	return FromSource(src)
}
