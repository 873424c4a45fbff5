// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"io"
	"testing"
)

// fakeReader feeds canned PCM bytes instead of a real go-mp3 decoder.
type fakeReader struct {
	data []byte
	pos  int
}

func (f *fakeReader) SampleRate() int { return 44100 }

func (f *fakeReader) Read(p []byte) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestDecode_InvalidInput(t *testing.T) {
	t.Parallel()

	r := bytes.NewReader([]byte("not an mp3 stream"))

	if _, err := (Decoder{}).Decode(r); err == nil {
		t.Error("Decode() succeeded on garbage input, want error")
	}
}

func TestReadSamples_ConvertsPCM16(t *testing.T) {
	t.Parallel()

	// Two samples: 0x4000 (0.5), 0xC000 (-0.5), little-endian
	s := &source{
		dec:        &fakeReader{data: []byte{0x00, 0x40, 0x00, 0xC0}},
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 16),
	}

	dst := make([]float32, 2)
	n, err := s.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("ReadSamples() n = %d, want 2", n)
	}

	if dst[0] != 0.5 {
		t.Errorf("dst[0] = %v, want 0.5", dst[0])
	}
	if dst[1] != -0.5 {
		t.Errorf("dst[1] = %v, want -0.5", dst[1])
	}
}

func TestReadSamples_EOF(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &fakeReader{},
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 16),
	}

	dst := make([]float32, 4)
	n, err := s.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}
