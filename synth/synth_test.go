// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"io"
	"math"
	"testing"
)

func TestGenerate_LengthAndRate(t *testing.T) {
	t.Parallel()

	p := Params{Kind: Sine, Frequency: 440, SamplesPerCycle: 100, Periods: 10}

	samples, rate, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(samples) != 1000 {
		t.Errorf("len(samples) = %d, want 1000", len(samples))
	}
	if rate != 44000 {
		t.Errorf("rate = %d, want 44000 (440 Hz * 100 samples/cycle)", rate)
	}
}

func TestGenerate_Normalized(t *testing.T) {
	t.Parallel()

	for kind := Sine; kind <= Sawtooth; kind++ {
		samples, _, err := Generate(Params{Kind: kind, Frequency: 100, SamplesPerCycle: 64, Periods: 4})
		if err != nil {
			t.Fatalf("Generate(%v) error = %v", kind, err)
		}

		peak := 0.0
		for _, s := range samples {
			if a := math.Abs(s); a > peak {
				peak = a
			}
		}
		if math.Abs(peak-1) > 1e-9 {
			t.Errorf("%v peak = %v, want 1", kind, peak)
		}
	}
}

func TestGenerate_SquareIsTwoLevel(t *testing.T) {
	t.Parallel()

	samples, _, err := Generate(Params{Kind: Square, Frequency: 220, SamplesPerCycle: 80, Periods: 2})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for i, s := range samples {
		if s != 1 && s != -1 && s != 0 {
			t.Fatalf("samples[%d] = %v, square wave must be -1, 0 or 1", i, s)
		}
	}
}

func TestGenerate_TriangleHitsExtremes(t *testing.T) {
	t.Parallel()

	samples, _, err := Generate(Params{Kind: Triangle, Frequency: 100, SamplesPerCycle: 200, Periods: 1})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// starts at -1, peaks at +1 mid-cycle
	if math.Abs(samples[0]-(-1)) > 1e-9 {
		t.Errorf("samples[0] = %v, want -1", samples[0])
	}
	if math.Abs(samples[100]-1) > 1e-9 {
		t.Errorf("samples[100] = %v, want 1", samples[100])
	}
}

func TestGenerate_InvalidParams(t *testing.T) {
	t.Parallel()

	if _, _, err := Generate(Params{Frequency: 0, SamplesPerCycle: 10, Periods: 1}); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("Generate() error = %v, want ErrInvalidFrequency", err)
	}
	if _, _, err := Generate(Params{Frequency: 440, SamplesPerCycle: 0, Periods: 1}); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("Generate() error = %v, want ErrInvalidLength", err)
	}
}

func TestPreset(t *testing.T) {
	t.Parallel()

	p, ok := Preset(2)
	if !ok {
		t.Fatal("Preset(2) not found")
	}
	if p.Kind != Square || p.Frequency != 220 || p.SamplesPerCycle != 80 || p.Periods != 20 {
		t.Errorf("Preset(2) = %+v, want square 220 Hz, 80 spc, 20 periods", p)
	}

	if _, ok := Preset(9); ok {
		t.Error("Preset(9) reported ok")
	}
}

func TestNewSource_StreamsGeneratedWave(t *testing.T) {
	t.Parallel()

	p := Params{Kind: Sine, Frequency: 100, SamplesPerCycle: 50, Periods: 2}

	src, err := NewSource(p)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}
	defer src.Close()

	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}
	if src.SampleRate() != 5000 {
		t.Errorf("SampleRate() = %d, want 5000", src.SampleRate())
	}

	total := 0
	buf := make([]float32, 32)
	for {
		n, err := src.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != 100 {
		t.Errorf("streamed %d samples, want 100", total)
	}
}
