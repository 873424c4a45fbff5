// SPDX-License-Identifier: EPL-2.0

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/wavedraw/envelope"
	"github.com/ik5/wavedraw/render"
)

// Bundle collects everything a finished drawing session produces. Write
// lays the artifacts out in a single directory.
type Bundle struct {
	// Name labels the result WAV file (future_<Name>.wav).
	Name string

	// SampleRate of the original and modified waveforms.
	SampleRate int

	// Original is the waveform the envelopes were drawn over.
	Original []float64

	// Modified is the waveform after envelope application.
	Modified []float64

	// Envelopes is the final state of both drawn curves.
	Envelopes envelope.Snapshot
}

// Artifact file names inside a bundle directory.
const (
	DrawingPNG    = "final_drawing.png"
	SignPNG       = "natural_lang.png"
	ComparisonPNG = "wave_comparison.png"
	EnvelopeCSV   = "envelope.csv"
)

// ResultWAV returns the file name of the modified waveform.
func (b *Bundle) ResultWAV() string {
	return "future_" + b.Name + ".wav"
}

// Write creates dir (if missing) and writes all five artifacts into it:
// the drawing plot, the sign-subdivided plot, the before/after
// comparison plot, the modified waveform as 16-bit PCM WAV, and the
// envelope curves as CSV.
func (b *Bundle) Write(dir string) error {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return fmt.Errorf("create bundle dir: %w", err)
	}

	err = b.writePlots(dir)
	if err != nil {
		return err
	}

	err = WriteWAVFile(filepath.Join(dir, b.ResultWAV()), b.SampleRate, b.Modified)
	if err != nil {
		return err
	}

	return b.writeCSV(filepath.Join(dir, EnvelopeCSV))
}

func (b *Bundle) writePlots(dir string) error {
	drawing, err := render.EnvelopePlot(b.Original, b.Envelopes, render.DrawingScheme())
	if err != nil {
		return fmt.Errorf("drawing plot: %w", err)
	}

	err = render.SavePNG(drawing, filepath.Join(dir, DrawingPNG))
	if err != nil {
		return fmt.Errorf("drawing plot: %w", err)
	}

	sign, err := render.SignPlot(b.Modified, render.SignScheme())
	if err != nil {
		return fmt.Errorf("sign plot: %w", err)
	}

	err = render.SavePNG(sign, filepath.Join(dir, SignPNG))
	if err != nil {
		return fmt.Errorf("sign plot: %w", err)
	}

	comparison, err := render.ComparisonPlot(b.Original, b.Modified, render.ComparisonScheme())
	if err != nil {
		return fmt.Errorf("comparison plot: %w", err)
	}

	err = render.SavePNG(comparison, filepath.Join(dir, ComparisonPNG))
	if err != nil {
		return fmt.Errorf("comparison plot: %w", err)
	}

	return nil
}

func (b *Bundle) writeCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	err = WriteEnvelopeCSV(f, b.Envelopes)
	if err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
