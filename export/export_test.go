// SPDX-License-Identifier: EPL-2.0

package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/wavedraw/envelope"
)

func testSnapshot() envelope.Snapshot {
	return envelope.Snapshot{
		Positive:      []float64{0, 0.5, 1},
		Negative:      []float64{0, -0.25, 0},
		PositiveDrawn: []bool{false, true, true},
		NegativeDrawn: []bool{false, true, false},
	}
}

func TestWriteEnvelopeCSV(t *testing.T) {
	t.Parallel()

	var sb strings.Builder

	err := WriteEnvelopeCSV(&sb, testSnapshot())
	if err != nil {
		t.Fatalf("WriteEnvelopeCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}

	if lines[0] != "Index,Positive,Negative" {
		t.Errorf("unexpected header: %q", lines[0])
	}

	if lines[2] != "1,0.5,-0.25" {
		t.Errorf("unexpected row for index 1: %q", lines[2])
	}
}

func TestWriteWAVFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")

	err := WriteWAVFile(path, 8000, []float64{0, 0.5, -0.5, 1, -1})
	if err != nil {
		t.Fatalf("WriteWAVFile: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	// 44-byte canonical header plus 5 samples of 2 bytes each.
	if info.Size() < 44+10 {
		t.Errorf("file too small: %d bytes", info.Size())
	}
}

func TestBundleWrite(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "session")

	b := &Bundle{
		Name:       "demo",
		SampleRate: 8000,
		Original:   []float64{0, 0.5, -0.5},
		Modified:   []float64{0, 0.25, -0.125},
		Envelopes:  testSnapshot(),
	}

	err := b.Write(dir)
	if err != nil {
		t.Fatalf("Bundle.Write: %v", err)
	}

	for _, name := range []string{
		DrawingPNG,
		SignPNG,
		ComparisonPNG,
		EnvelopeCSV,
		"future_demo.wav",
	} {
		_, err = os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}
}
