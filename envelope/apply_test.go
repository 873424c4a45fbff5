// SPDX-License-Identifier: EPL-2.0

package envelope

import "testing"

func TestApply_UndrawnIsIdentity(t *testing.T) {
	t.Parallel()

	original := []float64{0.5, -0.5, 0.25, 0.0, -0.9, 1.0}
	store := NewStore(len(original))

	got := Apply(original, store.Snapshot(), ApplyConfig{})

	for i := range original {
		if got[i] != original[i] {
			t.Errorf("got[%d] = %v, want %v (identity)", i, got[i], original[i])
		}
	}
}

func TestApply_FullScaleBoundsAreIdentity(t *testing.T) {
	t.Parallel()

	// drawing +1 everywhere on the positive envelope and -1 on the
	// negative scales nothing
	original := []float64{0.5, -0.5, 0.5, 0.0, -0.2}
	store := NewStore(len(original))

	strokeWrite(t, store, Positive, map[int]float64{0: 1, 1: 1, 2: 1, 3: 1, 4: 1})
	strokeWrite(t, store, Negative, map[int]float64{0: -1, 1: -1, 2: -1, 3: -1, 4: -1})

	got := Apply(original, store.Snapshot(), ApplyConfig{})

	for i := range original {
		if got[i] != original[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], original[i])
		}
	}
}

func TestApply_ScalesTowardDrawnBound(t *testing.T) {
	t.Parallel()

	original := []float64{0.8, -0.8, 0.4}
	store := NewStore(len(original))

	strokeWrite(t, store, Positive, map[int]float64{0: 0.5})
	strokeWrite(t, store, Negative, map[int]float64{1: -0.25})

	got := Apply(original, store.Snapshot(), ApplyConfig{})

	if got[0] != 0.8*0.5 {
		t.Errorf("got[0] = %v, want %v", got[0], 0.8*0.5)
	}
	if got[1] != -0.8*0.25 {
		t.Errorf("got[1] = %v, want %v", got[1], -0.8*0.25)
	}
	// index 2 untouched
	if got[2] != 0.4 {
		t.Errorf("got[2] = %v, want 0.4", got[2])
	}
}

func TestApply_SignNeverFlips(t *testing.T) {
	t.Parallel()

	original := []float64{0.5, -0.5}
	store := NewStore(len(original))

	strokeWrite(t, store, Positive, map[int]float64{0: 2})
	strokeWrite(t, store, Negative, map[int]float64{1: -2})

	got := Apply(original, store.Snapshot(), ApplyConfig{})

	if got[0] <= 0 {
		t.Errorf("got[0] = %v, positive input must stay positive", got[0])
	}
	if got[1] >= 0 {
		t.Errorf("got[1] = %v, negative input must stay negative", got[1])
	}
}

func TestApply_ZeroStaysZero(t *testing.T) {
	t.Parallel()

	original := []float64{0, 0, 0}
	store := NewStore(len(original))

	strokeWrite(t, store, Positive, map[int]float64{0: 1, 1: 1, 2: 1})
	strokeWrite(t, store, Negative, map[int]float64{0: -1, 1: -1, 2: -1})

	got := Apply(original, store.Snapshot(), ApplyConfig{})

	for i := range got {
		if got[i] != 0 {
			t.Errorf("got[%d] = %v, want 0", i, got[i])
		}
	}
}

func TestApply_DrawnZeroSilences(t *testing.T) {
	t.Parallel()

	original := []float64{0.5, -0.5}
	store := NewStore(len(original))

	strokeWrite(t, store, Positive, map[int]float64{0: 0})
	strokeWrite(t, store, Negative, map[int]float64{1: 0})

	got := Apply(original, store.Snapshot(), ApplyConfig{})

	if got[0] != 0 || got[1] != 0 {
		t.Errorf("got = %v, want silence where a zero bound was drawn", got)
	}
}

func TestApply_ClampOutput(t *testing.T) {
	t.Parallel()

	original := []float64{0.9, -0.9}
	store := NewStore(len(original))

	strokeWrite(t, store, Positive, map[int]float64{0: 3})
	strokeWrite(t, store, Negative, map[int]float64{1: -3})

	unclamped := Apply(original, store.Snapshot(), ApplyConfig{})
	if unclamped[0] <= 1 || unclamped[1] >= -1 {
		t.Fatalf("unclamped = %v, expected overdrive beyond full scale", unclamped)
	}

	clamped := Apply(original, store.Snapshot(), ApplyConfig{ClampOutput: true})
	if clamped[0] != 1 {
		t.Errorf("clamped[0] = %v, want 1", clamped[0])
	}
	if clamped[1] != -1 {
		t.Errorf("clamped[1] = %v, want -1", clamped[1])
	}
}

func TestApply_Deterministic(t *testing.T) {
	t.Parallel()

	original := []float64{0.5, -0.25, 0, 0.75, -1}
	store := NewStore(len(original))
	strokeWrite(t, store, Positive, map[int]float64{0: 0.3, 3: 0.6})
	strokeWrite(t, store, Negative, map[int]float64{1: -0.4, 4: -0.9})

	snap := store.Snapshot()

	first := Apply(original, snap, ApplyConfig{})
	second := Apply(original, snap, ApplyConfig{})

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("index %d: %v != %v, transform must be reproducible bit for bit",
				i, first[i], second[i])
		}
	}
}

func TestApply_LengthMismatchPanics(t *testing.T) {
	t.Parallel()

	store := NewStore(4)

	defer func() {
		if recover() == nil {
			t.Error("Apply() with mismatched lengths did not panic")
		}
	}()

	Apply([]float64{0.1, 0.2}, store.Snapshot(), ApplyConfig{})
}

func TestSnapshot_IsIsolatedCopy(t *testing.T) {
	t.Parallel()

	store := NewStore(3)
	strokeWrite(t, store, Positive, map[int]float64{0: 0.5})

	snap := store.Snapshot()

	// keep drawing after the snapshot was taken
	strokeWrite(t, store, Positive, map[int]float64{0: 0.9, 1: 0.9})

	if snap.Positive[0] != 0.5 {
		t.Errorf("snapshot.Positive[0] = %v, want 0.5", snap.Positive[0])
	}
	if snap.PositiveDrawn[1] {
		t.Error("snapshot saw a stroke made after it was taken")
	}
}
