// SPDX-License-Identifier: EPL-2.0

package envelope

// Snapshot is a deep copy of the store's envelopes, taken so playback
// and export read a consistent state while the user keeps drawing.
type Snapshot struct {
	Positive      []float64
	Negative      []float64
	PositiveDrawn []bool
	NegativeDrawn []bool
}

// Snapshot copies the current envelope state. The copy shares no memory
// with the store.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Positive:      make([]float64, len(s.pos)),
		Negative:      make([]float64, len(s.neg)),
		PositiveDrawn: make([]bool, len(s.posDrawn)),
		NegativeDrawn: make([]bool, len(s.negDrawn)),
	}
	copy(snap.Positive, s.pos)
	copy(snap.Negative, s.neg)
	copy(snap.PositiveDrawn, s.posDrawn)
	copy(snap.NegativeDrawn, s.negDrawn)

	return snap
}

// Len returns the envelope length captured by the snapshot.
func (sn Snapshot) Len() int { return len(sn.Positive) }
