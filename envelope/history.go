// SPDX-License-Identifier: EPL-2.0

package envelope

// historyEntry is a range diff over one polarity's envelope: the state
// of [start, start+len(before)) immediately before and after a stroke.
// Restoring `before` is an exact inverse of the stroke; restoring
// `after` replays it.
type historyEntry struct {
	polarity Polarity
	start    int
	before   []pointState
	after    []pointState
}

// buildEntry snapshots the touched range of a finished stroke. Indices
// inside [lo, hi] the stroke skipped use their current state on both
// sides, which restores them to themselves.
func (s *Store) buildEntry(st *strokeState) historyEntry {
	values, drawn := s.half(st.polarity)

	n := st.hi - st.lo + 1
	entry := historyEntry{
		polarity: st.polarity,
		start:    st.lo,
		before:   make([]pointState, n),
		after:    make([]pointState, n),
	}

	for i := 0; i < n; i++ {
		index := st.lo + i
		current := pointState{value: values[index], drawn: drawn[index]}
		entry.after[i] = current

		if prev, ok := st.prev[index]; ok {
			entry.before[i] = prev
		} else {
			entry.before[i] = current
		}
	}

	return entry
}

// restore writes a saved range back into one envelope and marks it
// dirty for redraw.
func (s *Store) restore(p Polarity, start int, states []pointState) {
	values, drawn := s.half(p)

	for i, st := range states {
		values[start+i] = st.value
		drawn[start+i] = st.drawn
	}

	if len(states) > 0 {
		s.markDirty(start, start+len(states)-1)
	}
}
