// SPDX-License-Identifier: EPL-2.0

package envelope

import "fmt"

// DefaultHistoryDepth is the number of strokes the undo history keeps
// before the oldest entry is dropped.
const DefaultHistoryDepth = 64

// pointState is the full per-index state of one envelope: its value and
// whether the user has drawn there. Undo restores both.
type pointState struct {
	value float64
	drawn bool
}

// strokeState accumulates the pre-stroke state of every index touched
// between BeginStroke and EndStroke.
type strokeState struct {
	polarity Polarity
	prev     map[int]pointState // first-touch state per index
	lo, hi   int
	touched  bool
}

// Store holds the two per-sample envelopes and their undo/redo history.
//
// The positive envelope is clamped to values >= 0 and the negative to
// values <= 0. Both have exactly one value per waveform sample. Writes
// between BeginStroke and EndStroke are committed as a single history
// entry, making the whole gesture the unit of undo.
//
// Store is not safe for concurrent use; all writes are expected to
// arrive from the single input-handling goroutine.
type Store struct {
	pos, neg           []float64
	posDrawn, negDrawn []bool

	undo []historyEntry
	redo []historyEntry
	// maximum undo entries kept; oldest dropped beyond this
	historyDepth int

	stroke *strokeState

	// dirty index range since the last TakeDirty; lo > hi means clean
	dirtyLo, dirtyHi int
}

// NewStore creates a Store with one envelope value per waveform sample,
// both envelopes zeroed. n must equal the waveform length; a
// non-positive n is a programming error.
func NewStore(n int) *Store {
	if n <= 0 {
		panic(fmt.Sprintf("envelope: store length must be positive, got %d", n))
	}

	return &Store{
		pos:          make([]float64, n),
		neg:          make([]float64, n),
		posDrawn:     make([]bool, n),
		negDrawn:     make([]bool, n),
		historyDepth: DefaultHistoryDepth,
		dirtyLo:      n,
		dirtyHi:      -1,
	}
}

// Len returns the envelope length, always equal to the waveform length.
func (s *Store) Len() int { return len(s.pos) }

func (s *Store) checkIndex(index int) {
	if index < 0 || index >= len(s.pos) {
		panic(fmt.Sprintf("envelope: index %d out of range [0, %d)", index, len(s.pos)))
	}
}

func (s *Store) half(p Polarity) ([]float64, []bool) {
	if p == Negative {
		return s.neg, s.negDrawn
	}
	return s.pos, s.posDrawn
}

// Value returns the envelope value at index for the given polarity.
func (s *Store) Value(p Polarity, index int) float64 {
	s.checkIndex(index)
	values, _ := s.half(p)
	return values[index]
}

// Drawn reports whether the user has drawn at index on the given
// polarity's envelope.
func (s *Store) Drawn(p Polarity, index int) bool {
	s.checkIndex(index)
	_, drawn := s.half(p)
	return drawn[index]
}

// Set writes value into the chosen envelope at index, clamped to the
// polarity's sign half, and marks the index dirty for redraw. Inside a
// stroke bracket the pre-write state is captured for undo.
func (s *Store) Set(p Polarity, index int, value float64) {
	s.checkIndex(index)
	values, drawn := s.half(p)

	if s.stroke != nil && s.stroke.polarity == p {
		s.stroke.capture(index, pointState{value: values[index], drawn: drawn[index]})
	}

	values[index] = p.clamp(value)
	drawn[index] = true
	s.markDirty(index, index)
}

// BeginStroke opens a stroke bracket for the given polarity. Every Set
// until EndStroke is captured into one history entry.
func (s *Store) BeginStroke(p Polarity) error {
	if s.stroke != nil {
		return ErrStrokeOpen
	}

	s.stroke = &strokeState{
		polarity: p,
		prev:     make(map[int]pointState),
	}

	return nil
}

// EndStroke closes the bracket and commits the net change as a single
// history entry. A stroke that touched nothing leaves history untouched.
// Committing a stroke clears the redo stack.
func (s *Store) EndStroke() error {
	if s.stroke == nil {
		return ErrNoStroke
	}

	st := s.stroke
	s.stroke = nil

	if !st.touched {
		return nil
	}

	entry := s.buildEntry(st)
	s.undo = append(s.undo, entry)
	if len(s.undo) > s.historyDepth {
		s.undo = s.undo[1:]
	}
	s.redo = s.redo[:0]

	return nil
}

// CancelStroke abandons the open bracket, restoring every index the
// stroke touched to its pre-stroke state. No history entry is recorded
// and the redo stack is left alone.
func (s *Store) CancelStroke() error {
	if s.stroke == nil {
		return ErrNoStroke
	}

	st := s.stroke
	s.stroke = nil

	values, drawn := s.half(st.polarity)
	for index, prev := range st.prev {
		values[index] = prev.value
		drawn[index] = prev.drawn
	}
	if st.touched {
		s.markDirty(st.lo, st.hi)
	}

	return nil
}

// Undo restores the envelope to its state before the most recent
// stroke and moves that stroke onto the redo stack.
func (s *Store) Undo() error {
	if s.stroke != nil {
		return ErrStrokeOpen
	}
	if len(s.undo) == 0 {
		return ErrNothingToUndo
	}

	entry := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]

	s.restore(entry.polarity, entry.start, entry.before)
	s.redo = append(s.redo, entry)

	return nil
}

// Redo replays the most recently undone stroke. It fails if no undo
// happened, or if a new stroke was committed since the last undo.
func (s *Store) Redo() error {
	if s.stroke != nil {
		return ErrStrokeOpen
	}
	if len(s.redo) == 0 {
		return ErrNothingToRedo
	}

	entry := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]

	s.restore(entry.polarity, entry.start, entry.after)
	s.undo = append(s.undo, entry)

	return nil
}

// Reset zeroes both envelopes and explicitly discards the undo/redo
// history. A reset cannot be undone.
func (s *Store) Reset() {
	for i := range s.pos {
		s.pos[i] = 0
		s.neg[i] = 0
		s.posDrawn[i] = false
		s.negDrawn[i] = false
	}
	s.undo = s.undo[:0]
	s.redo = s.redo[:0]
	s.stroke = nil
	s.markDirty(0, len(s.pos)-1)
}

// CanUndo reports whether an Undo would succeed.
func (s *Store) CanUndo() bool { return s.stroke == nil && len(s.undo) > 0 }

// CanRedo reports whether a Redo would succeed.
func (s *Store) CanRedo() bool { return s.stroke == nil && len(s.redo) > 0 }

func (s *Store) markDirty(lo, hi int) {
	if lo < s.dirtyLo {
		s.dirtyLo = lo
	}
	if hi > s.dirtyHi {
		s.dirtyHi = hi
	}
}

// TakeDirty returns the index range touched since the previous call and
// resets it. ok is false when nothing changed. Renderers use this for
// partial redraws; skipping the call and redrawing everything is
// functionally equivalent.
func (s *Store) TakeDirty() (lo, hi int, ok bool) {
	if s.dirtyLo > s.dirtyHi {
		return 0, 0, false
	}
	lo, hi = s.dirtyLo, s.dirtyHi
	s.dirtyLo, s.dirtyHi = len(s.pos), -1
	return lo, hi, true
}

func (st *strokeState) capture(index int, prev pointState) {
	if _, seen := st.prev[index]; !seen {
		st.prev[index] = prev
	}
	if !st.touched {
		st.lo, st.hi = index, index
		st.touched = true
		return
	}
	if index < st.lo {
		st.lo = index
	}
	if index > st.hi {
		st.hi = index
	}
}
