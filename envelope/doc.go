// SPDX-License-Identifier: EPL-2.0

// Package envelope implements the amplitude-envelope drawing engine:
// the two per-sample envelope curves, stroke capture with per-gesture
// undo/redo, and the transform that re-synthesizes audio against the
// drawn curves.
//
// # Store
//
// A Store holds one positive and one negative envelope, each with
// exactly one value per waveform sample. The positive envelope is
// clamped to values >= 0, the negative to values <= 0. The store also
// remembers, per index, whether the user has drawn there; the Apply
// transform leaves undrawn regions untouched.
//
// # Strokes and Undo
//
// One continuous pointer-down-to-pointer-up gesture is a stroke, and a
// stroke is the unit of undo. The StrokeEngine brackets its writes with
// BeginStroke/EndStroke; on EndStroke the net change over the touched
// index range is committed as one history entry, so Undo reverts whole
// gestures, not individual pixels:
//
//	engine.Down(120, 0.8)
//	engine.Move(180, 0.6)
//	engine.Up()          // one undoable stroke
//	store.Undo()         // exactly as before the gesture
//	store.Redo()         // and forward again
//
// Committing a new stroke clears the redo stack (linear history).
// Reset zeroes both envelopes and discards the history entirely.
//
// # Applying
//
// Apply scales each original sample toward its drawn bound: positive
// samples by the positive envelope, negative samples by the magnitude
// of the negative envelope, zeros stay zero. Where nothing was drawn
// the original sample passes through, so a blank session reproduces
// the input exactly. The transform is pure and deterministic.
//
// # Errors
//
// Empty-history undo/redo return ErrNothingToUndo/ErrNothingToRedo and
// leave the store untouched; callers surface them as status messages.
// Violations of the envelope-length invariant panic, since continuing
// would corrupt the output audio.
package envelope
