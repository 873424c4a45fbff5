// SPDX-License-Identifier: EPL-2.0

// Package session ties a waveform, its envelope state and a preview
// player into one drawing run.
//
// A Session owns the original waveform (never mutated), an
// envelope.Store holding both drawn curves with undo history, and a
// stroke engine translating pointer coordinates into curve edits. The
// pointer methods (PointerDown, PointerMove, PointerUp) bracket one
// gesture; each finished gesture is a single undo step.
//
// Preview snapshots the envelopes, applies them to a copy of the
// waveform and hands the result to the player, so continued drawing
// never alters audio that is already playing. Export writes the full
// artifact bundle through the export package.
package session
