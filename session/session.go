// SPDX-License-Identifier: EPL-2.0

package session

import (
	"errors"
	"fmt"
	"math"

	"github.com/ik5/wavedraw/envelope"
	"github.com/ik5/wavedraw/export"
)

// Player plays a waveform for preview. *preview.Player satisfies it; the
// interface exists so tests can substitute their own implementation.
type Player interface {
	Play(samples []float64, sampleRate int) error
	Stop()
	Close() error
}

// overshoot is how far above the waveform peak drawing is allowed, and
// how far the plots extend past it.
const overshoot = 1.1

// Session binds a loaded waveform to its envelope store, stroke engine
// and preview player. It is the unit one drawing run operates on.
type Session struct {
	name     string
	waveform []float64
	rate     int

	store  *envelope.Store
	engine *envelope.StrokeEngine
	player Player

	applyCfg envelope.ApplyConfig
}

// New creates a session over a waveform. The waveform must be non-empty;
// player may be nil when preview is not needed.
func New(name string, waveform []float64, sampleRate int, player Player) (*Session, error) {
	if len(waveform) == 0 {
		return nil, errors.New("empty waveform")
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}

	store := envelope.NewStore(len(waveform))

	return &Session{
		name:     name,
		waveform: waveform,
		rate:     sampleRate,
		store:    store,
		engine:   envelope.NewStrokeEngine(store, maxAmplitude(waveform)),
		player:   player,
	}, nil
}

// maxAmplitude returns the drawing bound: the waveform peak with a
// little headroom above it.
func maxAmplitude(w []float64) float64 {
	var peak float64

	for _, v := range w {
		peak = math.Max(peak, math.Abs(v))
	}

	if peak == 0 {
		peak = 1
	}

	return peak * overshoot
}

// Name returns the session label used for exported file names.
func (s *Session) Name() string { return s.name }

// Len returns the number of samples in the waveform.
func (s *Session) Len() int { return len(s.waveform) }

// SampleRate returns the waveform sample rate in Hz.
func (s *Session) SampleRate() int { return s.rate }

// Waveform returns a copy of the original waveform.
func (s *Session) Waveform() []float64 {
	out := make([]float64, len(s.waveform))
	copy(out, s.waveform)

	return out
}

// Snapshot returns an immutable copy of the current envelope state.
func (s *Session) Snapshot() envelope.Snapshot { return s.store.Snapshot() }

// SetClampOutput controls whether applied samples are clipped to [-1, 1].
func (s *Session) SetClampOutput(clamp bool) { s.applyCfg.ClampOutput = clamp }

// PointerDown starts a stroke at the given drawing coordinates.
func (s *Session) PointerDown(x, y float64) error { return s.engine.Down(x, y) }

// PointerMove extends the current stroke. Without a preceding
// PointerDown it does nothing.
func (s *Session) PointerMove(x, y float64) error { return s.engine.Move(x, y) }

// PointerUp finishes the current stroke and commits it as one undo step.
func (s *Session) PointerUp() error { return s.engine.Up() }

// CancelStroke aborts an in-flight gesture, rolling back its writes
// without recording an undo step. Safe to call when no gesture is
// active.
func (s *Session) CancelStroke() { s.engine.Cancel() }

// Undo reverts the most recent stroke. It returns a user-facing status
// line; an empty history is a notice, not an error.
func (s *Session) Undo() string {
	err := s.store.Undo()

	switch {
	case errors.Is(err, envelope.ErrNothingToUndo):
		return "nothing to undo"
	case err != nil:
		return err.Error()
	default:
		return "undone"
	}
}

// Redo reapplies the most recently undone stroke.
func (s *Session) Redo() string {
	err := s.store.Redo()

	switch {
	case errors.Is(err, envelope.ErrNothingToRedo):
		return "nothing to redo"
	case err != nil:
		return err.Error()
	default:
		return "redone"
	}
}

// Reset clears both envelopes and the undo history. An in-flight
// gesture is aborted first so the stroke engine and store come out of
// the reset in a consistent idle state.
func (s *Session) Reset() {
	s.engine.Cancel()
	s.store.Reset()
}

// Apply returns the waveform with the current envelopes applied. The
// original waveform is left untouched.
func (s *Session) Apply() []float64 {
	return envelope.Apply(s.waveform, s.store.Snapshot(), s.applyCfg)
}

// Preview plays the current result. The envelope state is snapshotted
// up front, so strokes drawn while playback runs do not bend the audio
// mid-flight. A new preview cancels the previous one.
func (s *Session) Preview() error {
	if s.player == nil {
		return errors.New("no preview player")
	}

	return s.player.Play(s.Apply(), s.rate)
}

// StopPreview halts playback if any is running.
func (s *Session) StopPreview() {
	if s.player != nil {
		s.player.Stop()
	}
}

// Export writes the session's artifact bundle into dir.
func (s *Session) Export(dir string) error {
	b := &export.Bundle{
		Name:       s.name,
		SampleRate: s.rate,
		Original:   s.Waveform(),
		Modified:   s.Apply(),
		Envelopes:  s.store.Snapshot(),
	}

	return b.Write(dir)
}

// Close releases the preview player.
func (s *Session) Close() error {
	if s.player == nil {
		return nil
	}

	return s.player.Close()
}
