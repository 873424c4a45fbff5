// SPDX-License-Identifier: EPL-2.0

// Package preview plays transient copies of the modified waveform
// through the default audio output via portaudio.
//
// Playback never blocks the caller: Play returns once the stream is
// running, and a second Play (or Stop) cancels whatever is in flight.
// The session layer hands this package a snapshot copy of the applied
// waveform, so the user can keep drawing while audio plays.
package preview
