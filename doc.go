// SPDX-License-Identifier: EPL-2.0

// Package wavedraw loads or synthesizes a mono waveform and lets the
// user reshape it by drawing two amplitude envelopes over it: one
// bounding the positive samples and one bounding the negative.
//
// # Load Path
//
// Audio enters through an audio.Source: either a format decoder
// (WAV, MP3, Ogg Vorbis, AIFF) or the synthesizer. FromSource downmixes
// to mono, normalizes to [-1, 1] and hands back the session waveform:
//
//	samples, rate, err := wavedraw.LoadFile("input.wav")
//
// or, synthesizing instead of loading:
//
//	src, _ := synth.NewSource(synth.Params{Kind: synth.Sine, Frequency: 440,
//	    SamplesPerCycle: 100, Periods: 10})
//	samples, rate, err := wavedraw.FromSource(src)
//
// Empty or silent input fails with ErrDegenerateWaveform; a session
// never starts on a waveform there is nothing to draw on.
//
// # Drawing and Synthesis
//
// The envelope subpackage holds the core engine: the envelope store
// with per-gesture undo/redo, the stroke engine that turns pointer
// drags into envelope writes, and the Apply transform that scales each
// original sample toward its drawn bound. The session subpackage ties
// a waveform, the store and a preview player into one interactive
// context; render produces the plots and export writes the result
// bundle (modified WAV, envelope CSV, three PNGs).
//
// # Command Line
//
// cmd/wavedraw is the interactive front end: it prompts for an input
// file or a synthesis preset, accepts drawing strokes and commands on
// stdin, plays previews, and exports the session on exit.
package wavedraw
