// SPDX-License-Identifier: EPL-2.0

// Package synth generates basic test waveforms (sine, square, triangle,
// sawtooth) for drawing sessions that do not start from a file.
//
// A waveform is described by frequency, samples per cycle and number of
// periods; the sample rate follows as frequency times samples per
// cycle, so every cycle is sampled at the same resolution regardless of
// pitch. Output is peak-normalized to [-1, 1].
//
// Preset returns the four canned parameter sets the interactive tool
// offers; NewSource exposes a generated waveform through the same
// audio.Source interface the format decoders use.
package synth
