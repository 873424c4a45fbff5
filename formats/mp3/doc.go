// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into audio.Source streams.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// Decoded output is always interleaved stereo; the session load path
// runs it through audio.MonoMixer before drawing.
package mp3
