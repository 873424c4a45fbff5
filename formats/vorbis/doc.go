// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into audio.Source streams.
//
// This package uses github.com/jfreymuth/oggvorbis, which already
// produces normalized float32 samples, so decoding is a thin wrapper
// that adapts frame-oriented reads to the Source contract.
package vorbis
