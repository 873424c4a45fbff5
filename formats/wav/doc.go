// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding and encoding.
//
// Decoding wraps github.com/go-audio/wav and handles 8/16/24/32-bit PCM,
// exposing the file as an audio.Source of normalized float32 samples:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// Encode16 writes a mono 16-bit PCM file, the format the envelope tool
// uses for its modified-audio export:
//
//	err := wav.Encode16(outFile, 44100, samples)
package wav
