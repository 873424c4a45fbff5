// SPDX-License-Identifier: EPL-2.0

// Package export writes the artifacts of a drawing session to disk.
//
// A session ends with five files, collected by Bundle and written into
// one directory:
//
//   - final_drawing.png    – the original waveform with both envelope
//     curves drawn over it.
//   - natural_lang.png     – the modified waveform rendered with
//     sign-subdivided coloring, positive and negative
//     regions in different colors.
//   - wave_comparison.png  – original and modified waveforms overlaid.
//   - future_<name>.wav    – the modified waveform as mono 16-bit PCM.
//   - envelope.csv         – both envelope curves, one row per sample
//     index, with an Index,Positive,Negative header.
//
// The pieces are also usable on their own: WriteEnvelopeCSV targets any
// io.Writer and WriteWAVFile writes a single waveform.
package export
