// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio pipeline primitives used to
// bring a waveform into the drawing session.
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders and the synthesizer implement this interface, so
// any of them can feed the same load path.
//
// # Channel Mixing
//
// MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// The drawing engine only operates on mono waveforms, so every input
// passes through the mixer before a session starts.
//
// # Collecting and Normalizing
//
// Unlike a streaming voice pipeline, envelope drawing needs the whole
// waveform in memory (the plot axes, the envelope length and sign
// subdivision all depend on the full sample sequence). Collect drains a
// mono source into a float64 slice and PeakNormalize scales it so the
// largest magnitude is exactly 1:
//
//	samples, err := audio.Collect(mono, 4096)
//	peak := audio.PeakNormalize(samples)
//
// A zero peak means the input was silent; callers treat that as a
// degenerate waveform and refuse to open a session on it.
//
// # Resampling
//
// Resample converts a collected mono buffer between sample rates using
// Catmull-Rom cubic interpolation. It works on whole buffers rather than
// streams since the session holds the full waveform anyway.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get(".WAV") // same decoder
//
// # Sample Format
//
// Pipeline samples are float32 in [-1.0, 1.0]; the collected session
// waveform is float64 so envelope math and undo restoration stay exact.
// ReadSamples returns io.EOF when the stream is finished.
package audio
