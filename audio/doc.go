// SPDX-License-Identifier: EPL-2.0

// Package audio defines the decoded stream abstraction shared by the
// format packages.
//
// A Decoder turns an io.Reader into a Source. A Source exposes the header
// fields of the stream (sample rate, channels, bit depth and the declared
// frame count) and hands out interleaved float32 samples in [-1, 1].
//
//	src, err := wav.Decoder{}.Decode(r)
//	if err != nil {
//		return err
//	}
//	defer src.Close()
//
//	buf := make([]float32, 1024*src.Channels())
//	frames, err := audio.ReadFrames(src, buf)
//
// ReadFrames only ever returns whole frames, so comparing its result with
// Frames tells whether the sample data is shorter than the header claims.
//
// # Registry
//
// Registry maps format keys such as "wav" or "ogg" to decoders. ForName
// chooses one from a file name's extension and falls back to a configured
// format when the extension is unknown:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.SetFallback("wav")
//	dec, format, err := registry.ForName("effects/jump.WAV")
//
// Decoders built on go-audio share NewPCMSource, which converts integer
// PCM buffers to float32 using FullScale for the stream's bit depth.
package audio
