// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) header parsing
// and PCM reading.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Supported Files
//
// Any channel count, sample rate and bit depth declared in the COMM chunk
// is reported as-is; it is up to the caller to decide whether the file
// matches what it expects.
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("loop.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(source.Channels(), source.SampleRate(), source.BitDepth(), source.Frames())
//
// Frames comes from the numSampleFrames field of the COMM chunk.
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
//
// The decoder handles all format differences automatically.
//
// # File Extensions
//
// AIFF files typically use .aif or .aiff. AIFF-C (.aifc) is not registered.
package aiff
