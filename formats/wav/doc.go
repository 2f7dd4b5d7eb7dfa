// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file header parsing and PCM reading.
//
// Header parsing is delegated to github.com/go-audio/wav after a cheap
// RIFF/WAVE magic check, so malformed input is rejected with a precise
// sentinel error before the chunk walker runs.
//
// # Supported Files
//
// Any channel count, sample rate and bit depth is accepted. The encoding
// must be integer PCM (format tag 1) or WAVE_FORMAT_EXTENSIBLE. Unknown
// chunks between "fmt " and "data" are skipped.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("jump.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(source.Channels(), source.SampleRate(), source.BitDepth(), source.Frames())
//
// Frames is derived from the data chunk size declared in the header, not
// from the bytes actually present. Reading samples is how a caller finds
// out whether the stream holds what the header promised.
//
// # Error Handling
//
// The package defines sentinel errors that can be matched with errors.Is:
//   - ErrNotRiffFile: The input does not start with "RIFF"
//   - ErrNotWavFile: The RIFF form type is not "WAVE"
//   - ErrMissingFmtChunk, ErrMissingDataChunk: Required chunks are absent
//   - ErrBadChannelCount, ErrBadSampleWidth: The fmt chunk declares zero
//   - ErrUnsupportedEncoding: The format tag is not PCM
package wav
