// SPDX-License-Identifier: EPL-2.0

// Package samplecheck checks that the sound samples shipped inside a zip
// archive are usable audio in the expected layout.
//
// Each expected name is matched against the archive listing by suffix, so
// "jump.wav" finds "effects/jump.wav". A matched entry is decoded far
// enough to read its header and up to 1024 leading frames, which catches
// broken headers and truncated data without decoding whole files.
//
// # Usage
//
//	results, err := samplecheck.Validate("assets/samples/dkong.zip", []string{"jump.wav"})
//	if err != nil {
//		// the archive itself could not be opened
//	}
//	_ = report.Write(os.Stdout, results)
//
// The decoder is chosen from the expected name's extension. WAV, AIFF,
// MP3 and Ogg Vorbis are supported and unknown extensions are read as WAV.
// By default an entry passes when it is stereo 44.1 kHz with 16-bit
// samples; see WithRequirement to change that.
package samplecheck
