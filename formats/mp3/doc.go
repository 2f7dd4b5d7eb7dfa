// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// go-mp3 always produces interleaved stereo 16-bit PCM regardless of the
// channel mode of the stream, so the returned audio.Source reports two
// channels and a 16-bit depth for every file.
//
// # Decoding MP3 Files
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("theme.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Frames is only known when the input implements io.Seeker; otherwise it
// is reported as zero.
package mp3
