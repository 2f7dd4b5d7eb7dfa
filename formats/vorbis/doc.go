// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
// Vorbis is a lossy format with no stored sample width; samples are decoded
// to float32, so the returned audio.Source reports a 32-bit depth.
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("ambience.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Frames is only known when the input implements io.Seeker; otherwise it
// is reported as zero.
package vorbis
