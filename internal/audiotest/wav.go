// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
)

// WAVSpec describes a synthetic RIFF/WAVE file.
type WAVSpec struct {
	Channels   int
	SampleRate int
	BitDepth   int
	Frames     int

	// AudioFormat is the fmt chunk format tag. Zero means PCM (1).
	AudioFormat uint16

	// DeclaredFrames, when non-zero, sizes the data chunk header while only
	// Frames worth of sample bytes are written.
	DeclaredFrames int

	// Junk, when set, inserts a "JUNK" chunk with this payload between the
	// fmt and data chunks.
	Junk []byte

	// Pad appends the RIFF pad byte after an odd-sized data payload.
	Pad bool
}

// WAV builds a complete WAV file from s. Sample bytes follow a simple
// ramp so the payload is not all zeros.
func WAV(s WAVSpec) []byte {
	format := s.AudioFormat
	if format == 0 {
		format = 1
	}

	width := (s.BitDepth + 7) / 8
	blockAlign := s.Channels * width
	byteRate := s.SampleRate * blockAlign

	declared := s.Frames
	if s.DeclaredFrames != 0 {
		declared = s.DeclaredFrames
	}

	dataSize := declared * blockAlign
	payload := s.Frames * blockAlign

	pad := 0
	if s.Pad && payload%2 == 1 {
		pad = 1
	}

	extra := 0
	if len(s.Junk) > 0 {
		extra = 8 + len(s.Junk) + len(s.Junk)%2
	}

	// RIFF (12) + fmt (24) + optional chunk + data header (8)
	header := make([]byte, 44+extra)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+extra+dataSize+pad))
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], format)
	binary.LittleEndian.PutUint16(header[22:24], uint16(s.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(s.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], uint16(s.BitDepth))

	off := 36
	if extra > 0 {
		copy(header[off:off+4], "JUNK")
		binary.LittleEndian.PutUint32(header[off+4:off+8], uint32(len(s.Junk)))
		copy(header[off+8:], s.Junk)
		off += extra
	}

	copy(header[off:off+4], "data")
	binary.LittleEndian.PutUint32(header[off+4:off+8], uint32(dataSize))

	out := make([]byte, len(header)+payload+pad)
	copy(out, header)

	data := out[len(header) : len(header)+payload]
	for i := range data {
		data[i] = byte(i % 251)
	}

	return out
}

// CDQuality returns a stereo 44.1kHz 16-bit PCM WAV holding frames frames.
func CDQuality(frames int) []byte {
	return WAV(WAVSpec{Channels: 2, SampleRate: 44100, BitDepth: 16, Frames: frames})
}
