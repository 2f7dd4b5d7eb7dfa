// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/samplecheck/audio"
)

const (
	// go-mp3 always produces interleaved stereo 16-bit little-endian PCM.
	outputChannels = 2
	outputBitDepth = 16
	bytesPerFrame  = outputChannels * outputBitDepth / 8
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type source struct {
	dec  mp3Reader
	info audio.Info
	buf  []byte
}

func (s *source) SampleRate() int { return s.info.SampleRate }
func (s *source) Channels() int   { return s.info.Channels }
func (s *source) BitDepth() int   { return s.info.BitDepth }
func (s *source) Frames() int64   { return s.info.Frames }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(v) / 32768.0
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec), nil
}

func newSource(dec mp3Reader) *source {
	// Length is -1 when r is not seekable.
	var frames int64
	if length := dec.Length(); length > 0 {
		frames = length / bytesPerFrame
	}

	return &source{
		dec: dec,
		info: audio.Info{
			SampleRate: dec.SampleRate(),
			Channels:   outputChannels,
			BitDepth:   outputBitDepth,
			Frames:     frames,
		},
		buf: make([]byte, 8192),
	}
}
