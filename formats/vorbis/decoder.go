// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/samplecheck/audio"
	"github.com/jfreymuth/oggvorbis"
)

// Vorbis has no stored sample width; oggvorbis decodes to float32.
const outputBitDepth = 32

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

type source struct {
	dec  oggReader
	info audio.Info
}

func (s *source) SampleRate() int { return s.info.SampleRate }
func (s *source) Channels() int   { return s.info.Channels }
func (s *source) BitDepth() int   { return s.info.BitDepth }
func (s *source) Frames() int64   { return s.info.Frames }
func (s *source) Close() error    { return nil }

// ReadSamples decodes straight into dst. oggvorbis returns the number of
// values written, always a multiple of the channel count.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	whole := len(dst) - len(dst)%s.info.Channels
	if whole == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	n, err := s.dec.Read(dst[:whole])
	if n == 0 && err == nil {
		return 0, nil
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec)
}

func newSource(dec oggReader) (*source, error) {
	if dec.Channels() <= 0 {
		return nil, ErrBadChannelCount
	}

	return &source{
		dec: dec,
		info: audio.Info{
			SampleRate: dec.SampleRate(),
			Channels:   dec.Channels(),
			BitDepth:   outputBitDepth,
			// zero when the reader is not seekable
			Frames: dec.Length(),
		},
	}, nil
}
