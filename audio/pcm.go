// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	goaudio "github.com/go-audio/audio"
)

// Info holds the stream properties declared by a container header.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Frames     int64
}

// PCMReader is the part of the go-audio decoders (wav, aiff) used to pull
// integer samples.
type PCMReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type pcmSource struct {
	dec    PCMReader
	info   Info
	intBuf *goaudio.IntBuffer
}

// NewPCMSource adapts a go-audio integer PCM reader to Source. Samples are
// normalized by the full scale of info.BitDepth.
func NewPCMSource(dec PCMReader, info Info) Source {
	return &pcmSource{dec: dec, info: info}
}

func (s *pcmSource) SampleRate() int { return s.info.SampleRate }
func (s *pcmSource) Channels() int   { return s.info.Channels }
func (s *pcmSource) BitDepth() int   { return s.info.BitDepth }
func (s *pcmSource) Frames() int64   { return s.info.Frames }
func (s *pcmSource) Close() error    { return nil }

func (s *pcmSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	scale := FullScale(s.info.BitDepth)
	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]) / scale
	}

	return n, err
}

// FullScale is the magnitude of the most negative signed sample at the
// given depth. Depths are rounded up to whole bytes.
func FullScale(bitDepth int) float32 {
	switch {
	case bitDepth <= 8:
		return 128.0
	case bitDepth <= 16:
		return 32768.0
	case bitDepth <= 24:
		return 8388608.0
	default:
		return 2147483648.0
	}
}
