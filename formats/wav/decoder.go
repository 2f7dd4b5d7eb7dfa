// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/samplecheck/audio"
)

const (
	formatPCM        = 0x0001
	formatExtensible = 0xFFFE
)

type Decoder struct{}

// Decode parses the RIFF/WAVE headers of r and positions the returned
// source at the start of the sample data. Any channel count, sample rate
// and bit depth is accepted; only the encoding must be PCM.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		return nil, fmt.Errorf("reading RIFF header: %w", err)
	}

	if !bytes.Equal(header[:4], []byte("RIFF")) {
		return nil, ErrNotRiffFile
	}

	if !bytes.Equal(header[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding wav data: %w", err)
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("reading fmt chunk: %w", err)
	}

	switch {
	case dec.NumChans == 0 && dec.SampleRate == 0 && dec.BitDepth == 0:
		return nil, ErrMissingFmtChunk
	case dec.NumChans == 0:
		return nil, ErrBadChannelCount
	case dec.BitDepth == 0:
		return nil, ErrBadSampleWidth
	case dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingDataChunk, err)
	}

	if dec.PCMChunk == nil {
		return nil, ErrMissingDataChunk
	}

	bitDepth := int(dec.BitDepth)
	width := (bitDepth + 7) / 8
	blockAlign := int64(dec.NumChans) * int64(width)

	dataSize := int64(dec.PCMSize)
	if size, ok := rawDataSize(rs, dataSize); ok {
		dataSize = size
	}

	// go-audio only decodes whole-byte depths. Samples narrower than their
	// container (12-bit in 16) are left-justified, so reading them at the
	// container width keeps the full-scale range.
	dec.BitDepth = uint16(width * 8)

	return audio.NewPCMSource(dec, audio.Info{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   bitDepth,
		Frames:     dataSize / blockAlign,
	}), nil
}

// rawDataSize re-reads the size field of the data chunk header that ends
// at the current position of rs. go-audio rounds odd chunk sizes up to
// include the pad byte, so its PCMSize can be one byte too large. The
// reader is left where it was. ok is false when the header is not where
// it is expected or disagrees with rounded by more than the pad byte.
func rawDataSize(rs io.ReadSeeker, rounded int64) (size int64, ok bool) {
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil || pos < 8 {
		return 0, false
	}

	if _, err := rs.Seek(pos-8, io.SeekStart); err != nil {
		return 0, false
	}

	hdr := make([]byte, 8)
	if _, err := io.ReadFull(rs, hdr); err != nil {
		_, _ = rs.Seek(pos, io.SeekStart)
		return 0, false
	}

	if !bytes.Equal(hdr[:4], []byte("data")) {
		return 0, false
	}

	size = int64(binary.LittleEndian.Uint32(hdr[4:]))
	if size != rounded && size+1 != rounded {
		return 0, false
	}

	return size, true
}
