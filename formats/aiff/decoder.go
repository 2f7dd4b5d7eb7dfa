// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/samplecheck/audio"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("reading COMM chunk: %w", err)
	}

	if dec.NumChans == 0 {
		return nil, ErrBadChannelCount
	}

	if dec.BitDepth == 0 {
		return nil, ErrBadSampleWidth
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return audio.NewPCMSource(dec, audio.Info{
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		BitDepth:   int(dec.BitDepth),
		Frames:     int64(dec.NumSampleFrames),
	}), nil
}
