// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotRiffFile         = errors.New("file does not start with RIFF id")
	ErrNotWavFile          = errors.New("not a WAVE file")
	ErrMissingFmtChunk     = errors.New("fmt chunk missing")
	ErrMissingDataChunk    = errors.New("data chunk missing")
	ErrBadChannelCount     = errors.New("bad number of channels")
	ErrBadSampleWidth      = errors.New("bad sample width")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
)
