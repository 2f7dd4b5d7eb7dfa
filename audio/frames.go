// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// ReadFrames fills dst with whole interleaved frames from src until dst is
// full or the stream ends, and returns the number of complete frames read.
//
// dst must hold a whole number of frames. A source that stops making
// progress without reporting io.EOF is treated as finished.
func ReadFrames(src Source, dst []float32) (int, error) {
	channels := src.Channels()
	if channels <= 0 || len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	got := 0
	for got < len(dst) {
		n, err := src.ReadSamples(dst[got:])
		got += n

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return got / channels, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			break
		}
	}

	return got / channels, nil
}
