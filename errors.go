// SPDX-License-Identifier: EPL-2.0

package samplecheck

import "errors"

var (
	// ErrTruncatedAudio is recorded when an entry holds fewer frames than
	// its header promises within the probe window.
	ErrTruncatedAudio = errors.New("truncated audio data")
)
