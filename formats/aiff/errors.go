// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedAiffLayout indicates an unsupported AIFF layout
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	// ErrBadChannelCount indicates a COMM chunk declaring zero channels
	ErrBadChannelCount = errors.New("bad number of channels")

	// ErrBadSampleWidth indicates a COMM chunk declaring a zero sample size
	ErrBadSampleWidth = errors.New("bad sample width")
)
