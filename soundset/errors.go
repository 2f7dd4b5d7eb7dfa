// SPDX-License-Identifier: EPL-2.0

package soundset

import "errors"

var (
	ErrParse          = errors.New("parsing sound set")
	ErrNoArchive      = errors.New("sound set has no archive path")
	ErrNoSamples      = errors.New("sound set lists no samples")
	ErrBlankSample    = errors.New("sound set has a blank sample name")
	ErrDuplicateEntry = errors.New("sound set lists a sample twice")
)
