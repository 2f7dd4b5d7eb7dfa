// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrBadChannelCount indicates an identification header declaring no channels
var ErrBadChannelCount = errors.New("bad number of channels")
