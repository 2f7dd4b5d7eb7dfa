// SPDX-License-Identifier: EPL-2.0

package report

import "errors"

// Errors returned by Write, joined with the underlying cause.
var (
	ErrEncode = errors.New("encoding report")
	ErrWrite  = errors.New("writing report")
)
