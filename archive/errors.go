// SPDX-License-Identifier: EPL-2.0

package archive

import "errors"

var (
	// ErrOpenArchive wraps every failure to open or list an archive.
	ErrOpenArchive = errors.New("cannot open archive")

	// ErrForeignEntry is returned when an Entry from another Archive is read.
	ErrForeignEntry = errors.New("entry does not belong to this archive")
)
