// SPDX-License-Identifier: EPL-2.0

package archive

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zip"
)

// Archive is an open zip file with its listing loaded once.
type Archive struct {
	rc    *zip.ReadCloser
	names []string
}

// Entry is a file inside an Archive.
type Entry struct {
	Name string
	// Size is the uncompressed size recorded in the central directory.
	Size uint64

	file  *zip.File
	owner *Archive
}

// Open opens the zip archive at path and reads its central directory.
func Open(path string) (*Archive, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrOpenArchive, path, err)
	}

	names := make([]string, len(rc.File))
	for i, f := range rc.File {
		names[i] = f.Name
	}

	return &Archive{rc: rc, names: names}, nil
}

// Names returns the entry paths in central-directory order.
func (a *Archive) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Find returns the first entry whose path ends with name. Directory
// entries never match and an empty name matches nothing.
func (a *Archive) Find(name string) (Entry, bool) {
	if name == "" {
		return Entry{}, false
	}

	for i, path := range a.names {
		f := a.rc.File[i]
		if f.FileInfo().IsDir() || !strings.HasSuffix(path, name) {
			continue
		}

		return Entry{
			Name:  path,
			Size:  f.UncompressedSize64,
			file:  f,
			owner: a,
		}, true
	}

	return Entry{}, false
}

// ReadAll returns the full uncompressed content of e.
func (a *Archive) ReadAll(e Entry) ([]byte, error) {
	if e.owner != a || e.file == nil {
		return nil, ErrForeignEntry
	}

	r, err := e.file.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", e.Name, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", e.Name, err)
	}

	return data, nil
}

// Close releases the underlying file.
func (a *Archive) Close() error {
	return a.rc.Close()
}
