// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
)

// ZipEntry is a single file stored in a fixture archive.
type ZipEntry struct {
	Name string
	Data []byte
}

// WriteZip writes entries, in order, to a new archive inside t.TempDir()
// and returns its path.
func WriteZip(t testing.TB, entries ...ZipEntry) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "samples.zip")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create archive: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			t.Fatalf("create entry %q: %v", e.Name, err)
		}

		if _, err := w.Write(e.Data); err != nil {
			t.Fatalf("write entry %q: %v", e.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}

	return path
}
