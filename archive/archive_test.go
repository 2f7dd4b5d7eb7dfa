// SPDX-License-Identifier: EPL-2.0

package archive

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/samplecheck/internal/audiotest"
)

func TestOpen_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "nope.zip"))
	if !errors.Is(err, ErrOpenArchive) {
		t.Fatalf("Open() error = %v, want ErrOpenArchive", err)
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open() error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestOpen_NotAZip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "samples.zip")
	if err := os.WriteFile(path, []byte("definitely not a zip file"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if !errors.Is(err, ErrOpenArchive) {
		t.Errorf("Open() error = %v, want ErrOpenArchive", err)
	}
}

func TestArchive_Names(t *testing.T) {
	t.Parallel()

	path := audiotest.WriteZip(t,
		audiotest.ZipEntry{Name: "readme.txt", Data: []byte("hi")},
		audiotest.ZipEntry{Name: "effects/jump.wav", Data: []byte("x")},
		audiotest.ZipEntry{Name: "run01.wav", Data: []byte("y")},
	)

	a, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer a.Close()

	want := []string{"readme.txt", "effects/jump.wav", "run01.wav"}
	if got := a.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	// Callers get a copy.
	a.Names()[0] = "changed"
	if a.Names()[0] != "readme.txt" {
		t.Error("Names() exposed internal slice")
	}
}

func TestArchive_Find(t *testing.T) {
	t.Parallel()

	path := audiotest.WriteZip(t,
		audiotest.ZipEntry{Name: "sounds/", Data: nil},
		audiotest.ZipEntry{Name: "jump.wav.bak", Data: []byte("backup")},
		audiotest.ZipEntry{Name: "sub/dir/jump.wav", Data: []byte("first")},
		audiotest.ZipEntry{Name: "other/jump.wav", Data: []byte("second")},
		audiotest.ZipEntry{Name: "bigjump.wav", Data: []byte("suffix")},
	)

	a, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer a.Close()

	tests := []struct {
		name      string
		wantEntry string
		wantOK    bool
	}{
		{"jump.wav", "sub/dir/jump.wav", true},
		{"jump.wav.bak", "jump.wav.bak", true},
		{"bigjump.wav", "bigjump.wav", true},
		{"run01.wav", "", false},
		{"sounds/", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := a.Find(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("Find(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}

			if e.Name != tt.wantEntry {
				t.Errorf("Find(%q) = %q, want %q", tt.name, e.Name, tt.wantEntry)
			}
		})
	}
}

func TestArchive_ReadAll(t *testing.T) {
	t.Parallel()

	wavData := audiotest.CDQuality(4410)
	path := audiotest.WriteZip(t,
		audiotest.ZipEntry{Name: "effects/jump.wav", Data: wavData},
		audiotest.ZipEntry{Name: "jump.wav", Data: []byte("shadowed")},
	)

	a, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer a.Close()

	e, ok := a.Find("jump.wav")
	if !ok {
		t.Fatal("Find() ok = false, want true")
	}

	if e.Size != uint64(len(wavData)) {
		t.Errorf("Size = %d, want %d", e.Size, len(wavData))
	}

	got, err := a.ReadAll(e)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if !bytes.Equal(got, wavData) {
		t.Error("ReadAll() returned different content than stored")
	}
}

func TestArchive_ReadAllForeignEntry(t *testing.T) {
	t.Parallel()

	path := audiotest.WriteZip(t, audiotest.ZipEntry{Name: "jump.wav", Data: []byte("x")})

	a, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer a.Close()

	b, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer b.Close()

	e, _ := b.Find("jump.wav")
	if _, err := a.ReadAll(e); !errors.Is(err, ErrForeignEntry) {
		t.Errorf("ReadAll() error = %v, want ErrForeignEntry", err)
	}

	if _, err := a.ReadAll(Entry{}); !errors.Is(err, ErrForeignEntry) {
		t.Errorf("ReadAll(Entry{}) error = %v, want ErrForeignEntry", err)
	}
}
