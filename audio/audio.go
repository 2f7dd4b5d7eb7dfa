// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// BitDepth of a single sample as declared by the container.
	BitDepth() int
	// Frames declared by the container header. One frame holds one sample per channel.
	Frames() int64
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs   map[string]Decoder
	fallback string

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// SetFallback names the format used by ForName when a file name has no
// registered extension.
func (r *Registry) SetFallback(format string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.fallback = format
}

// ForName picks a decoder by the extension of name, case-insensitively.
// It returns the format key that was used.
func (r *Registry) ForName(name string) (Decoder, string, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))

	r.mtx.Lock()
	defer r.mtx.Unlock()

	if d, ok := r.codecs[format]; ok {
		return d, format, nil
	}

	if d, ok := r.codecs[r.fallback]; ok && r.fallback != "" {
		return d, r.fallback, nil
	}

	return nil, format, ErrNoDecoder
}
