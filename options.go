// SPDX-License-Identifier: EPL-2.0

package samplecheck

import (
	"go.uber.org/zap"

	"github.com/ik5/samplecheck/audio"
	"github.com/ik5/samplecheck/formats/aiff"
	"github.com/ik5/samplecheck/formats/mp3"
	"github.com/ik5/samplecheck/formats/vorbis"
	"github.com/ik5/samplecheck/formats/wav"
)

// Requirement is the stream layout an entry must have to be accepted.
type Requirement struct {
	Channels   int
	SampleRate int
	WidthBytes int
}

// CDQuality is stereo, 44.1 kHz, 16-bit.
var CDQuality = Requirement{Channels: 2, SampleRate: 44100, WidthBytes: 2}

// Matches reports whether a decoded stream satisfies r.
func (r Requirement) Matches(channels, rate, widthBytes int) bool {
	return channels == r.Channels && rate == r.SampleRate && widthBytes == r.WidthBytes
}

type config struct {
	logger   *zap.Logger
	registry *audio.Registry
	req      Requirement
}

// Option changes how Validate runs.
type Option func(*config)

// WithLogger sets the logger for per-entry and summary lines.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRegistry replaces the decoders used to read entries.
func WithRegistry(r *audio.Registry) Option {
	return func(c *config) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithRequirement replaces CDQuality as the accepted layout.
func WithRequirement(req Requirement) Option {
	return func(c *config) {
		c.req = req
	}
}

// DefaultRegistry returns a registry with every bundled decoder. Names
// without a known extension are read as WAV.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.SetFallback("wav")

	return r
}

func newConfig(opts []Option) *config {
	c := &config{
		logger:   zap.NewNop(),
		registry: DefaultRegistry(),
		req:      CDQuality,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}
