// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	bitDepth     int
	declared     int64 // Frames reported by Frames(), may differ from totalSamples
	totalSamples int   // Total samples to generate (per channel)
	generated    int   // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32

	readErr error
	stall   bool
	closed  bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		bitDepth:     16,
		declared:     int64(totalSamples),
		totalSamples: totalSamples,
		generated:    0,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// WithBitDepth overrides the reported bit depth (16 by default).
func (m *MockSource) WithBitDepth(bits int) *MockSource {
	m.bitDepth = bits
	return m
}

// WithDeclaredFrames makes Frames() report n while still generating only
// the constructor's totalSamples, simulating a header that promises more
// data than the stream holds.
func (m *MockSource) WithDeclaredFrames(n int64) *MockSource {
	m.declared = n
	return m
}

// WithReadError makes every ReadSamples call fail with err.
func (m *MockSource) WithReadError(err error) *MockSource {
	m.readErr = err
	return m
}

// WithStall makes ReadSamples return (0, nil) once the generated data is
// exhausted instead of io.EOF.
func (m *MockSource) WithStall() *MockSource {
	m.stall = true
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BitDepth() int   { return m.bitDepth }
func (m *MockSource) Frames() int64   { return m.declared }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}

	if m.generated >= m.totalSamples {
		if m.stall {
			return 0, nil
		}
		return 0, io.EOF
	}

	// Calculate how many frames we can write
	framesRequested := len(dst) / m.channels
	framesAvailable := m.totalSamples - m.generated
	framesToWrite := min(framesRequested, framesAvailable)

	// Generate samples
	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples && !m.stall {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}
