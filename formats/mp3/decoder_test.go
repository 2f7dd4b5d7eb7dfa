// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate   int
	samples      []int16 // PCM samples (16-bit)
	offset       int
	length       int64
	returnErrors bool
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }
func (m *mockMP3Reader) Length() int64   { return m.length }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	samplesToRead := min(len(buf)/2, len(m.samples)-m.offset)
	for i := range samplesToRead {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(m.samples[m.offset+i]))
	}

	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return samplesToRead * 2, io.EOF
	}

	return samplesToRead * 2, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not MP3 data")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte{}))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestNewSource_Info(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		length     int64
		wantFrames int64
	}{
		{"known length", 4410 * bytesPerFrame, 4410},
		{"unknown length", -1, 0},
		{"empty stream", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newSource(&mockMP3Reader{sampleRate: 44100, length: tt.length})

			if src.SampleRate() != 44100 {
				t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
			}

			if src.Channels() != 2 {
				t.Errorf("Channels() = %d, want 2", src.Channels())
			}

			if src.BitDepth() != 16 {
				t.Errorf("BitDepth() = %d, want 16", src.BitDepth())
			}

			if src.Frames() != tt.wantFrames {
				t.Errorf("Frames() = %d, want %d", src.Frames(), tt.wantFrames)
			}
		})
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	// 8 samples, 4 stereo frames
	testSamples := []int16{0, 16384, 32767, -16384, -32768, 8192, -8192, 0}
	src := newSource(&mockMP3Reader{sampleRate: 8000, samples: testSamples, length: 16})

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 8 {
		t.Errorf("ReadSamples() n = %d, want 8", n)
	}

	expected := []float32{0.0, 0.5, 1.0, -0.5, -1.0, 0.25, -0.25, 0.0}
	for i := range n {
		if math.Abs(float64(dst[i]-expected[i])) > 0.001 {
			t.Errorf("dst[%d] = %v, want ~%v", i, dst[i], expected[i])
		}
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := newSource(&mockMP3Reader{sampleRate: 44100, samples: []int16{1, 2}})

	dst := make([]float32, 4)
	if _, err := src.ReadSamples(dst); err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	n, err := src.ReadSamples(dst)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newSource(&mockMP3Reader{sampleRate: 44100, returnErrors: true})

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	src := newSource(&mockMP3Reader{sampleRate: 44100})
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}
