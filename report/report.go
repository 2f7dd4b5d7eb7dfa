// SPDX-License-Identifier: EPL-2.0

package report

import (
	"errors"
	"io"

	"github.com/goccy/go-json"
)

// Reasons recorded for entries that were missing or decoded. Failed
// entries carry the error text instead.
const (
	ReasonMissing        = "Missing"
	ReasonOK             = "OK"
	ReasonFormatMismatch = "Format mismatch"
)

// Stream holds header fields of a decoded entry.
type Stream struct {
	Channels int `json:"channels"`
	Rate     int `json:"rate"`
	Bits     int `json:"bits"`
	// DurationSec is nil when Rate is zero.
	DurationSec *float64 `json:"duration_sec"`
}

// Result is the outcome for one expected name. Stream is set only when
// the entry decoded, which keeps its fields out of the JSON otherwise.
type Result struct {
	Name     string `json:"name"`
	Present  bool   `json:"present"`
	FormatOK bool   `json:"format_ok"`
	*Stream
	Entry  string `json:"entry,omitempty"`
	Reason string `json:"reason"`
}

// NewStream builds Stream from decoded header values. widthBytes is the
// sample width rounded up to whole bytes.
func NewStream(channels, rate, widthBytes int, frames int64) *Stream {
	s := &Stream{
		Channels: channels,
		Rate:     rate,
		Bits:     widthBytes * 8,
	}

	if rate != 0 {
		d := float64(frames) / float64(rate)
		s.DurationSec = &d
	}

	return s
}

// Missing is the result for a name with no matching entry.
func Missing(name string) Result {
	return Result{Name: name, Reason: ReasonMissing}
}

// Decoded is the result for an entry whose header and leading frames were
// read successfully.
func Decoded(name, entry string, s *Stream, ok bool) Result {
	reason := ReasonFormatMismatch
	if ok {
		reason = ReasonOK
	}

	return Result{
		Name:     name,
		Present:  true,
		FormatOK: ok,
		Stream:   s,
		Entry:    entry,
		Reason:   reason,
	}
}

// Failed is the result for an entry that could not be read or decoded.
func Failed(name, entry string, err error) Result {
	reason := "unknown error"
	if err != nil && err.Error() != "" {
		reason = err.Error()
	}

	return Result{
		Name:    name,
		Present: true,
		Entry:   entry,
		Reason:  reason,
	}
}

// Write encodes results as a JSON array indented by two spaces.
func Write(w io.Writer, results []Result) error {
	if results == nil {
		results = []Result{}
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return errors.Join(ErrEncode, err)
	}

	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return errors.Join(ErrWrite, err)
	}

	return nil
}
