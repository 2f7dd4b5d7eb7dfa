// SPDX-License-Identifier: EPL-2.0

package samplecheck

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/ik5/samplecheck/archive"
	"github.com/ik5/samplecheck/audio"
	"github.com/ik5/samplecheck/report"
)

// maxProbeFrames bounds how much PCM is read from each entry.
const maxProbeFrames = 1024

// Validate opens the zip archive at archivePath and checks each expected
// name, in order, against the first entry whose path ends with it.
//
// The returned slice has one result per expected name. Only a failure to
// open or list the archive is returned as an error; problems with single
// entries are recorded in their results.
func Validate(archivePath string, expected []string, opts ...Option) ([]report.Result, error) {
	cfg := newConfig(opts)
	log := cfg.logger.With(zap.String("archive", archivePath))

	arc, err := archive.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer arc.Close()

	log.Debug("opened archive", zap.Int("entries", len(arc.Names())))

	results := make([]report.Result, 0, len(expected))
	for _, name := range expected {
		results = append(results, check(arc, name, cfg, log))
	}

	sum := report.Summarize(results)
	log.Info("validated samples",
		zap.Int("total", sum.Total),
		zap.Int("present", sum.Present),
		zap.Int("ok", sum.OK),
		zap.Int("mismatch", sum.Mismatch),
		zap.Int("failed", sum.Failed),
		zap.Int("missing", sum.Missing),
		zap.Bool("all_ok", sum.AllOK()),
	)

	return results, nil
}

func check(arc *archive.Archive, name string, cfg *config, log *zap.Logger) report.Result {
	entry, ok := arc.Find(name)
	if !ok {
		log.Debug("sample missing", zap.String("name", name))
		return report.Missing(name)
	}

	log = log.With(
		zap.String("name", name),
		zap.String("entry", entry.Name),
		zap.Uint64("size", entry.Size),
	)

	data, err := arc.ReadAll(entry)
	if err != nil {
		log.Debug("sample unreadable", zap.Error(err))
		return report.Failed(name, entry.Name, err)
	}

	stream, width, err := probe(cfg.registry, name, data)
	if err != nil {
		log.Debug("sample failed", zap.Error(err))
		return report.Failed(name, entry.Name, err)
	}

	res := report.Decoded(name, entry.Name, stream, cfg.req.Matches(stream.Channels, stream.Rate, width))
	log.Debug("sample decoded",
		zap.Int("channels", stream.Channels),
		zap.Int("rate", stream.Rate),
		zap.Int("bits", stream.Bits),
		zap.String("reason", res.Reason),
	)

	return res
}

// probe decodes the header of data and reads its leading frames. It
// returns the stream description and the sample width in bytes.
func probe(reg *audio.Registry, name string, data []byte) (*report.Stream, int, error) {
	dec, _, err := reg.ForName(name)
	if err != nil {
		return nil, 0, err
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, err
	}
	defer src.Close()

	channels := src.Channels()
	rate := src.SampleRate()
	width := (src.BitDepth() + 7) / 8
	frames := max(src.Frames(), 0)

	want := int(min(frames, maxProbeFrames))
	if want > 0 {
		buf := make([]float32, want*channels)

		got, err := audio.ReadFrames(src, buf)
		if err != nil {
			return nil, 0, err
		}

		if got < want {
			return nil, 0, fmt.Errorf("%w: read %d of %d frames", ErrTruncatedAudio, got, want)
		}
	}

	return report.NewStream(channels, rate, width, frames), width, nil
}
