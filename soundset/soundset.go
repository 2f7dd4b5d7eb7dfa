// SPDX-License-Identifier: EPL-2.0

package soundset

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed dkong.toml
var dkong []byte

// Set is an archive path and the ordered sample names expected inside it.
type Set struct {
	Archive string   `toml:"archive"`
	Samples []string `toml:"samples"`
}

// Default returns the compiled-in sound set.
func Default() (Set, error) {
	return Parse(dkong)
}

// Parse decodes a TOML sound set. Unknown keys are rejected.
func Parse(data []byte) (Set, error) {
	var s Set

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&s); err != nil {
		return Set{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if err := s.Validate(); err != nil {
		return Set{}, err
	}

	return s, nil
}

// Validate checks that the set names an archive and a non-empty list of
// distinct, non-blank samples.
func (s Set) Validate() error {
	if strings.TrimSpace(s.Archive) == "" {
		return ErrNoArchive
	}

	if len(s.Samples) == 0 {
		return ErrNoSamples
	}

	seen := make(map[string]struct{}, len(s.Samples))
	for i, name := range s.Samples {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w at position %d", ErrBlankSample, i)
		}

		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateEntry, name)
		}

		seen[name] = struct{}{}
	}

	return nil
}
