// SPDX-License-Identifier: EPL-2.0

package report

// Summary counts results by outcome.
type Summary struct {
	Total    int
	Present  int
	OK       int
	Mismatch int
	Failed   int
	Missing  int
}

// Summarize counts results by outcome. A present entry that did not decode
// counts as failed, one that decoded with the wrong layout as a mismatch.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}

	for _, r := range results {
		switch {
		case !r.Present:
			s.Missing++
		case r.FormatOK:
			s.OK++
		case r.Stream != nil:
			s.Mismatch++
		default:
			s.Failed++
		}

		if r.Present {
			s.Present++
		}
	}

	return s
}

// AllOK reports whether every expected name was present and well formed.
func (s Summary) AllOK() bool {
	return s.OK == s.Total
}
