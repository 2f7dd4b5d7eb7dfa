// SPDX-License-Identifier: EPL-2.0

// Package archive lists and reads entries of a zip archive.
//
// It is a thin layer over github.com/klauspost/compress/zip that adds the
// lookup rule used to find expected samples: an expected base name
// matches the first entry, in central-directory order, whose path ends
// with that name. Entries nested under any directory prefix therefore
// match, while "jump.wav.bak" does not match "jump.wav".
//
//	a, err := archive.Open("assets/samples/dkong.zip")
//	if err != nil {
//	    return err // archive is unusable
//	}
//	defer a.Close()
//
//	entry, ok := a.Find("jump.wav")
//	if ok {
//	    data, err := a.ReadAll(entry)
//	    ...
//	}
//
// Nothing is ever written to the archive.
package archive
