// SPDX-License-Identifier: EPL-2.0

// Package report holds per-sample validation results and writes them as
// a JSON array.
//
// A result takes one of three shapes:
//
//	{"name": "missing.wav", "present": false, "format_ok": false, "reason": "Missing"}
//
//	{"name": "jump.wav", "present": true, "format_ok": true, "channels": 2,
//	 "rate": 44100, "bits": 16, "duration_sec": 0.1, "entry": "effects/jump.wav",
//	 "reason": "OK"}
//
//	{"name": "run01.wav", "present": true, "format_ok": false,
//	 "entry": "run01.wav", "reason": "not a WAVE file"}
//
// The report is encoded with github.com/goccy/go-json and written in a
// single call, so a failed run never leaves a partial array behind.
package report
