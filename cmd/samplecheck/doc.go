// SPDX-License-Identifier: EPL-2.0

// Command samplecheck validates the sound samples bundled with the game.
//
// It takes no flags or arguments. The archive path and the expected sample
// names are compiled in from the soundset package. The report goes to
// stdout as an indented JSON array and log lines go to stderr.
//
// The exit status is 1 only when the archive cannot be opened. Missing or
// malformed samples are reported in the JSON and do not change the status.
package main
