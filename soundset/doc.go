// SPDX-License-Identifier: EPL-2.0

// Package soundset holds the sample archive and expected sample names that
// are validated by default. The set is a TOML file embedded at build time,
// so changing it means rebuilding rather than passing flags.
package soundset
