// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/ik5/samplecheck/internal/logging"
	"github.com/ik5/samplecheck/soundset"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := logging.New(os.Stderr)
	defer func() { _ = logger.Sync() }()

	set, err := soundset.Default()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cmd := newRootCommand(set, logger)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}
