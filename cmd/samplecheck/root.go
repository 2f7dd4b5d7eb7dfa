// SPDX-License-Identifier: EPL-2.0

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/samplecheck"
	"github.com/ik5/samplecheck/report"
	"github.com/ik5/samplecheck/soundset"
)

func newRootCommand(set soundset.Set, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "samplecheck",
		Short: "Check the bundled sound samples",
		Long: "samplecheck opens " + set.Archive + " and reports, as JSON on stdout,\n" +
			"whether each expected sample is present and is stereo 44.1 kHz 16-bit audio.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := samplecheck.Validate(set.Archive, set.Samples, samplecheck.WithLogger(logger))
			if err != nil {
				return err
			}

			return report.Write(cmd.OutOrStdout(), results)
		},
	}
}
