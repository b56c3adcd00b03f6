package cmd

import (
	"fmt"

	"github.com/coreos/go-semver/semver"
	"github.com/spf13/cobra"
)

// Version is the release of mailfield, set at build time with -ldflags.
var Version = "0.1.0"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of mailfield",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := semver.NewVersion(Version)
			if err != nil {
				return fmt.Errorf("bad version %q: %w", Version, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "mailfield v%s\n", v)
			return err
		},
	}
}
