package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbmusic/nbm/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.VersionOrHash)
	},
}
