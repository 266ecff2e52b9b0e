package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/classicds/datastructs/internal/build"
)

// NewVersionCommand returns the command to get the datastructs version
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Return the datastructs version",
		Long:  "Return the datastructs version.",
		RunE:  version,
		Args:  cobra.NoArgs,
	}

	return cmd
}

// print out the built version
func version(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "datastructs version %s date %s commit id %s\n", build.Version, build.Date, build.Commit)
	return err
}
