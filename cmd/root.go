package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand returns the inflation command with all subcommands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "inflation",
		Short:         "Compute and project the issuance of every era",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addGlobalFlags(root.PersistentFlags())

	root.AddCommand(
		payoutCommand(),
		tableCommand(),
		projectCommand(),
		decodeCommand(),
		versionCommand(),
	)
	return root
}

// versionCommand returns the current version of the tools.
func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprintf(c.OutOrStdout(), "%s+%s+%s\n", Version, Branch, Commit)
		},
	}
}
