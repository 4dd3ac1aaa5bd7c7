package cmd

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved security parameters",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		spew.Fdump(cmd.OutOrStdout(), state.cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
