package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/vdf/initialization"
	"github.com/spacemeshos/vdf/persistence"
)

var challengeFlags struct {
	setup string
	out   string
}

// challengeCmd represents the challenge command.
var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Draw a fresh challenge for a setup",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		setup, err := persistence.LoadSetup(challengeFlags.setup)
		if err != nil {
			return err
		}

		unsolved, err := initialization.PickChallenge(setup,
			initialization.WithConfig(state.cfg),
			initialization.WithLogger(state.logger),
		)
		if err != nil {
			return err
		}
		if err := persistence.SaveChallenge(challengeFlags.out, unsolved); err != nil {
			return err
		}

		state.logger.Info("challenge saved", zap.String("file", challengeFlags.out))
		fmt.Fprintln(cmd.OutOrStdout(), challengeFlags.out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(challengeCmd)

	challengeCmd.Flags().StringVar(&challengeFlags.setup, "setup", "setup.json", "setup file")
	challengeCmd.Flags().StringVar(&challengeFlags.out, "out", "challenge.json", "output file")
}
