package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/vdf/initialization"
	"github.com/spacemeshos/vdf/persistence"
)

var setupFlags struct {
	delay uint64
	out   string
}

// setupCmd represents the setup command.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Generate the public parameters of a VDF epoch",
	Long: `Generate a fresh RSA modulus and bind it to the delay parameter.
The factors of the modulus are discarded and never written anywhere.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if setupFlags.delay == 0 {
			return errors.New("--delay must be positive")
		}

		setup, err := initialization.PublicSetup(setupFlags.delay,
			initialization.WithConfig(state.cfg),
			initialization.WithLogger(state.logger),
		)
		if err != nil {
			return err
		}
		if err := persistence.SaveSetup(setupFlags.out, setup); err != nil {
			return err
		}

		state.logger.Info("setup saved", zap.String("file", setupFlags.out), zap.Uint64("t", setup.T))
		fmt.Fprintln(cmd.OutOrStdout(), setupFlags.out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().Uint64Var(&setupFlags.delay, "delay", 0, "number of sequential squarings t (required)")
	setupCmd.Flags().StringVar(&setupFlags.out, "out", "setup.json", "output file")
	_ = setupCmd.MarkFlagRequired("delay")
}
