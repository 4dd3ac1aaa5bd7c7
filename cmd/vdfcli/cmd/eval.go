package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/vdf/persistence"
	"github.com/spacemeshos/vdf/proving"
)

var evalFlags struct {
	challenge string
	out       string
	logRate   uint64
}

// evalCmd represents the eval command.
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Solve a challenge and produce its proof",
	Long: `Perform the t sequential squarings of a challenge and compute the Wesolowski proof.
The evaluation can be interrupted with Ctrl-C; nothing is written in that case.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		unsolved, err := persistence.LoadChallenge(evalFlags.challenge)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		solved, err := proving.EvalContext(ctx, unsolved,
			proving.WithConfig(state.cfg),
			proving.WithLogger(state.logger),
			proving.WithLogRate(evalFlags.logRate),
		)
		switch {
		case errors.Is(err, context.Canceled):
			state.logger.Info("evaluation interrupted")
			return err
		case err != nil:
			return err
		}

		if err := persistence.SaveSolution(evalFlags.out, solved); err != nil {
			return err
		}

		state.logger.Info("solution saved", zap.String("file", evalFlags.out))
		fmt.Fprintln(cmd.OutOrStdout(), evalFlags.out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVar(&evalFlags.challenge, "challenge", "challenge.json", "challenge file")
	evalCmd.Flags().StringVar(&evalFlags.out, "out", "solution.json", "output file")
	evalCmd.Flags().Uint64Var(&evalFlags.logRate, "log-rate", proving.DefaultLogRate, "log progress every this many iterations (0 disables)")
}
