package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/vdf/persistence"
	"github.com/spacemeshos/vdf/verifying"
)

var verifyFlags struct {
	challenge string
	solution  string
}

// verifyCmd represents the verify command.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check a solution against the challenge it claims to answer",
	Long: `Check a solution against a challenge file kept by the verifier.
The instance embedded in the solution is only compared with the challenge, never trusted.
Exits with status 1 and the reason when the solution is rejected.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		unsolved, err := persistence.LoadChallenge(verifyFlags.challenge)
		if err != nil {
			return err
		}
		solved, err := persistence.LoadSolution(verifyFlags.solution)
		if err != nil {
			return err
		}

		if err := verifying.Verify(solved, unsolved, verifying.WithConfig(state.cfg)); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "OK")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyFlags.challenge, "challenge", "challenge.json", "challenge file")
	verifyCmd.Flags().StringVar(&verifyFlags.solution, "solution", "solution.json", "solution file")
}
