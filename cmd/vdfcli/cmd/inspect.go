package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/spacemeshos/vdf/persistence"
	"github.com/spacemeshos/vdf/shared"
)

// hexPreview is the number of leading hex digits shown for large integers.
const hexPreview = 16

// inspectCmd represents the inspect command.
var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Print a summary of a setup, challenge or solution file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := inspectFile(args[0])
		if err != nil {
			return err
		}
		report(cmd.OutOrStdout(), rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func inspectFile(filename string) ([][]string, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := persistence.Load(filename, &fields); err != nil {
		return nil, err
	}

	rows := [][]string{{"file", filename}, {"size", bytefmt.ByteSize(uint64(info.Size()))}}
	switch {
	case fields["vdf_instance"] != nil:
		solved, err := persistence.LoadSolution(filename)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{"kind", "solution"})
		rows = append(rows, challengeRows(solved.Instance)...)
		rows = append(rows, intRow("y", solved.Y), intRow("pi", solved.Pi))
	case fields["setup"] != nil:
		unsolved, err := persistence.LoadChallenge(filename)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{"kind", "challenge"})
		rows = append(rows, challengeRows(unsolved)...)
	case fields["N"] != nil:
		setup, err := persistence.LoadSetup(filename)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{"kind", "setup"})
		rows = append(rows, setupRows(setup)...)
	default:
		return nil, fmt.Errorf("%w: %s is not a setup, challenge or solution", shared.ErrMalformed, filename)
	}
	return rows, nil
}

func setupRows(setup shared.SetupForVDF) [][]string {
	return [][]string{
		{"t", strconv.FormatUint(setup.T, 10)},
		intRow("N", setup.N),
	}
}

func challengeRows(unsolved shared.UnsolvedVDF) [][]string {
	return append(setupRows(unsolved.Setup), intRow("x", unsolved.X))
}

func intRow(name string, v *big.Int) []string {
	text := v.Text(16)
	if len(text) > hexPreview {
		text = text[:hexPreview] + "..."
	}
	return []string{name, fmt.Sprintf("%s (%d bits)", text, v.BitLen())}
}

func report(w io.Writer, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"field", "value"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}
