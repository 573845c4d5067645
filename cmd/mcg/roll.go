package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mcg/internal/errors"
	"github.com/KirkDiggler/mcg/internal/orchestrators/generator"
)

const maxRollCount = 1000

var rollCount int

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll characters without the menu",
	Long: `Roll one or more characters and print them. Examples:

  mcg roll
  mcg roll --count 5 --summary`,
	Args: cobra.NoArgs,
	RunE: runRoll,
}

func init() {
	rollCmd.Flags().IntVarP(&rollCount, "count", "n", 1, "Number of characters to roll")
}

func runRoll(cmd *cobra.Command, _ []string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("count", rollCount, 1, maxRollCount, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i := 0; i < rollCount; i++ {
		output, err := a.generator.Roll(cmd.Context(), &generator.RollInput{})
		if err != nil {
			return errors.Wrapf(err, "failed to roll character %d", i+1)
		}
		for _, line := range output.Lines {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return errors.Wrap(err, "failed to write character")
			}
		}
	}

	return a.finish(out)
}
