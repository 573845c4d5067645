// Package main is the entry point for the mcg character generator
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mcg/internal/errors"
)

var (
	verbose     bool
	showSummary bool
)

var rootCmd = &cobra.Command{
	Use:   "mcg",
	Short: "Morrowind character generator",
	Long: `mcg rolls random Morrowind characters: race, class, birth sign, house,
blood, faith, allegiance and the occasional Morag Tong assassin.

Run without arguments for the interactive menu.`,
	Args:              cobra.NoArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runMenu,
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&showSummary, "summary", false, "Print a tally of the session before exiting")

	rootCmd.AddCommand(rollCmd)
}
