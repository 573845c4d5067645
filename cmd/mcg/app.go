package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mcg/internal/errors"
	"github.com/KirkDiggler/mcg/internal/orchestrators/generator"
	"github.com/KirkDiggler/mcg/internal/pkg/clock"
	"github.com/KirkDiggler/mcg/internal/pkg/idgen"
	"github.com/KirkDiggler/mcg/internal/services/tally"
)

// app is the wired set of components shared by the commands
type app struct {
	generator generator.Service
	tally     *tally.Service
}

// roller is swapped in tests
var roller dice.Roller = dice.DefaultRoller

func newApp() (*app, error) {
	bus := events.NewBus()
	clk := clock.New()

	t, err := tally.New(&tally.Config{
		EventBus: bus,
		Clock:    clk,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create tally")
	}

	gen, err := generator.NewOrchestrator(&generator.Config{
		DiceRoller:  roller,
		IDGenerator: idgen.NewUUID("char"),
		Clock:       clk,
		EventBus:    bus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create generator")
	}

	return &app{
		generator: gen,
		tally:     t,
	}, nil
}

// finish logs the session and prints the tally when asked to
func (a *app) finish(out io.Writer) error {
	summary := a.tally.Summary()

	slog.Info("Session finished",
		"rolls", summary.Rolls,
		"rare_lineages", summary.RareLineages,
		"assassins", summary.Assassins,
		"elapsed", summary.Elapsed,
	)

	if showSummary {
		lines := append([]string{""}, summary.Lines()...)
		for _, line := range lines {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return errors.Wrap(err, "failed to write summary")
			}
		}
	}

	return a.tally.Close()
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}
