package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mcg/internal/errors"
	"github.com/KirkDiggler/mcg/internal/menu"
)

func runMenu(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	loop, err := menu.New(&menu.Config{
		Generator: a.generator,
		Input:     cmd.InOrStdin(),
		Output:    cmd.OutOrStdout(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create menu")
	}

	if err := loop.Run(cmd.Context()); err != nil {
		return err
	}

	return a.finish(cmd.OutOrStdout())
}
