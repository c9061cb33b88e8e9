package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var showCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print a stored trace",
	Args:  cobra.ExactArgs(1),
	RunE: withContext(func(c *cmdContext, cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("bad run id '%s': %w", args[0], err)
		}
		store, closeStore, err := openStore(c)
		if err != nil {
			c.logger.Error("Failed to open trace store", zap.String("driver", c.cfg.DBDriver), zap.Error(err))
			return err
		}
		defer closeStore()

		run, err := store.LoadRun(c.ctx, id)
		if err != nil {
			return err
		}
		printTrace(cmd.OutOrStdout(), run.Name, run.Goal, run.Log, run.Success)
		return nil
	}),
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored runs",
	Args:  cobra.NoArgs,
	RunE: withContext(func(c *cmdContext, cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore(c)
		if err != nil {
			c.logger.Error("Failed to open trace store", zap.String("driver", c.cfg.DBDriver), zap.Error(err))
			return err
		}
		defer closeStore()

		runs, err := store.ListRuns(c.ctx)
		if err != nil {
			return err
		}
		for _, run := range runs {
			fmt.Fprintln(cmd.OutOrStdout(), run.Summary())
		}
		return nil
	}),
}
