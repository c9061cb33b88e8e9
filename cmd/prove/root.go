package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	// database drivers for the trace store
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var (
	timeout  time.Duration
	dbDriver string
	dbDSN    string
	noColor  bool
)

type cmdContext struct {
	ctx    context.Context
	cfg    *config
	logger *zap.Logger
}

var rootCmd = &cobra.Command{
	Use:          "prove",
	Short:        "prove - forward-chaining proofs for propositional logic",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Timeout for store operations")
	rootCmd.PersistentFlags().StringVar(&dbDriver, "db-driver", "", "Database driver of the trace store (sqlite or postgres)")
	rootCmd.PersistentFlags().StringVar(&dbDSN, "db", "", "Data source name of the trace store")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
}

// withContext builds the configuration and logger shared by all commands.
func withContext(f func(*cmdContext, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := parseConfig()
		if err != nil {
			return err
		}
		if dbDriver != "" {
			cfg.DBDriver = dbDriver
		}
		if dbDSN != "" {
			cfg.DBDSN = dbDSN
		}
		logger, err := newLogger(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad log level '%s': %v\n", cfg.LogLevel, err)
			logger = zap.NewNop()
		}
		defer logger.Sync() //nolint:errcheck

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		return f(&cmdContext{ctx: ctx, cfg: cfg, logger: logger}, cmd, args)
	}
}
