// Package cli wires the cobra command tree. The bare command opens the
// timer TUI; subcommands inspect the same database from the shell.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/riordanpawley/valerian/internal/services/store"
)

var dbPath string

// New builds the root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "valerian",
		Short: "A focus timer with a break bank and a planned day timeline.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI()
		},
	}

	cmd.PersistentFlags().StringVar(&dbPath, "path", "", "Database directory (overrides VALERIAN_PATH and .valerian).")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLog(topLevel)
	addStats(topLevel)
	addTasks(topLevel)
	addVersion(topLevel)
}

// loadStore opens the database, honoring the --path flag.
func loadStore(logger *slog.Logger) (store.Persistence, error) {
	if dbPath != "" {
		return store.Load(store.PathConfig(dbPath), logger)
	}
	return store.Load(nil, logger)
}

// newLogger returns the CLI logger. The TUI owns the terminal, so debug
// output goes to the file named by VALERIAN_DEBUG or nowhere at all.
func newLogger() *slog.Logger {
	if path := os.Getenv("VALERIAN_DEBUG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
		fmt.Fprintf(os.Stderr, "debug log unavailable: %v\n", err)
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
