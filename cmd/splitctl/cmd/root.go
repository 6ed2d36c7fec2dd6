// Package cmd implements the splitctl command line: it works on the same
// stores as the server, without going through the network.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/internal/backend"
	"github.com/mmynk/splitledger/internal/config"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/logging"
)

var cfg *config.Config
var store storage.Store

var rootCmd = &cobra.Command{
	Use:           "splitctl",
	Short:         "Record shared expenses and work out who owes whom",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		setLogger(cmd)

		s, err := backend.OpenStore(cfg)
		if err != nil {
			return fmt.Errorf("open %s store at %s: %w", cfg.StorageBackend, backend.Location(cfg), err)
		}
		store = s
		return nil
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return closeStore()
	},
}

func closeStore() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	return err
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_ = closeStore()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Real environment variables take precedence over .env
	_ = godotenv.Load()
	cfg = config.Load()

	rootCmd.PersistentFlags().StringVar(&cfg.StorageBackend, "backend", cfg.StorageBackend, "Storage backend (sqlite or json).")
	rootCmd.PersistentFlags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path.")
	rootCmd.PersistentFlags().StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Directory for the json backend.")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error).")
}

// setLogger installs a logger writing to the command's error stream.
func setLogger(cmd *cobra.Command) {
	slog.SetDefault(logging.New(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel)))
}
