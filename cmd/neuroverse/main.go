package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Komalshar25/NeuroVerse/internal/config"
	"github.com/Komalshar25/NeuroVerse/internal/game"
	"github.com/Komalshar25/NeuroVerse/internal/logging"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "neuroverse",
		Short: "Grid-world agent driven by a hand-wired signal network",
		Long: `neuroverse runs an agent on a small grid of hazards and food. A fixed
signal network turns what the agent senses into a move every tick.

Episodes can be run headless, swept over many seeds in parallel,
recorded to a history database, or played in a window.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.neuroverse/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: warn, info, debug or trace")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringToString("set", nil, "Override game settings, e.g. --set hazards=5,food_heal=40")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newSweepCmd(),
		newHistoryCmd(),
		newPlayCmd(),
		newConfigCmd(),
		newBrainCmd(),
	)
	return rootCmd
}

// loadSettings reads the config file and applies the persistent flags.
func loadSettings(cmd *cobra.Command) (*config.File, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if overrides, _ := cmd.Flags().GetStringToString("set"); len(overrides) > 0 {
		cfg.Game, err = game.ApplyMap(cfg.Game, overrides)
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.File) *slog.Logger {
	return logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
}
