package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Komalshar25/NeuroVerse/internal/config"
	"github.com/Komalshar25/NeuroVerse/internal/game"
	"github.com/Komalshar25/NeuroVerse/internal/history"
	"github.com/Komalshar25/NeuroVerse/internal/logging"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one headless episode and print its summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Game.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if trace, _ := cmd.Flags().GetString("trace"); trace != "" {
				cfg.Logging.TraceFile = trace
			}
			ticks, _ := cmd.Flags().GetInt("ticks")
			record, _ := cmd.Flags().GetBool("record")
			jsonOut, _ := cmd.Flags().GetBool("json")

			opts := []game.Option{game.WithLogger(newLogger(cmd, cfg))}
			if cfg.Logging.TraceFile != "" {
				tw, err := logging.OpenTraceFile(cfg.Logging.TraceFile)
				if err != nil {
					return err
				}
				defer tw.Close()
				opts = append(opts, game.WithTrace(tw))
			}

			session, err := game.New(cfg.Game, opts...)
			if err != nil {
				return err
			}
			summary, err := game.RunEpisode(cmd.Context(), session, ticks)
			if err != nil {
				return fmt.Errorf("episode interrupted after %d ticks: %w", summary.Ticks, err)
			}

			var episodeID string
			if record {
				ep := history.FromSummary(summary)
				if err := recordEpisode(cmd.Context(), cfg, ep); err != nil {
					return err
				}
				episodeID = ep.ID
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(struct {
					ID string `json:"id,omitempty"`
					game.Summary
				}{episodeID, summary})
			}
			printSummary(out, summary)
			if episodeID != "" {
				fmt.Fprintf(out, "recorded as %s\n", episodeID)
			}
			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "Random seed (default from config)")
	cmd.Flags().Int("ticks", 1000, "Stop after this many ticks (0 runs until game over)")
	cmd.Flags().String("trace", "", "Append one JSON line per tick to this file")
	cmd.Flags().Bool("record", false, "Save the episode summary to history")
	return cmd
}

func openStore(ctx context.Context, cfg *config.File) (history.Store, error) {
	store, err := history.NewStore(cfg.History.Backend, cfg.History.Path)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return store, nil
}

func recordEpisode(ctx context.Context, cfg *config.File, ep history.Episode) error {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.SaveEpisode(ctx, ep); err != nil {
		return fmt.Errorf("record episode: %w", err)
	}
	return nil
}

func printSummary(w io.Writer, s game.Summary) {
	outcome := "survived"
	if s.GameOver {
		outcome = "game over"
	}
	fmt.Fprintf(w, "seed %d: %s after %d ticks\n", s.Seed, outcome, s.Ticks)
	fmt.Fprintf(w, "  score   %d\n", s.Score)
	fmt.Fprintf(w, "  health  %.1f\n", s.Health)
	fmt.Fprintf(w, "  food    %d eaten\n", s.FoodEaten)
	fmt.Fprintf(w, "  hazards %d hits\n", s.HazardHits)
	fmt.Fprintf(w, "  moves   %d (idle %d)\n", s.Moves, s.IdleTicks)
}
