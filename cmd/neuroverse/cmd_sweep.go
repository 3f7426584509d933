package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Komalshar25/NeuroVerse/internal/game"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run episodes over consecutive seeds in parallel and rank them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			seeds, _ := cmd.Flags().GetInt("seeds")
			if seeds <= 0 {
				return fmt.Errorf("--seeds must be positive, got %d", seeds)
			}
			start := cfg.Game.Seed
			if cmd.Flags().Changed("start-seed") {
				start, _ = cmd.Flags().GetInt64("start-seed")
			}
			ticks, _ := cmd.Flags().GetInt("ticks")
			workers, _ := cmd.Flags().GetInt("workers")
			jsonOut, _ := cmd.Flags().GetBool("json")

			logger := newLogger(cmd, cfg)
			began := time.Now()
			results, err := sweep(cmd.Context(), cfg.Game, start, seeds, ticks, workers)
			if err != nil {
				return err
			}
			rankResults(results)
			logger.Info("sweep finished", "episodes", len(results), "workers", workers, "elapsed", time.Since(began))

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(results)
			}
			printRanking(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().Int("seeds", 16, "Number of consecutive seeds to run")
	cmd.Flags().Int64("start-seed", 0, "First seed (default from config)")
	cmd.Flags().Int("ticks", 1000, "Tick limit per episode (0 runs until game over)")
	cmd.Flags().Int("workers", runtime.NumCPU(), "Number of episodes run at once")
	return cmd
}

// sweep runs one session per seed in [start, start+count). Sessions share
// nothing, so each goroutine owns its own.
func sweep(ctx context.Context, base game.Config, start int64, count, ticks, workers int) ([]game.Summary, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]game.Summary, count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < count; i++ {
		g.Go(func() error {
			cfg := base
			cfg.Seed = start + int64(i)
			session, err := game.New(cfg)
			if err != nil {
				return fmt.Errorf("seed %d: %w", cfg.Seed, err)
			}
			summary, err := game.RunEpisode(ctx, session, ticks)
			if err != nil {
				return fmt.Errorf("seed %d: %w", cfg.Seed, err)
			}
			results[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// rankResults orders by survival time, then score, then seed.
func rankResults(results []game.Summary) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Ticks != b.Ticks {
			return a.Ticks > b.Ticks
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Seed < b.Seed
	})
}

func printRanking(w io.Writer, results []game.Summary) {
	fmt.Fprintf(w, "%4s  %8s  %6s  %6s  %5s  %7s  %s\n", "rank", "seed", "ticks", "score", "food", "hazards", "outcome")
	for i, r := range results {
		outcome := "survived"
		if r.GameOver {
			outcome = "game over"
		}
		fmt.Fprintf(w, "%4d  %8d  %6d  %6d  %5d  %7d  %s\n", i+1, r.Seed, r.Ticks, r.Score, r.FoodEaten, r.HazardHits, outcome)
	}
	if len(results) == 0 {
		return
	}
	var ticks, score int
	for _, r := range results {
		ticks += r.Ticks
		score += r.Score
	}
	n := float64(len(results))
	fmt.Fprintf(w, "mean ticks %.1f, mean score %.1f over %d seeds\n", float64(ticks)/n, float64(score)/n, len(results))
}
