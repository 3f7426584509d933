package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Komalshar25/NeuroVerse/internal/history"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded episodes, newest first, or show one by id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")
			jsonOut, _ := cmd.Flags().GetBool("json")

			store, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if id, _ := cmd.Flags().GetString("id"); id != "" {
				ep, found, err := store.GetEpisode(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("get episode: %w", err)
				}
				if !found {
					return fmt.Errorf("episode %s not found", id)
				}
				if jsonOut {
					return json.NewEncoder(out).Encode(ep)
				}
				printEpisode(out, ep)
				return nil
			}

			episodes, err := store.ListEpisodes(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list episodes: %w", err)
			}

			if jsonOut {
				if episodes == nil {
					episodes = []history.Episode{}
				}
				return json.NewEncoder(out).Encode(episodes)
			}
			if len(episodes) == 0 {
				fmt.Fprintln(out, "No episodes recorded.")
				return nil
			}
			fmt.Fprintf(out, "%-36s  %-20s  %8s  %6s  %6s  %s\n", "id", "ended", "seed", "ticks", "score", "outcome")
			for _, ep := range episodes {
				outcome := "survived"
				if ep.GameOver {
					outcome = "game over"
				}
				fmt.Fprintf(out, "%-36s  %-20s  %8d  %6d  %6d  %s\n",
					ep.ID, ep.EndedAt.Local().Format("2006-01-02 15:04:05"), ep.Seed, ep.Ticks, ep.Score, outcome)
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "Maximum number of episodes to list (0 for all)")
	cmd.Flags().String("id", "", "Show a single episode")
	return cmd
}

func printEpisode(w io.Writer, ep history.Episode) {
	outcome := "survived"
	if ep.GameOver {
		outcome = "game over"
	}
	fmt.Fprintf(w, "id:          %s\n", ep.ID)
	fmt.Fprintf(w, "ended:       %s\n", ep.EndedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "seed:        %d\n", ep.Seed)
	fmt.Fprintf(w, "ticks:       %d\n", ep.Ticks)
	fmt.Fprintf(w, "score:       %d\n", ep.Score)
	fmt.Fprintf(w, "health:      %.2f\n", ep.Health)
	fmt.Fprintf(w, "food eaten:  %d\n", ep.FoodEaten)
	fmt.Fprintf(w, "hazard hits: %d\n", ep.HazardHits)
	fmt.Fprintf(w, "outcome:     %s\n", outcome)
}
