//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/Komalshar25/NeuroVerse/internal/app"
	"github.com/Komalshar25/NeuroVerse/internal/game"
	"github.com/Komalshar25/NeuroVerse/internal/render"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open a window and watch or steer the agent",
		Long: `Arrow keys or WASD move the agent; otherwise the network decides every
ai_interval ticks. Space pauses, N steps once, R restarts, 1 and 2 toggle
the sensor and decision overlays, Q or Esc quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Game.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			scale, _ := cmd.Flags().GetInt("scale")
			if scale <= 0 {
				scale = render.Fit(cfg.Game.Size, cfg.Game.Size, 640, 640)
			}

			logger := newLogger(cmd, cfg)
			session, err := game.New(cfg.Game, game.WithLogger(logger))
			if err != nil {
				return err
			}

			g := app.New(session, scale, logger)
			w, h := g.Layout(0, 0)
			ebiten.SetWindowTitle("NeuroVerse")
			ebiten.SetWindowSize(w, h)

			if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "Random seed (default from config)")
	cmd.Flags().Int("scale", 0, "Pixels per cell (0 fits a 640px window)")
	return cmd
}
