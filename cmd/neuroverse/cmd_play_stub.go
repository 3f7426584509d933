//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open a window and watch or steer the agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("play requires building with the 'ebiten' tag: go build -tags ebiten ./cmd/neuroverse")
		},
	}
}
