package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after the config file, NEUROVERSE_* environment
variables and --set overrides have been applied.

Examples:
  neuroverse config
  neuroverse config --set hazards=6,food=2
  neuroverse config --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(out).Encode(cfg)
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
}
