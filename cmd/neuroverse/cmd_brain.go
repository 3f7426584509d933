package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Komalshar25/NeuroVerse/internal/brain"
)

type brainNode struct {
	Name  string           `json:"name"`
	Kind  string           `json:"kind"`
	Value float64          `json:"value"`
	Edges []brain.EdgeInfo `json:"edges,omitempty"`
}

func newBrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brain",
		Short: "Show the signal network and evaluate it once",
		Long: `Build the directional signal network with the configured activation,
set the given inputs, run one pass and print every node with its value
and outgoing edges.

Examples:
  neuroverse brain
  neuroverse brain --input fire_left=1,food_up=1
  neuroverse brain --set activation=threshold --input food_right=0.4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			fn, err := brain.ActivationByName(cfg.Game.Activation)
			if err != nil {
				return err
			}
			net, err := brain.NewDirectional(brain.WithActivation(fn))
			if err != nil {
				return err
			}

			kinds := make(map[string]brain.Kind, net.Len())
			for _, nd := range net.Nodes() {
				kinds[nd.Name] = nd.Kind
			}
			inputs, _ := cmd.Flags().GetStringToString("input")
			names := make([]string, 0, len(inputs))
			for name := range inputs {
				names = append(names, name)
			}
			slices.Sort(names)
			for _, name := range names {
				if _, ok := net.Value(name); !ok {
					return fmt.Errorf("unknown node %q", name)
				}
				if kinds[name] != brain.Input {
					return fmt.Errorf("%s is a %s node, not an input", name, kinds[name])
				}
				v, err := strconv.ParseFloat(inputs[name], 64)
				if err != nil {
					return fmt.Errorf("input %s: %w", name, err)
				}
				net.SetInput(name, v)
			}
			net.Run()

			nodes := make([]brainNode, 0, net.Len())
			for _, nd := range net.Nodes() {
				nodes = append(nodes, brainNode{
					Name:  nd.Name,
					Kind:  nd.Kind.String(),
					Value: nd.Value,
					Edges: net.Edges(nd.Name),
				})
			}

			out := cmd.OutOrStdout()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(out).Encode(nodes)
			}
			fmt.Fprintf(out, "%d nodes, activation %s\n", net.Len(), cfg.Game.Activation)
			for _, nd := range nodes {
				fmt.Fprintf(out, "%-12s %-6s %8.3f", nd.Name, nd.Kind, nd.Value)
				for _, e := range nd.Edges {
					fmt.Fprintf(out, "  -> %s (%+g)", e.To, e.Weight)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringToString("input", nil, "Input node values, e.g. --input fire_left=1,food_up=1")
	return cmd
}
