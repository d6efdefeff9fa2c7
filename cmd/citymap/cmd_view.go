package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/citymap/dfs"
	"github.com/katalvlaran/citymap/internal/ux"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every city with its roads",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			a.printf("%s", ux.Graph(a.graph))
		},
	}
}

func newMatrixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Print the adjacency matrix (0 = no road)",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			a.printf("%s", ux.Matrix(a.graph))
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print city and road counts, average distance and the most connected city",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			comps, err := dfs.Components(a.graph)
			if err != nil {
				return err
			}
			a.printf("%s", ux.Stats(a.graph.Stats(), comps.Components))

			return nil
		},
	}
}
