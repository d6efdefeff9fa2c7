package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/citymap/internal/ux"
)

func newCityCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "city",
		Short: "Add, remove, list or look up cities",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add NAME",
			Short: "Add a city",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				idx, err := a.graph.AddCity(args[0])
				if err != nil {
					return err
				}
				a.printf("%s\n", ux.Success(fmt.Sprintf("City %q added as #%d.", args[0], idx+1)))

				return a.save()
			},
		},
		&cobra.Command{
			Use:   "remove NAME",
			Short: "Remove a city and every road touching it",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				if err := a.graph.RemoveCity(args[0]); err != nil {
					return err
				}
				a.printf("%s\n", ux.Success(fmt.Sprintf("City %q removed.", args[0])))

				return a.save()
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List cities in index order",
			Args:  cobra.NoArgs,
			Run: func(_ *cobra.Command, _ []string) {
				a.printf("%s", ux.Cities(a.graph.Cities()))
			},
		},
		&cobra.Command{
			Use:   "suggest PREFIX",
			Short: "Show cities whose name starts with PREFIX (case-insensitive)",
			Args:  cobra.ExactArgs(1),
			Run: func(_ *cobra.Command, args []string) {
				a.printf("%s", ux.Suggestions(a.graph.Suggest(args[0])))
			},
		},
	)

	return cmd
}
