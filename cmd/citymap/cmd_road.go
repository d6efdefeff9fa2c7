package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/citymap/internal/ux"
)

func newRoadCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "road",
		Short: "Add or remove roads",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add CITY_A CITY_B DISTANCE",
			Short: "Add a two-way road of DISTANCE km",
			Args:  cobra.ExactArgs(3),
			RunE: func(_ *cobra.Command, args []string) error {
				d, err := strconv.ParseInt(args[2], 10, 64)
				if err != nil {
					return fmt.Errorf("road add: distance %q is not an integer", args[2])
				}
				if err := a.graph.AddRoad(args[0], args[1], d); err != nil {
					return err
				}
				a.printf("%s\n", ux.Success(fmt.Sprintf("Road %s - %s (%d km) added.", args[0], args[1], d)))

				return a.save()
			},
		},
		&cobra.Command{
			Use:   "remove CITY_A CITY_B",
			Short: "Remove the road between two cities",
			Args:  cobra.ExactArgs(2),
			RunE: func(_ *cobra.Command, args []string) error {
				existed, err := a.graph.RemoveRoad(args[0], args[1])
				if err != nil {
					return err
				}
				if !existed {
					a.printf("%s\n", ux.Warning(fmt.Sprintf("No road between %s and %s.", args[0], args[1])))
					return nil
				}
				a.printf("%s\n", ux.Success(fmt.Sprintf("Road %s - %s removed.", args[0], args[1])))

				return a.save()
			},
		},
	)

	return cmd
}
