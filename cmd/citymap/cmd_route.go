package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/citymap/bfs"
	"github.com/katalvlaran/citymap/dijkstra"
	"github.com/katalvlaran/citymap/internal/ux"
	"github.com/katalvlaran/citymap/route"
	"github.com/katalvlaran/citymap/storage"
)

func newRouteCmd(a *app) *cobra.Command {
	var saveReport bool

	cmd := &cobra.Command{
		Use:   "route {bfs|dijkstra} FROM TO",
		Short: "Find a route between two cities",
		Long: `Find a route between two cities.

Methods:
  bfs       - fewest roads travelled, distance ignored
  dijkstra  - least total distance

With --save-report the route is also written to the report file,
replacing any previous report.`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{"bfs", "dijkstra"},
		RunE: func(_ *cobra.Command, args []string) error {
			method, err := route.ParseMethod(args[0])
			if err != nil {
				return err
			}
			r, err := route.FindWith(a.graph, args[1], args[2], method, a.traceHooks())
			if err != nil {
				return err
			}
			a.printf("%s", ux.Route(r))

			if !saveReport {
				return nil
			}
			if err := storage.SaveRouteReport(a.cfg.ReportFile, r); err != nil {
				return err
			}
			a.printf("%s\n", ux.Success(fmt.Sprintf("Route saved to %q.", a.cfg.ReportFile)))

			return nil
		},
	}
	cmd.Flags().BoolVar(&saveReport, "save-report", false, "write the route report file")

	return cmd
}

// traceHooks logs every engine step at debug level.
func (a *app) traceHooks() route.SearchOptions {
	return route.SearchOptions{
		BFS: []bfs.Option{bfs.WithOnVisit(func(u, depth int) error {
			a.log.Debug("bfs visit", "city", a.cityName(u), "depth", depth)
			return nil
		})},
		Dijkstra: []dijkstra.Option{dijkstra.WithOnSettle(func(u int, dist int64) {
			a.log.Debug("dijkstra settle", "city", a.cityName(u), "dist", dist)
		})},
	}
}

func (a *app) cityName(u int) string {
	name, err := a.graph.Name(u)
	if err != nil {
		return fmt.Sprint(u)
	}

	return name
}
