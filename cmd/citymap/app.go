package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/citymap/config"
	"github.com/katalvlaran/citymap/core"
	"github.com/katalvlaran/citymap/storage"
)

// errSaveBlocked is returned by mutating commands when the data file could
// not be read at startup.
var errSaveBlocked = errors.New("citymap: data file was unreadable, not overwriting it")

// app holds the state shared by every command of one invocation.
type app struct {
	// flags
	configPath string
	dataFile   string
	reportFile string
	logLevel   string

	cfg   config.Config
	log   *slog.Logger
	graph *core.Graph

	// loadErr is set when the data file exists but could not be read;
	// save refuses to overwrite it for the rest of the run.
	loadErr error

	out    io.Writer
	errOut io.Writer
}

// newRootCmd builds the full command tree writing to out and logging to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "citymap",
		Short: "Manage a city road map and find routes",
		Long: `citymap keeps an undirected map of cities and roads in a plain-text file
and computes routes between cities.

Every command loads the map file, runs, and saves the map back if it changed.

Examples:
  citymap city add Lviv
  citymap road add Lviv Kyiv 540
  citymap route bfs Lviv Odesa
  citymap route dijkstra Lviv Odesa --save-report`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.dataFile, "data", "", "graph data file (default "+storage.DefaultGraphFile+")")
	pf.StringVar(&a.reportFile, "report", "", "route report file (default "+storage.DefaultReportFile+")")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		newCityCmd(a),
		newRoadCmd(a),
		newShowCmd(a),
		newMatrixCmd(a),
		newStatsCmd(a),
		newRouteCmd(a),
	)

	return root
}

// setup resolves configuration, builds the logger and loads the graph.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	// flags override every other source
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataFile = a.dataFile
	}
	if flags.Changed("report") {
		cfg.ReportFile = a.reportFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	a.graph = core.NewGraph(core.WithCapacity(cfg.Capacity))

	return a.load()
}

// load reads the data file into a.graph, tolerating a missing or damaged file.
func (a *app) load() error {
	res, err := storage.LoadFile(a.cfg.DataFile, a.graph)
	switch {
	case errors.Is(err, storage.ErrMalformed):
		a.log.Warn("graph file is malformed, starting empty", "file", a.cfg.DataFile, "err", err)
		return nil
	case err != nil:
		a.loadErr = err
		a.log.Warn("graph file could not be read, starting empty", "file", a.cfg.DataFile, "err", err)
		return nil
	case res.Missing:
		a.log.Debug("no graph file yet, starting empty", "file", a.cfg.DataFile)
		return nil
	}
	if res.Skipped > 0 {
		a.log.Warn("skipped invalid records while loading", "file", a.cfg.DataFile, "skipped", res.Skipped)
	}
	a.log.Debug("graph loaded", "file", a.cfg.DataFile, "cities", res.Cities, "roads", res.Roads)

	return nil
}

// save writes a.graph back to the data file.
func (a *app) save() error {
	if a.loadErr != nil {
		return fmt.Errorf("%w: %q: %w", errSaveBlocked, a.cfg.DataFile, a.loadErr)
	}
	if err := storage.SaveFile(a.cfg.DataFile, a.graph); err != nil {
		return err
	}
	a.log.Info("graph saved", "file", a.cfg.DataFile, "cities", a.graph.CityCount(), "roads", a.graph.RoadCount())

	return nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
