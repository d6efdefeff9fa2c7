// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: plain-text graph file codec (Save/Load and their file wrappers).
// Format (FormatVersion 1):
//   - line 1: city count n
//   - next n lines: one city name per line, in index order
//   - remaining lines: "u v d" for every road with u < v

package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/citymap/core"
)

// FormatVersion identifies the text schema written by Save.
const FormatVersion = 1

// Default file names used when no configuration overrides them.
const (
	DefaultGraphFile  = "city_data.txt"
	DefaultReportFile = "last_route.txt"
)

// Sentinel errors for persistence.
var (
	// ErrIO wraps any failure to open, write, sync or rename a file.
	ErrIO = errors.New("storage: i/o failure")

	// ErrMalformed indicates a graph file whose count line cannot be parsed.
	ErrMalformed = errors.New("storage: malformed graph file")
)

// LoadResult reports what Load restored and what it had to skip.
type LoadResult struct {
	Cities  int  // cities inserted
	Roads   int  // roads inserted
	Skipped int  // name or road records rejected
	Missing bool // the file did not exist; the graph was left empty
}

// parse states
const (
	parseCount = iota
	parseNames
	parseRoads
)

// Save writes g to w in the FormatVersion 1 layout.
func Save(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	cities := g.Cities()
	fmt.Fprintf(bw, "%d\n", len(cities))
	for _, name := range cities {
		fmt.Fprintf(bw, "%s\n", name)
	}
	for _, e := range g.Roads() {
		fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Distance)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: save: %w", ErrIO, err)
	}

	return nil
}

// SaveFile writes g to a temporary file next to path and renames it into
// place, so a failed save never truncates the previous file.
func SaveFile(path string, g *core.Graph) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: save %q: %w", ErrIO, path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := Save(tmp, g); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: save %q: %w", ErrIO, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: save %q: %w", ErrIO, path, err)
	}

	return nil
}

// Load clears g and restores it from r.
//
// Names that are invalid, duplicated or beyond g's capacity are skipped;
// roads whose endpoints were skipped or out of range, self-loops, duplicates,
// negative distances and unparsable lines are skipped too. Every skip is
// counted in LoadResult.Skipped. A count line that is not a non-negative
// integer leaves g empty and returns ErrMalformed; a read failure leaves g
// empty and returns ErrIO.
func Load(r io.Reader, g *core.Graph) (LoadResult, error) {
	g.Clear()

	var (
		res        LoadResult
		want       int
		fileToCity []int // file index → graph index, core.NoCity if skipped
	)

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	state := parseCount
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		switch state {
		case parseCount:
			n, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil || n < 0 {
				return res, fmt.Errorf("%w: count line %q", ErrMalformed, line)
			}
			want = n
			// the count is untrusted; never size memory from it beyond capacity
			fileToCity = make([]int, 0, min(n, g.Capacity()))
			state = parseNames
			if want == 0 {
				state = parseRoads
			}

		case parseNames:
			idx, err := g.AddCity(line)
			if err != nil {
				idx = core.NoCity
				res.Skipped++
			} else {
				res.Cities++
			}
			fileToCity = append(fileToCity, idx)
			if len(fileToCity) == want {
				state = parseRoads
			}

		case parseRoads:
			if strings.TrimSpace(line) == "" {
				continue
			}
			if addRoadRecord(g, fileToCity, line) {
				res.Roads++
			} else {
				res.Skipped++
			}
		}
	}
	if err := scanner.Err(); err != nil {
		g.Clear()
		return LoadResult{}, fmt.Errorf("%w: load: %w", ErrIO, err)
	}
	if state == parseCount {
		return res, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	// names promised by the count line but missing from the file
	if state == parseNames {
		res.Skipped += want - len(fileToCity)
	}

	return res, nil
}

// addRoadRecord parses "u v d" and inserts it through the file-to-graph
// index map. It reports whether a road was added.
func addRoadRecord(g *core.Graph, fileToCity []int, line string) bool {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return false
	}
	a, errA := strconv.Atoi(fields[0])
	b, errB := strconv.Atoi(fields[1])
	d, errD := strconv.ParseInt(fields[2], 10, 64)
	if errA != nil || errB != nil || errD != nil {
		return false
	}
	if a < 0 || a >= len(fileToCity) || b < 0 || b >= len(fileToCity) {
		return false
	}
	u, v := fileToCity[a], fileToCity[b]
	if u == core.NoCity || v == core.NoCity {
		return false
	}

	return g.AddRoadAt(u, v, d) == nil
}

// LoadFile opens path and calls Load. A missing file is not an error: g is
// cleared and LoadResult.Missing is set.
func LoadFile(path string, g *core.Graph) (LoadResult, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		g.Clear()
		return LoadResult{Missing: true}, nil
	}
	if err != nil {
		g.Clear()
		return LoadResult{}, fmt.Errorf("%w: load %q: %w", ErrIO, path, err)
	}
	defer f.Close()

	return Load(f, g)
}
