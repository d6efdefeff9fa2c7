// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// input validation, weighted path selection, unreachable targets,
// the settle hook and overflow-safe relaxation.
package dijkstra_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/katalvlaran/citymap/bfs"
	"github.com/katalvlaran/citymap/core"
	"github.com/katalvlaran/citymap/dijkstra"
)

// mustGraph builds a graph from cities and "a-b-d" road triples.
func mustGraph(t *testing.T, cities []string, roads ...any) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, c := range cities {
		if _, err := g.AddCity(c); err != nil {
			t.Fatalf("AddCity(%q): %v", c, err)
		}
	}
	for i := 0; i+2 < len(roads); i += 3 {
		a, b, d := roads[i].(string), roads[i+1].(string), roads[i+2].(int)
		if err := g.AddRoad(a, b, int64(d)); err != nil {
			t.Fatalf("AddRoad(%q,%q,%d): %v", a, b, d, err)
		}
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	if _, err := dijkstra.ShortestPath(nil, 0, 0); !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_IndexOutOfRange(t *testing.T) {
	g := mustGraph(t, []string{"A", "B"})
	for _, tc := range [][2]int{{-1, 0}, {0, 2}, {2, 0}, {0, -1}} {
		if _, err := dijkstra.ShortestPath(g, tc[0], tc[1]); !errors.Is(err, core.ErrIndexOutOfRange) {
			t.Errorf("ShortestPath(%d,%d): expected ErrIndexOutOfRange, got %v", tc[0], tc[1], err)
		}
	}
}

func TestDijkstra_EmptyGraph(t *testing.T) {
	g := core.NewGraph()
	if _, err := dijkstra.ShortestPath(g, 0, 0); !errors.Is(err, core.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange on empty graph, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Path selection
// ------------------------------------------------------------------------

func TestDijkstra_DetourBeatsDirectRoad(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"},
		"A", "B", 5,
		"B", "C", 3,
		"A", "C", 10,
	)
	res, err := dijkstra.ShortestPath(g, 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path, err := res.PathTo()
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if !slices.Equal(path, []int{0, 1, 2}) {
		t.Errorf("path = %v, want [0 1 2]", path)
	}
	if d, _ := res.Distance(); d != 8 {
		t.Errorf("distance = %d, want 8", d)
	}
	if res.Parent[0] != core.NoCity {
		t.Errorf("source parent = %d, want NoCity", res.Parent[0])
	}
}

func TestDijkstra_SameSourceAndTarget(t *testing.T) {
	g := mustGraph(t, []string{"A", "B"}, "A", "B", 4)
	res, err := dijkstra.ShortestPath(g, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path, _ := res.PathTo()
	if !slices.Equal(path, []int{1}) {
		t.Errorf("path = %v, want [1]", path)
	}
	if d, _ := res.Distance(); d != 0 {
		t.Errorf("distance = %d, want 0", d)
	}
}

func TestDijkstra_ZeroWeightRoads(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"},
		"A", "B", 0,
		"B", "C", 0,
		"A", "C", 1,
	)
	res, _ := dijkstra.ShortestPath(g, 0, 2)
	if d, _ := res.Distance(); d != 0 {
		t.Fatalf("distance = %d, want 0", d)
	}
}

func TestDijkstra_AllDistancesFromSource(t *testing.T) {
	//   A ─4─ B ─1─ C
	//   └──────2────┘    D isolated
	g := mustGraph(t, []string{"A", "B", "C", "D"},
		"A", "B", 4,
		"B", "C", 1,
		"A", "C", 2,
	)
	res, err := dijkstra.ShortestPath(g, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int64{0, 3, 2, dijkstra.Infinity}
	if !slices.Equal(res.Dist, want) {
		t.Errorf("Dist = %v, want %v", res.Dist, want)
	}
	if !slices.Equal(res.Settled, []int{0, 2, 1}) {
		t.Errorf("Settled = %v, want [0 2 1]", res.Settled)
	}
}

// TestDijkstra_UniformWeightsMatchBFS compares hop counts on a grid-like
// graph where every road has distance 1.
func TestDijkstra_UniformWeightsMatchBFS(t *testing.T) {
	cities := []string{"A", "B", "C", "D", "E", "F"}
	g := mustGraph(t, cities,
		"A", "B", 1,
		"B", "C", 1,
		"A", "D", 1,
		"D", "E", 1,
		"E", "F", 1,
		"C", "F", 1,
		"B", "E", 1,
	)
	for dst := range cities {
		dr, err := dijkstra.ShortestPath(g, 0, dst)
		if err != nil {
			t.Fatalf("dijkstra: %v", err)
		}
		br, err := bfs.ShortestPath(g, 0, dst)
		if err != nil {
			t.Fatalf("bfs: %v", err)
		}
		d, _ := dr.Distance()
		if int(d) != br.Hops() {
			t.Errorf("dst %s: dijkstra %d, bfs hops %d", cities[dst], d, br.Hops())
		}
	}
}

// ------------------------------------------------------------------------
// 3. Unreachable targets
// ------------------------------------------------------------------------

func TestDijkstra_Disconnected(t *testing.T) {
	g := mustGraph(t, []string{"X", "Y", "P", "Q"},
		"X", "Y", 1,
		"P", "Q", 1,
	)
	res, err := dijkstra.ShortestPath(g, 0, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Reached() {
		t.Fatal("expected target to be unreached")
	}
	if _, err := res.PathTo(); !errors.Is(err, core.ErrNoPath) {
		t.Errorf("PathTo: expected ErrNoPath, got %v", err)
	}
	if _, err := res.Distance(); !errors.Is(err, core.ErrNoPath) {
		t.Errorf("Distance: expected ErrNoPath, got %v", err)
	}
	if res.Dist[3] != dijkstra.Infinity || res.Parent[3] != core.NoCity {
		t.Errorf("unreached city: dist=%d parent=%d", res.Dist[3], res.Parent[3])
	}
}

// ------------------------------------------------------------------------
// 4. Hooks and limits
// ------------------------------------------------------------------------

func TestDijkstra_OnSettle(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"},
		"A", "B", 5,
		"B", "C", 3,
		"A", "C", 10,
	)
	var got []int64
	_, err := dijkstra.ShortestPath(g, 0, 2, dijkstra.WithOnSettle(func(_ int, d int64) {
		got = append(got, d)
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(got, []int64{0, 5, 8}) {
		t.Errorf("settle distances = %v, want [0 5 8]", got)
	}
}

func TestDijkstra_OverflowGuard(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"})
	if err := g.AddRoad("A", "B", dijkstra.Infinity-1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddRoad("B", "C", 5); err != nil {
		t.Fatal(err)
	}
	res, err := dijkstra.ShortestPath(g, 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Dist[1] != dijkstra.Infinity-1 {
		t.Errorf("Dist[B] = %d", res.Dist[1])
	}
	if res.Reached() {
		t.Errorf("C should stay unreachable, got %d", res.Dist[2])
	}
}

func TestDijkstra_AfterRemoval(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"},
		"A", "B", 5,
		"B", "C", 3,
		"A", "C", 10,
	)
	if err := g.RemoveCity("B"); err != nil {
		t.Fatal(err)
	}
	res, err := dijkstra.ShortestPath(g, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path, _ := res.PathTo()
	if !slices.Equal(path, []int{0, 1}) {
		t.Errorf("path = %v, want [0 1]", path)
	}
	if d, _ := res.Distance(); d != 10 {
		t.Errorf("distance = %d, want 10", d)
	}
}
