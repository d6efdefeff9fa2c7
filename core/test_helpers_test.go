// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citymap/core"
)

// Common city names used across core tests.
const (
	CityA = "A"
	CityB = "B"
	CityC = "C"
	CityD = "D"
	CityE = "E"

	CityMissing = "Nowhere"
)

// Common distances used across core tests.
const (
	Dist3  = 3
	Dist5  = 5
	Dist7  = 7
	Dist10 = 10
)

// newTriangle builds A,B,C with A-B=5, B-C=3, A-C=10.
func newTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, name := range []string{CityA, CityB, CityC} {
		_, err := g.AddCity(name)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddRoad(CityA, CityB, Dist5))
	require.NoError(t, g.AddRoad(CityB, CityC, Dist3))
	require.NoError(t, g.AddRoad(CityA, CityC, Dist10))

	return g
}

// requireConsistent checks the structural invariants every public operation
// must preserve: dense indices, name↔index agreement, symmetric adjacency
// and no target outside [0, n).
func requireConsistent(t *testing.T, g *core.Graph) {
	t.Helper()
	names := g.Cities()
	n := len(names)
	require.Equal(t, n, g.CityCount())

	for i, name := range names {
		idx, err := g.IndexOf(name)
		require.NoError(t, err)
		require.Equal(t, i, idx, "index of %q", name)

		roads, err := g.Neighbors(i)
		require.NoError(t, err)
		for _, r := range roads {
			require.GreaterOrEqual(t, r.To, 0)
			require.Less(t, r.To, n, "dangling target from %q", name)
			back, err := g.RoadWeight(r.To, i)
			require.NoError(t, err, "missing mirror of %d-%d", i, r.To)
			require.Equal(t, r.Distance, back)
		}
	}
}
