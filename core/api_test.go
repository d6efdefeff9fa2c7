// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citymap/core"
)

func TestStats_Empty(t *testing.T) {
	s := core.NewGraph().Stats()
	assert.Equal(t, core.Stats{MostConnected: core.NoCity}, s)
}

func TestStats_Triangle(t *testing.T) {
	g := newTriangle(t)
	s := g.Stats()

	assert.Equal(t, 3, s.Cities)
	assert.Equal(t, 3, s.Roads)
	// (5+3+10)*2 / 6 directed entries
	assert.InDelta(t, 6.0, s.AverageDistance, 1e-9)
	// every city has degree 2; lowest index wins the tie
	assert.Equal(t, 0, s.MostConnected)
	assert.Equal(t, CityA, s.MostConnectedName)
}

func TestStats_MostConnectedAndIsolated(t *testing.T) {
	g := core.NewGraph()
	for _, name := range []string{CityA, CityB, CityC, CityD} {
		_, err := g.AddCity(name)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddRoad(CityC, CityA, 4))
	require.NoError(t, g.AddRoad(CityC, CityB, 8))

	s := g.Stats()
	assert.Equal(t, 4, s.Cities)
	assert.Equal(t, 2, s.Roads)
	assert.InDelta(t, 6.0, s.AverageDistance, 1e-9)
	assert.Equal(t, 2, s.MostConnected)
	assert.Equal(t, CityC, s.MostConnectedName)
}

func TestStats_NoRoads(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddCity(CityA)
	_, _ = g.AddCity(CityB)

	s := g.Stats()
	assert.Zero(t, s.Roads)
	assert.Zero(t, s.AverageDistance)
	assert.Equal(t, 0, s.MostConnected)
}

func TestAdjacencyMatrix(t *testing.T) {
	g := newTriangle(t)
	_, _ = g.AddCity(CityD)

	assert.Equal(t, [][]int64{
		{0, 5, 10, 0},
		{5, 0, 3, 0},
		{10, 3, 0, 0},
		{0, 0, 0, 0},
	}, g.AdjacencyMatrix())
	assert.Empty(t, core.NewGraph().AdjacencyMatrix())
}
