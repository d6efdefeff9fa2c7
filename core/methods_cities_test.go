// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/citymap/core"
)

// CitySuite covers the city lifecycle and index renumbering.
type CitySuite struct {
	suite.Suite
	g *core.Graph
}

func (s *CitySuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *CitySuite) TestAddCityAssignsDenseIndices() {
	require := require.New(s.T())
	for i, name := range []string{CityA, CityB, CityC} {
		idx, err := s.g.AddCity(name)
		require.NoError(err)
		require.Equal(i, idx)
	}
	for i, name := range []string{CityA, CityB, CityC} {
		idx, err := s.g.IndexOf(name)
		require.NoError(err)
		require.Equal(i, idx, "lookup of %q", name)
	}
	require.Equal([]string{CityA, CityB, CityC}, s.g.Cities())
}

func (s *CitySuite) TestAddCityRejectsDuplicate() {
	require := require.New(s.T())
	_, err := s.g.AddCity(CityA)
	require.NoError(err)

	_, err = s.g.AddCity(CityA)
	require.ErrorIs(err, core.ErrCityExists)
	require.Equal(1, s.g.CityCount())

	// names are case-sensitive
	_, err = s.g.AddCity(strings.ToLower(CityA))
	require.NoError(err)
	require.Equal(2, s.g.CityCount())
}

func (s *CitySuite) TestAddCityRejectsInvalidNames() {
	require := require.New(s.T())
	_, err := s.g.AddCity("")
	require.ErrorIs(err, core.ErrInvalidName)

	_, err = s.g.AddCity(strings.Repeat("x", core.MaxNameLen+1))
	require.ErrorIs(err, core.ErrInvalidName)

	_, err = s.g.AddCity(strings.Repeat("x", core.MaxNameLen))
	require.NoError(err)
}

func (s *CitySuite) TestAddCityCapacity() {
	require := require.New(s.T())
	g := core.NewGraph(core.WithCapacity(2))
	_, err := g.AddCity(CityA)
	require.NoError(err)
	_, err = g.AddCity(CityB)
	require.NoError(err)

	_, err = g.AddCity(CityC)
	require.ErrorIs(err, core.ErrCapacityExceeded)
	require.Equal([]string{CityA, CityB}, g.Cities())
	require.False(g.HasCity(CityC))
}

func (s *CitySuite) TestDefaultCapacity() {
	require := require.New(s.T())
	require.Equal(core.DefaultCapacity, s.g.Capacity())
	for i := 0; i < core.DefaultCapacity; i++ {
		_, err := s.g.AddCity(fmt.Sprintf("c%d", i))
		require.NoError(err)
	}
	_, err := s.g.AddCity("overflow")
	require.ErrorIs(err, core.ErrCapacityExceeded)
}

func (s *CitySuite) TestRemoveCityMissing() {
	err := s.g.RemoveCity(CityMissing)
	require.ErrorIs(s.T(), err, core.ErrCityNotFound)
}

func (s *CitySuite) TestRemoveMiddleCityKeepsOppositeRoad() {
	require := require.New(s.T())
	g := newTriangle(s.T())

	require.NoError(g.RemoveCity(CityB))

	require.Equal(2, g.CityCount())
	require.Equal([]string{CityA, CityC}, g.Cities())
	idxA, _ := g.IndexOf(CityA)
	idxC, _ := g.IndexOf(CityC)
	require.Equal(0, idxA)
	require.Equal(1, idxC)

	d, err := g.Distance(CityA, CityC)
	require.NoError(err)
	require.EqualValues(Dist10, d)
	require.Equal(1, g.RoadCount())
	requireConsistent(s.T(), g)
}

func (s *CitySuite) TestRemoveCityRenumbersTargets() {
	require := require.New(s.T())
	for _, name := range []string{CityA, CityB, CityC, CityD, CityE} {
		_, err := s.g.AddCity(name)
		require.NoError(err)
	}
	require.NoError(s.g.AddRoad(CityA, CityE, 1))
	require.NoError(s.g.AddRoad(CityC, CityD, 2))
	require.NoError(s.g.AddRoad(CityD, CityE, 3))
	require.NoError(s.g.AddRoad(CityB, CityD, 4))

	require.NoError(s.g.RemoveCity(CityB))

	// every surviving road still joins the same names with the same distance
	for _, tc := range []struct {
		a, b string
		d    int64
	}{
		{CityA, CityE, 1},
		{CityC, CityD, 2},
		{CityD, CityE, 3},
	} {
		d, err := s.g.Distance(tc.a, tc.b)
		require.NoError(err, "%s-%s", tc.a, tc.b)
		require.Equal(tc.d, d)
	}
	require.False(s.g.HasRoad(CityA, CityC))
	require.Equal(3, s.g.RoadCount())
	requireConsistent(s.T(), s.g)

	// removing the first and last slots keeps the invariants as well
	require.NoError(s.g.RemoveCity(CityA))
	require.NoError(s.g.RemoveCity(CityE))
	require.Equal([]string{CityC, CityD}, s.g.Cities())
	require.Equal(1, s.g.RoadCount())
	requireConsistent(s.T(), s.g)
}

func (s *CitySuite) TestRemovedNameCanBeAddedAgain() {
	require := require.New(s.T())
	g := newTriangle(s.T())
	require.NoError(g.RemoveCity(CityA))

	idx, err := g.AddCity(CityA)
	require.NoError(err)
	require.Equal(2, idx)
	roads, err := g.Neighbors(idx)
	require.NoError(err)
	require.Empty(roads, "re-added city must not inherit roads")
}

func (s *CitySuite) TestNameAndIndexBounds() {
	require := require.New(s.T())
	g := newTriangle(s.T())

	name, err := g.Name(1)
	require.NoError(err)
	require.Equal(CityB, name)

	_, err = g.Name(3)
	require.ErrorIs(err, core.ErrIndexOutOfRange)
	_, err = g.Name(-1)
	require.ErrorIs(err, core.ErrIndexOutOfRange)
	_, err = g.IndexOf(CityMissing)
	require.ErrorIs(err, core.ErrCityNotFound)
}

func (s *CitySuite) TestSuggest() {
	require := require.New(s.T())
	for _, name := range []string{"Berlin", "Bern", "Boston", "bergen", "Oslo"} {
		_, err := s.g.AddCity(name)
		require.NoError(err)
	}
	require.Equal([]string{"Berlin", "Bern", "bergen"}, s.g.Suggest("ber"))
	require.Equal([]string{"Boston"}, s.g.Suggest("BOS"))
	require.Empty(s.g.Suggest("Z"))
	require.Len(s.g.Suggest(""), 5)
}

func (s *CitySuite) TestClear() {
	require := require.New(s.T())
	g := newTriangle(s.T())
	g.Clear()

	require.Zero(g.CityCount())
	require.Zero(g.RoadCount())
	require.False(g.HasCity(CityA))

	idx, err := g.AddCity(CityB)
	require.NoError(err)
	require.Equal(0, idx)
}

func TestCitySuite(t *testing.T) {
	suite.Run(t, new(CitySuite))
}
