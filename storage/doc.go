// Package storage persists a core.Graph as plain text and writes route
// reports.
//
// Graph file (FormatVersion 1):
//
//	3
//	A
//	B
//	C
//	0 2 10
//	0 1 5
//	1 2 3
//
// The first line is the city count, followed by one name per line in index
// order, followed by one "u v d" line per road with u < v. Loading always
// starts from an empty graph and tolerates bad records: they are skipped and
// counted in LoadResult.Skipped rather than failing the whole load.
//
// Route report:
//
//	Route Report
//	Method: Dijkstra (Weighted)
//	Path: A -> B -> C
//	Total Distance: 8 km
package storage
