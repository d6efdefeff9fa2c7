// Package citymap is a small road-map engine: named cities, two-way roads
// with integer distances, and two route finders.
//
// What is in the box?
//
//	core/        Graph store: cities with dense indices, symmetric adjacency,
//	             deletion with renumbering, statistics, adjacency matrix
//	bfs/         Fewest-roads route by index
//	dijkstra/    Shortest-distance route by index (O(V²) linear scan)
//	dfs/         Reachability and connected components
//	route/       Name-keyed Find facade, legs, totals, averages
//	storage/     Plain-text graph file and route report
//	config/      YAML + .env + CITYMAP_* environment configuration
//	cmd/citymap  Command-line front end
//
// Quick ASCII example:
//
//	    A──5──B
//	     \    │
//	     10   3
//	       \  │
//	         C
//
// BFS from A to C returns A → C (one road, 10 km); Dijkstra returns
// A → B → C (two roads, 8 km).
//
//	go install github.com/katalvlaran/citymap/cmd/citymap@latest
package citymap
