// Package route turns engine output into rendering-ready routes.
//
// Find is the name-keyed entry point used by front ends: it resolves the
// two city names, runs bfs or dijkstra and reconstructs the path. The
// resulting Route carries stop names, per-leg distances (looked up through
// core.Graph.RoadWeight), the total, the leg count and the average leg.
//
//	r, err := route.Find(g, "Lviv", "Odesa", route.Dijkstra)
//	if errors.Is(err, core.ErrNoPath) { ... }
//	fmt.Println(r, r.TotalDistance())
//
// A BFS route minimizes the number of legs, not the distance; its
// TotalDistance is the sum of whatever roads the fewest-hop path uses.
package route
