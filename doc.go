// Package tourkit is a toolkit for the planar Travelling Salesman Problem:
// a family of interchangeable path solvers, the graph machinery behind the
// Christofides construction, and a small benchmark harness.
//
// Packages:
//
//	geometry/      Point, Path, Euclidean distance, path length, distance matrix
//	graph/         Graph and MultiGraph: Prim MST, exact min-cost perfect
//	               matching, reachability, bridges, Fleury Euler tour, shortcut
//	tsp/           Solver interface, sort/sampling/exact/greedy/Christofides
//	               solvers, registry by name
//	bench/         named point sets, TOML/YAML run config, Runner, report
//	metrics/       Prometheus collectors for solver runs
//	render/        DOT export of a path and SVG rendering through Graphviz
//	cmd/tspbench/  command-line benchmark driver
//
// Quick example:
//
//	s, _ := tsp.New(tsp.NearestNeighbor, 100, 100, points, tsp.DefaultOptions())
//	path, err := s.ComputePath(ctx)
//	fmt.Println(geometry.TotalDistance(path))
//
// Paths are open: the distance never includes a return leg unless the caller
// closes the path with geometry.Closed.
package tourkit
