// Package bench runs tsp solvers over named point sets and reports the
// results.
//
// The named sets reproduce a fixed benchmark suite: five uniform integer
// sets of growing size, points on a circle and two disjoint rectangular
// "cities". Every set is generated from a seed, so a (name, seed) pair always
// yields the same points.
//
// A Runner times one solver on one set, checks that the result is a
// permutation of the input, logs the outcome, records Prometheus metrics and
// optionally renders the path to SVG. Config selects sets, solvers and
// solver options and is read from TOML or YAML.
package bench
