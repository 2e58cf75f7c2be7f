// Package heuristic implements the admissible lower-bound distance
// functions §4.6 lists (octile, manhattan, zero) plus the bulk
// heuristic_value record search.Search fills on every node touch. It is
// deliberately map-agnostic: callers pass displacements (dx, dy) rather
// than ids, so the same Heuristic works against gridmap and weightedgrid.
// Estimators that need ids instead (geometry.HaversineHeuristic) implement
// the separate IDHeuristic interface.
package heuristic
