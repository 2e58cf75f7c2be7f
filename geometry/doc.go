// Package geometry computes distances between geographic coordinates
// (latitude/longitude in degrees), supplementing the grid/weighted-grid
// heuristics in package heuristic with a great-circle lower bound usable
// on cell sets tagged with real-world coordinates. It is grounded on
// warthog's geometry/geography module, trimmed to the distance and
// bearing functions a search heuristic and a CLI summary actually need.
package geometry
