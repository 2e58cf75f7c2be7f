// Package expansion implements the ExpansionPolicy capability: given a
// current SearchNode, produce its valid successors as (node, edge_cost)
// pairs, own the NodePool that backs those nodes, and convert between a
// map's packed (logical) id space and the padded id space SearchNodes are
// keyed by. search.Search is parameterised over this
// interface rather than over any particular map type, so the same search
// loop drives both the uniform-cost grid and the weighted-terrain grid.
package expansion
