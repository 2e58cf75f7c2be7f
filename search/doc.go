// Package search implements UnidirectionalSearch (§4.8): a best-first
// search loop parameterised over an admissibility criterion, a
// feasibility (cutoff) criterion, and a reopen policy, driven by an
// expansion.Policy and a heuristic.Heuristic. The same loop realises A*,
// weighted A*, and Dijkstra depending on the heuristic and Parameters
// supplied — nothing here is specific to uniform-cost or weighted-terrain
// grids, that distinction lives entirely in the expansion.Policy.
package search
