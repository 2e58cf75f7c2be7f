// Package gridpath (root) is a grid-based pathfinding engine for the
// Grid-Based Path Planning Competition (GPPC) benchmark format.
//
// What is gridpath?
//
//	A best-first-search engine over uniform-cost and weighted-terrain
//	grids, built around:
//
//	  • BitTable / GridMap  — bit-packed, padded grids with O(1)
//	    boundary-safe neighbourhood reads
//	  • NodePool            — lazy, block-allocated search-node storage
//	    re-initialised per search via a monotonically increasing id
//	  • PriorityQueue       — indexed binary min-heap with true
//	    decrease-key
//	  • UnidirectionalSearch — one best-first loop, parameterised on
//	    admissibility, feasibility, and reopen policy, driving A*,
//	    Dijkstra, and weighted A* alike
//
// Why choose gridpath?
//
//   - Single-threaded core     — no locks on the hot path
//   - Read-only maps           — load once, search many times
//   - Pluggable heuristics     — octile, manhattan, zero (plus a
//     standalone id-keyed geography estimator the search does not take)
//   - Pure Go search core      — the driver is where the third-party
//     stack (kong, go-kit/log, pkg/errors) lives, not the inner loop
//
// Under the hood, the core is organized as:
//
//	bittable/, gridmap/, weightedgrid/ — grid storage and padding
//	nodepool/, pqueue/                 — search-node lifetime and ordering
//	heuristic/, expansion/             — admissible bounds and successors
//	search/                            — the unidirectional best-first loop
//	scenario/, listener/, geometry/    — loaders, tracing, geo heuristic
//	cmd/gridpath/                      — the GPPC scenario-runner CLI
//
// Dive into DESIGN.md for the grounding ledger and SPEC_FULL.md for the
// full requirements this module implements.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
