package search

import (
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/nodepool"
)

// Path reconstructs the packed-id path to sol.Incumbent, following parent
// pointers back to the start and reversing, per §4.8. It returns nil if
// the search found no incumbent. If the incumbent is not the target, the
// heuristic that supplied the last upper bound is asked for the
// remainder (heuristic.Fill with ub_path); none of the three grid
// heuristics in package heuristic ever vouches for a non-trivial
// remainder (see heuristic.Fill's doc comment), so a cutoff-terminated
// search's path simply ends at the incumbent rather than the true target
// — the intended, documented behaviour of a partial result, not a bug.
func (s *Search) Path(sol *Solution, problem ProblemInstance) []uint64 {
	if !sol.Found() {
		return nil
	}

	var reversed []nodepool.ID
	for node := sol.Incumbent; node != nil; {
		reversed = append(reversed, node.ID)
		if node.Parent == nodepool.NoID {
			break
		}
		node = s.policy.Lookup(node.Parent)
	}

	path := make([]uint64, len(reversed))
	for i, id := range reversed {
		path[len(reversed)-1-i] = s.policy.ToPacked(id)
	}

	targetPadded := s.policy.ToPadded(problem.Target)
	if sol.Incumbent.ID != targetPadded {
		tx, ty := s.coords(targetPadded)
		x, y := s.coords(sol.Incumbent.ID)
		hv := heuristic.Value{From: uint64(sol.Incumbent.ID), To: uint64(targetPadded)}
		heuristic.Fill(s.h, &hv, tx-x, ty-y)
		if hv.Feasible {
			for _, id := range hv.UBPath {
				path = append(path, s.policy.ToPacked(nodepool.ID(id)))
			}
		}
	}

	return path
}
