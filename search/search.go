package search

import (
	"math"
	"time"

	"github.com/katalvlaran/gridpath/expansion"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/listener"
	"github.com/katalvlaran/gridpath/nodepool"
	"github.com/katalvlaran/gridpath/pqueue"
)

// Coords maps a padded id to its (x, y) position, used to derive the
// displacement a heuristic.Heuristic scores. Both gridmap.Map and
// weightedgrid.Map's PaddedToXY satisfy this after a trivial adapter.
type Coords func(id nodepool.ID) (x, y float64)

// Search is one reusable UnidirectionalSearch engine: an expansion
// policy, a heuristic, a coordinate lookup, and a priority queue, wired
// together per Parameters. A single Search value is reused across many
// GetPath calls against the same map (§5: "map ⊒ heuristic, expander,
// queue ⊒ search object").
type Search struct {
	policy   expansion.Policy
	h        heuristic.Heuristic
	coords   Coords
	queue    *pqueue.Queue
	listener listener.Listener
	params   Parameters
}

// Option configures a Search at construction.
type Option func(*Search)

// WithListener attaches a trace listener; the default is listener.Dummy.
func WithListener(l listener.Listener) Option {
	return func(s *Search) { s.listener = l }
}

// New returns a Search over policy using h to estimate remaining cost and
// coords to recover a node's (x, y) for both the heuristic and the
// listener.
func New(policy expansion.Policy, h heuristic.Heuristic, coords Coords, params Parameters, opts ...Option) *Search {
	s := &Search{
		policy:   policy,
		h:        h,
		coords:   coords,
		queue:    pqueue.New(64),
		listener: listener.Dummy{},
		params:   params,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GetPath runs one search from start to target (both packed ids) under
// problem's search id, returning a Solution. Per §7 the search core never
// errors: an impassable start/target or an exhausted OPEN without
// reaching the target both surface as Solution.SumOfEdgeCosts = +Inf with
// no incumbent, not an error return.
func (s *Search) GetPath(problem ProblemInstance) *Solution {
	begin := time.Now()
	sol := newSolution()
	s.queue.Clear()

	startNode := s.policy.GenerateStart(problem.Start)
	targetNode := s.policy.GenerateTarget(problem.Target)
	if startNode == nil || targetNode == nil {
		sol.Elapsed = time.Since(begin)
		return sol
	}

	targetPadded := targetNode.ID
	tx, ty := s.coords(targetPadded)

	sx, sy := s.coords(startNode.ID)
	s.listener.Source(uint64(startNode.ID), uint32(sx), uint32(sy))
	s.listener.Destination(uint64(targetNode.ID), uint32(tx), uint32(ty))

	s.initNode(startNode, problem, nodepool.NoID, 0, targetPadded, tx, ty, sol)
	if startNode.F <= sol.SumOfEdgeCosts {
		s.queue.PushNode(startNode)
	}

	for {
		if s.admissible(sol) {
			break
		}
		if s.queue.Size() == 0 {
			break
		}
		if !s.feasible(sol, time.Since(begin)) {
			break
		}

		current := s.queue.PopMin()
		current.Expanded = true
		sol.Expanded++

		cx, cy := s.coords(current.ID)
		s.listener.Expand(uint64(current.ID), uint32(cx), uint32(cy), current.F, current.G)

		for _, succ := range s.policy.Expand(current) {
			gNew := current.G + succ.Cost
			n := succ.Node
			sol.Generated++

			if n.SearchID != problem.ID {
				s.initNode(n, problem, current.ID, gNew, targetPadded, tx, ty, sol)
				if n.F <= sol.SumOfEdgeCosts {
					s.queue.PushNode(n)
				}

				continue
			}

			if gNew < n.G && gNew+(n.F-n.G) < sol.SumOfEdgeCosts {
				s.relax(n, current.ID, gNew, targetPadded, tx, ty, sol)
			}
		}
	}

	sol.NodesSurplus = uint64(s.queue.Size())
	sol.HeapOps = s.queue.HeapOps()
	sol.Elapsed = time.Since(begin)
	s.listener.Close()

	return sol
}

// initNode realises §4.8's node-initialisation formula for a node first
// touched by the current search.
func (s *Search) initNode(n *nodepool.SearchNode, problem ProblemInstance, parent nodepool.ID, gNew float64, targetPadded nodepool.ID, tx, ty float64, sol *Solution) {
	x, y := s.coords(n.ID)
	dx, dy := tx-x, ty-y

	hv := heuristic.Value{From: uint64(n.ID), To: uint64(targetPadded)}
	heuristic.Fill(s.h, &hv, dx, dy)

	n.SearchID = problem.ID
	n.Parent = parent
	n.G = gNew
	n.F = gNew + s.params.weight()*hv.LB
	if hv.Feasible {
		n.UB = gNew + hv.UB
	} else {
		n.UB = hv.UB
	}
	n.Expanded = false

	s.listener.Generate(uint64(n.ID), uint32(x), uint32(y), n.F, n.G)

	isTarget := n.ID == targetPadded
	if (isTarget || hv.Feasible) && gNew < sol.SumOfEdgeCosts {
		sol.Incumbent = n
		sol.SumOfEdgeCosts = gNew
	}
}

// relax lowers an already-touched node's g (and shifts f/ub by the same
// delta), reparents it to current, and either decrease-keys it in OPEN,
// re-pushes it (ReopenOn), or drops it (ReopenOff) per §4.8 step 4.
func (s *Search) relax(n *nodepool.SearchNode, parent nodepool.ID, gNew float64, targetPadded nodepool.ID, tx, ty float64, sol *Solution) {
	delta := gNew - n.G
	n.G = gNew
	n.F += delta
	n.UB += delta
	n.Parent = parent

	x, y := s.coords(n.ID)
	s.listener.Generate(uint64(n.ID), uint32(x), uint32(y), n.F, n.G)

	isTarget := n.ID == targetPadded
	feasible := n.UB < math.Inf(1)
	if (isTarget || feasible) && gNew < sol.SumOfEdgeCosts {
		sol.Incumbent = n
		sol.SumOfEdgeCosts = gNew
	}

	switch {
	case s.queue.Contains(n):
		s.queue.DecreaseKey(n)
	case s.params.Reopen == ReopenOn:
		s.queue.PushNode(n)
		sol.Reopened++
	default:
		// Dropped: dominated by the closed-list invariant under a
		// consistent heuristic (§4.8).
	}
}

// admissible implements §4.8 step 1: does the incumbent already satisfy
// the configured admissibility criterion relative to the current OPEN
// lower bound?
func (s *Search) admissible(sol *Solution) bool {
	if !sol.Found() {
		return false
	}
	if s.params.Admissibility == Any {
		return true
	}
	if s.queue.Size() == 0 {
		return true
	}
	lb := s.queue.Peek().F
	switch s.params.Admissibility {
	case WAdmissible:
		return sol.SumOfEdgeCosts <= s.params.weight()*lb
	case EpsilonAdmissible:
		return sol.SumOfEdgeCosts <= s.params.Epsilon+lb
	default:
		return false
	}
}

// feasible implements §4.8 step 2's until_cutoff branch; until_exhaustion
// never fails here (OPEN emptiness is checked separately by the caller).
func (s *Search) feasible(sol *Solution, elapsed time.Duration) bool {
	if s.params.Feasibility == UntilExhaustion {
		return true
	}
	if s.params.CostCutoff > 0 && s.queue.Peek().F > s.params.CostCutoff {
		return false
	}
	if s.params.ExpansionCutoff > 0 && sol.Expanded >= s.params.ExpansionCutoff {
		return false
	}
	if s.params.TimeCutoff > 0 && elapsed >= s.params.TimeCutoff {
		return false
	}

	return true
}
