package heuristic

import "math"

// Heuristic is an admissible, consistent lower-bound distance estimator
// over a displacement of dx columns and dy rows. Implementations must
// never overestimate the true shortest-path cost between two cells that
// differ by (dx, dy).
type Heuristic interface {
	// H returns the lower-bound cost estimate for a displacement of
	// dx columns and dy rows.
	H(dx, dy float64) float64
}

// IDHeuristic is an admissible lower-bound estimator keyed by cell id
// rather than displacement, for heuristics whose cost model is not a
// simple function of (dx, dy) — e.g. geometry.HaversineHeuristic, where
// two ids can carry arbitrary (non-grid-aligned) coordinates.
type IDHeuristic interface {
	H(from, to uint64) float64
}

// Octile estimates cost on an 8-connected uniform-cost grid as
// hscale*(sqrt(2)*min(|dx|,|dy|) + abs(|dx|-|dy|)). HScale defaults to 1
// for uniform-cost grids; callers using a weighted-terrain grid set it to
// the map's CostTable.LowestCost so the estimate stays admissible (§4.6).
type Octile struct {
	HScale float64
}

// NewOctile returns an Octile heuristic with HScale 1, the value for
// uniform-cost grids.
func NewOctile() Octile { return Octile{HScale: 1} }

func (o Octile) H(dx, dy float64) float64 {
	scale := o.HScale
	if scale == 0 {
		scale = 1
	}
	ax, ay := math.Abs(dx), math.Abs(dy)
	diag := math.Min(ax, ay)
	straight := math.Abs(ax - ay)

	return scale * (math.Sqrt2*diag + straight)
}

// Manhattan estimates cost on a 4-connected grid as |dx| + |dy|.
type Manhattan struct{}

func (Manhattan) H(dx, dy float64) float64 {
	return math.Abs(dx) + math.Abs(dy)
}

// Zero is the null heuristic; UnidirectionalSearch with Zero degenerates
// to Dijkstra's algorithm.
type Zero struct{}

func (Zero) H(float64, float64) float64 { return 0 }

// Value is the bulk heuristic_value record §4.6 describes: a lower bound
// (LB), an optional tighter upper bound the heuristic itself can vouch
// for (UB, meaningful only when Feasible), and — when Feasible — the
// concrete path segment (UBPath) a caller may append to its own partial
// path during reconstruction (§4.8, "the heuristic that supplied the ub
// path is asked to append the remainder").
//
// From and To are left for the caller to stamp (search.ProblemInstance
// knows the id space; this package only computes distances), so Fill
// only ever touches LB/UB/Feasible/UBPath.
type Value struct {
	From, To uint64
	LB       float64
	UB       float64
	Feasible bool
	UBPath   []uint64
}

// Fill computes hv.LB via h and decides Feasible/UB/UBPath. None of the
// three grid heuristics above has obstacle information, so none can
// vouch for a real upper-bound path except the trivial case dx==dy==0
// (from and to are the same cell): there Feasible is true, UB is 0, and
// UBPath is the single-node path {hv.To}. In every other case Feasible
// is false and UB is +Inf, meaning "this heuristic offers no usable
// upper bound here" — exactly the escape hatch §4.8's node-init formula
// relies on (`ub = (g_new if hv.feasible else 0) + hv.ub`).
func Fill(h Heuristic, hv *Value, dx, dy float64) {
	hv.LB = h.H(dx, dy)
	if dx == 0 && dy == 0 {
		hv.Feasible = true
		hv.UB = 0
		hv.UBPath = []uint64{hv.To}

		return
	}
	hv.Feasible = false
	hv.UB = math.Inf(1)
	hv.UBPath = nil
}
