package expansion

import (
	"math"

	"github.com/katalvlaran/gridpath/nodepool"
	"github.com/katalvlaran/gridpath/weightedgrid"
)

// WeightedTerrainPolicy is the ExpansionPolicy for a weightedgrid.Map:
// cardinal moves cost the average of the two endpoint terrain costs,
// diagonal moves cost the average of the enclosing 2x2 square's four
// costs scaled by sqrt(2) (§4.7). A move through any zero-cost
// (impassable) cell is forbidden.
type WeightedTerrainPolicy struct {
	m         *weightedgrid.Map
	costs     *weightedgrid.CostTable
	pool      *nodepool.Pool
	buf       []Successor
	manhattan bool
}

// NewWeightedTerrainPolicy returns a policy over m using costs.
func NewWeightedTerrainPolicy(m *weightedgrid.Map, costs *weightedgrid.CostTable, manhattan bool) *WeightedTerrainPolicy {
	maxID := uint64(m.PaddedWidth()) * uint64(m.PaddedHeight())

	return &WeightedTerrainPolicy{
		m:         m,
		costs:     costs,
		pool:      nodepool.New(maxID),
		manhattan: manhattan,
	}
}

func (p *WeightedTerrainPolicy) ToPadded(packed uint64) nodepool.ID {
	return nodepool.ID(p.m.ToPadded(weightedgrid.PackedID(packed)))
}

func (p *WeightedTerrainPolicy) ToPacked(padded nodepool.ID) uint64 {
	return uint64(p.m.ToPacked(weightedgrid.PaddedID(padded)))
}

func (p *WeightedTerrainPolicy) GenerateStart(packed uint64) *nodepool.SearchNode {
	return p.generate(packed)
}

func (p *WeightedTerrainPolicy) GenerateTarget(packed uint64) *nodepool.SearchNode {
	return p.generate(packed)
}

func (p *WeightedTerrainPolicy) generate(packed uint64) *nodepool.SearchNode {
	padded := p.m.ToPadded(weightedgrid.PackedID(packed))
	// Impassable means no positive cost: 0 (including OutOfBounds) or NaN,
	// the same test Expand applies to neighbours.
	if c := p.cost(padded); !(c > 0) {
		return nil
	}

	return p.pool.Generate(nodepool.ID(padded))
}

func (p *WeightedTerrainPolicy) PoolSize() int { return p.pool.Mem() }

func (p *WeightedTerrainPolicy) Lookup(padded nodepool.ID) *nodepool.SearchNode {
	return p.pool.GetPtr(padded)
}

func (p *WeightedTerrainPolicy) cost(padded weightedgrid.PaddedID) float64 {
	return p.costs.Cost(p.m.GetLabelPadded(padded))
}

// Expand enumerates current's passable neighbours and their terrain-
// weighted edge costs.
func (p *WeightedTerrainPolicy) Expand(current *nodepool.SearchNode) []Successor {
	p.buf = p.buf[:0]

	id := weightedgrid.PaddedID(current.ID)
	pw := weightedgrid.PaddedID(p.m.PaddedWidth())
	a := p.cost(id)

	n, e, s, w := id-pw, id+1, id+pw, id-1
	cn, ce, cs, cw := p.cost(n), p.cost(e), p.cost(s), p.cost(w)

	if cn > 0 {
		p.buf = p.appendSuccessor(n, (a+cn)/2)
	}
	if ce > 0 {
		p.buf = p.appendSuccessor(e, (a+ce)/2)
	}
	if cs > 0 {
		p.buf = p.appendSuccessor(s, (a+cs)/2)
	}
	if cw > 0 {
		p.buf = p.appendSuccessor(w, (a+cw)/2)
	}

	if p.manhattan {
		return p.buf
	}

	ne, se, sw, nw := id-pw+1, id+pw+1, id+pw-1, id-pw-1
	if cn > 0 && ce > 0 {
		if cne := p.cost(ne); cne > 0 {
			p.buf = p.appendSuccessor(ne, (a+cn+ce+cne)*math.Sqrt2/4)
		}
	}
	if cs > 0 && ce > 0 {
		if cse := p.cost(se); cse > 0 {
			p.buf = p.appendSuccessor(se, (a+cs+ce+cse)*math.Sqrt2/4)
		}
	}
	if cs > 0 && cw > 0 {
		if csw := p.cost(sw); csw > 0 {
			p.buf = p.appendSuccessor(sw, (a+cs+cw+csw)*math.Sqrt2/4)
		}
	}
	if cn > 0 && cw > 0 {
		if cnw := p.cost(nw); cnw > 0 {
			p.buf = p.appendSuccessor(nw, (a+cn+cw+cnw)*math.Sqrt2/4)
		}
	}

	return p.buf
}

func (p *WeightedTerrainPolicy) appendSuccessor(padded weightedgrid.PaddedID, cost float64) []Successor {
	return append(p.buf, Successor{Node: p.pool.Generate(nodepool.ID(padded)), Cost: cost})
}
