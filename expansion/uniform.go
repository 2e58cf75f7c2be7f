package expansion

import (
	"math"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/nodepool"
)

// Bit masks over gridmap.Neighbours3x3.Pack()'s 24-bit window, reproduced
// from §4.7: a move is passable iff the window, masked, equals the mask —
// i.e. every named cell (plus the always-present self bit) is traversable.
const (
	maskN  = 514
	maskE  = 1536
	maskS  = 131584
	maskW  = 768
	maskNE = 1542
	maskSE = 394752
	maskSW = 197376
	maskNW = 771
)

// UniformCostPolicy is the ExpansionPolicy for a uniform-cost gridmap.Map:
// four cardinal moves at cost 1, and — unless Manhattan is set — four
// diagonal moves at cost sqrt(2), each gated by the no-corner-cutting
// masks above.
type UniformCostPolicy struct {
	m         *gridmap.Map
	pool      *nodepool.Pool
	buf       []Successor
	manhattan bool
}

// NewUniformCostPolicy returns a policy over m. manhattan restricts
// expansion to the four cardinal moves.
func NewUniformCostPolicy(m *gridmap.Map, manhattan bool) *UniformCostPolicy {
	maxID := uint64(m.PaddedWidth()) * uint64(m.PaddedHeight())

	return &UniformCostPolicy{
		m:         m,
		pool:      nodepool.New(maxID),
		manhattan: manhattan,
	}
}

func (p *UniformCostPolicy) ToPadded(packed uint64) nodepool.ID {
	return nodepool.ID(p.m.ToPadded(gridmap.PackedID(packed)))
}

func (p *UniformCostPolicy) ToPacked(padded nodepool.ID) uint64 {
	return uint64(p.m.ToPacked(gridmap.PaddedID(padded)))
}

func (p *UniformCostPolicy) GenerateStart(packed uint64) *nodepool.SearchNode {
	return p.generate(packed)
}

func (p *UniformCostPolicy) GenerateTarget(packed uint64) *nodepool.SearchNode {
	return p.generate(packed)
}

func (p *UniformCostPolicy) generate(packed uint64) *nodepool.SearchNode {
	padded := p.m.ToPadded(gridmap.PackedID(packed))
	if !p.m.GetLabelPadded(padded) {
		return nil
	}

	return p.pool.Generate(nodepool.ID(padded))
}

func (p *UniformCostPolicy) PoolSize() int { return p.pool.Mem() }

func (p *UniformCostPolicy) Lookup(padded nodepool.ID) *nodepool.SearchNode {
	return p.pool.GetPtr(padded)
}

// Expand enumerates current's passable neighbours via one batched 3x3
// window read, checking each move's mask against §4.7's table.
func (p *UniformCostPolicy) Expand(current *nodepool.SearchNode) []Successor {
	p.buf = p.buf[:0]

	id := gridmap.PaddedID(current.ID)
	window := p.m.GetNeighbours3x3(id).Pack()
	pw := uint64(p.m.PaddedWidth())
	base := uint64(id)

	if window&maskN == maskN {
		p.buf = append(p.buf, p.successor(base-pw, 1))
	}
	if window&maskE == maskE {
		p.buf = append(p.buf, p.successor(base+1, 1))
	}
	if window&maskS == maskS {
		p.buf = append(p.buf, p.successor(base+pw, 1))
	}
	if window&maskW == maskW {
		p.buf = append(p.buf, p.successor(base-1, 1))
	}
	if !p.manhattan {
		if window&maskNE == maskNE {
			p.buf = append(p.buf, p.successor(base-pw+1, math.Sqrt2))
		}
		if window&maskSE == maskSE {
			p.buf = append(p.buf, p.successor(base+pw+1, math.Sqrt2))
		}
		if window&maskSW == maskSW {
			p.buf = append(p.buf, p.successor(base+pw-1, math.Sqrt2))
		}
		if window&maskNW == maskNW {
			p.buf = append(p.buf, p.successor(base-pw-1, math.Sqrt2))
		}
	}

	return p.buf
}

func (p *UniformCostPolicy) successor(padded uint64, cost float64) Successor {
	return Successor{Node: p.pool.Generate(nodepool.ID(padded)), Cost: cost}
}
