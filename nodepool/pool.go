package nodepool

import "unsafe"

// blockSize is NBS in the spec: the number of SearchNodes allocated together
// the first time any id in their block is touched.
const blockSize = 8

// Pool is a two-level lazy allocator of SearchNode records indexed by
// padded id. Blocks of blockSize nodes are allocated on first touch and
// never freed; each block is its own heap allocation (there is no bump
// allocator carving blocks from a larger slab). Generate initialises a
// block's nodes the first time any id in it is requested.
type Pool struct {
	maxID  uint64
	blocks []*[blockSize]SearchNode // nil until first touch
}

// New returns a Pool sized for ids in [0, maxID).
func New(maxID uint64) *Pool {
	nBlocks := (maxID + blockSize - 1) / blockSize
	return &Pool{
		maxID:  maxID,
		blocks: make([]*[blockSize]SearchNode, nBlocks),
	}
}

// Generate returns the node for id, allocating its containing block (and
// initialising all blockSize nodes in it) on first touch.
func (p *Pool) Generate(id ID) *SearchNode {
	blockIdx := uint64(id) / blockSize
	block := p.blocks[blockIdx]
	if block == nil {
		block = &[blockSize]SearchNode{}
		base := blockIdx * blockSize
		for i := range block {
			block[i].initFresh(ID(base + uint64(i)))
		}
		p.blocks[blockIdx] = block
	}
	return &block[uint64(id)%blockSize]
}

// GetPtr returns the existing node for id, or nil if its block has never
// been allocated.
func (p *Pool) GetPtr(id ID) *SearchNode {
	blockIdx := uint64(id) / blockSize
	block := p.blocks[blockIdx]
	if block == nil {
		return nil
	}
	return &block[uint64(id)%blockSize]
}

// Mem reports the approximate bytes held by allocated blocks.
func (p *Pool) Mem() int {
	nodeSize := int(unsafe.Sizeof(SearchNode{}))
	n := 0
	for _, b := range p.blocks {
		if b != nil {
			n += blockSize * nodeSize
		}
	}
	return n + len(p.blocks)*int(unsafe.Sizeof((*[blockSize]SearchNode)(nil)))
}
