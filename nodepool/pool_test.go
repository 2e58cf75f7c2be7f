package nodepool

import (
	"math"
	"testing"
)

func TestGenerateInitialisesBlock(t *testing.T) {
	p := New(100)
	n := p.Generate(5)
	if n.ID != 5 {
		t.Fatalf("n.ID = %d; want 5", n.ID)
	}
	if n.Parent != NoID {
		t.Fatalf("n.Parent = %d; want NoID", n.Parent)
	}
	if !math.IsInf(n.G, 1) || !math.IsInf(n.F, 1) || !math.IsInf(n.UB, 1) {
		t.Fatalf("fresh node g/f/ub not all +Inf: %v %v %v", n.G, n.F, n.UB)
	}
	if n.Expanded {
		t.Fatal("fresh node should not be expanded")
	}
	if n.SearchID != freshSearchID {
		t.Fatalf("fresh node search id = %d; want freshSearchID", n.SearchID)
	}
	if n.HeapIndex() != -1 {
		t.Fatalf("fresh node heap index = %d; want -1", n.HeapIndex())
	}
}

func TestGetPtrNilUntouched(t *testing.T) {
	p := New(100)
	if p.GetPtr(42) != nil {
		t.Fatal("GetPtr on untouched id should be nil")
	}
	p.Generate(42)
	if p.GetPtr(42) == nil {
		t.Fatal("GetPtr after Generate should not be nil")
	}
}

// TestGenerateIdempotent covers property 6: generate(id) twice returns the
// same node pointer and state, independent of whether it was re-requested.
func TestGenerateIdempotent(t *testing.T) {
	p := New(100)
	a := p.Generate(5)
	a.G = 3.5
	b := p.Generate(5)
	if b != a {
		t.Fatal("Generate did not return the same pointer for an already-allocated id")
	}
	if b.G != 3.5 {
		t.Fatal("second Generate call re-initialised an already-touched node")
	}
}

func TestBlockSiblingsShareAllocation(t *testing.T) {
	p := New(100)
	p.Generate(8) // first id of block 1 (ids 8..15)
	for id := ID(8); id < 16; id++ {
		if p.GetPtr(id) == nil {
			t.Fatalf("sibling id %d in same block was not allocated", id)
		}
	}
	if p.GetPtr(16) != nil {
		t.Fatal("id in the next block should not be allocated yet")
	}
}

func TestMemGrowsWithAllocatedBlocks(t *testing.T) {
	p := New(1000)
	before := p.Mem()
	p.Generate(0)
	after := p.Mem()
	if after <= before {
		t.Fatalf("Mem did not grow after Generate: before=%d after=%d", before, after)
	}
}
