package weightedgrid

import "testing"

// BenchmarkGetNeighbours4 measures a full cardinal terrain fetch around a
// cell on an all-traversable map.
// Complexity: O(1) per call.
func BenchmarkGetNeighbours4(b *testing.B) {
	m := New(256, 256)
	for y := uint32(0); y < 256; y++ {
		for x := uint32(0); x < 256; x++ {
			m.SetLabelPacked(m.XYToPacked(x, y), 1)
		}
	}
	p := m.ToPadded(m.XYToPacked(128, 128))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, _ = m.GetNeighbours4(p)
	}
}

// BenchmarkCostTableCost measures a single terrain-code-to-cost lookup.
func BenchmarkCostTableCost(b *testing.B) {
	ct := NewCostTable()
	ct.Set(1, 3.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ct.Cost(1)
	}
}
