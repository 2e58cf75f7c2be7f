package listener

// Listener receives search lifecycle events. search.Search
// calls these at the corresponding points in its main loop; every method
// has a no-op default via Dummy, so a search that doesn't care about
// tracing pays nothing beyond an interface call.
type Listener interface {
	// Source is called once, when the start node is generated.
	Source(id uint64, x, y uint32)
	// Destination is called once, when the target node is generated.
	Destination(id uint64, x, y uint32)
	// Expand is called each time a node is popped and marked expanded.
	Expand(id uint64, x, y uint32, f, g float64)
	// Generate is called each time a successor is touched (first time or relaxed).
	Generate(id uint64, x, y uint32, f, g float64)
	// Close is called once, after the search loop exits.
	Close()
}

// Dummy is the zero-cost default Listener: every method is a no-op.
type Dummy struct{}

func (Dummy) Source(uint64, uint32, uint32)                     {}
func (Dummy) Destination(uint64, uint32, uint32)                {}
func (Dummy) Expand(uint64, uint32, uint32, float64, float64)   {}
func (Dummy) Generate(uint64, uint32, uint32, float64, float64) {}
func (Dummy) Close()                                            {}
