package gridmap

import "github.com/katalvlaran/gridpath/bittable"

// Map is a bit-packed, padded uniform-cost grid. Bit 1 means traversable,
// bit 0 means blocked. Every bit outside the real W×H cells — the
// PaddingRows leading/trailing rows and the right-pad columns beyond W —
// is guaranteed zero, so any neighbour fetch that strays outside the real
// map reads back a blocked label without a range check.
type Map struct {
	tbl *bittable.Table

	headerWidth  uint32
	headerHeight uint32
	paddedWidth  uint32 // smallest multiple of 64 >= headerWidth+1
	paddedHeight uint32 // headerHeight + 2*PaddingRows

	numTraversable uint32
}

// New allocates an empty (all-blocked) Map of the given logical dimensions.
func New(width, height uint32) *Map {
	if width == 0 || height == 0 {
		panic(ErrZeroDimension)
	}
	pw := paddedRowWidth(width)
	ph := height + 2*PaddingRows

	return &Map{
		tbl:          bittable.New(pw, ph, 1),
		headerWidth:  width,
		headerHeight: height,
		paddedWidth:  pw,
		paddedHeight: ph,
	}
}

// paddedRowWidth returns the smallest multiple of 64 that is >= width+1,
// guaranteeing at least one zero-padding column at the end of every row.
func paddedRowWidth(width uint32) uint32 {
	need := width + 1
	return ((need + 63) / 64) * 64
}

// Width returns the logical (unpadded) map width W.
func (m *Map) Width() uint32 { return m.headerWidth }

// Height returns the logical (unpadded) map height H.
func (m *Map) Height() uint32 { return m.headerHeight }

// PaddedWidth returns the stored row width W'.
func (m *Map) PaddedWidth() uint32 { return m.paddedWidth }

// PaddedHeight returns the stored row count H'.
func (m *Map) PaddedHeight() uint32 { return m.paddedHeight }

// NumTraversable returns the count of traversable cells, cached at load/set time.
func (m *Map) NumTraversable() uint32 { return m.numTraversable }

// Mem reports the approximate bytes held by the map's backing store.
func (m *Map) Mem() int { return len(m.tbl.Data()) }

// ToPadded converts a packed id to its padded id.
func (m *Map) ToPadded(p PackedID) PaddedID {
	w := uint64(m.headerWidth)
	pw := uint64(m.paddedWidth)
	packed := uint64(p)
	row := packed / w
	return PaddedID(packed + PaddingRows*pw + row*(pw-w))
}

// ToPacked converts a padded id to its packed id.
func (m *Map) ToPacked(q PaddedID) PackedID {
	w := uint64(m.headerWidth)
	pw := uint64(m.paddedWidth)
	padded := uint64(q)
	row := padded / pw
	return PackedID(padded - row*(pw-w) - PaddingRows*w)
}

// XYToPadded maps padded coordinates to a padded id.
func (m *Map) XYToPadded(x, y uint32) PaddedID {
	return PaddedID(uint64(y)*uint64(m.paddedWidth) + uint64(x))
}

// PaddedToXY inverts XYToPadded.
func (m *Map) PaddedToXY(id PaddedID) (x, y uint32) {
	pw := uint64(m.paddedWidth)
	return uint32(uint64(id) % pw), uint32(uint64(id) / pw)
}

// XYToPacked maps logical (unpadded) coordinates to a packed id.
func (m *Map) XYToPacked(x, y uint32) PackedID {
	return PackedID(uint64(y)*uint64(m.headerWidth) + uint64(x))
}

// PackedToXY inverts XYToPacked.
func (m *Map) PackedToXY(id PackedID) (x, y uint32) {
	w := uint64(m.headerWidth)
	return uint32(uint64(id) % w), uint32(uint64(id) / w)
}

// GetLabelPadded reports whether the padded cell id is traversable. Any id
// outside the stored table's bounds (which never happens for a well-formed
// map — the whole padded rectangle is addressable) reads back false.
func (m *Map) GetLabelPadded(id PaddedID) bool {
	if uint64(id) >= m.tbl.Size() {
		return false
	}
	return m.tbl.Get(uint64(id)) != 0
}

// GetLabelXY reports traversability at padded coordinates (x,y).
func (m *Map) GetLabelXY(x, y uint32) bool {
	return m.GetLabelPadded(m.XYToPadded(x, y))
}

// SetLabelPadded sets the traversability of a padded cell and maintains the
// cached traversable-cell count.
func (m *Map) SetLabelPadded(id PaddedID, traversable bool) {
	was := m.GetLabelPadded(id)
	var v uint64
	if traversable {
		v = 1
	}
	m.tbl.Set(uint64(id), v)
	switch {
	case traversable && !was:
		m.numTraversable++
	case !traversable && was:
		m.numTraversable--
	}
}

// SetLabelPacked sets the traversability of a packed (logical) cell.
func (m *Map) SetLabelPacked(id PackedID, traversable bool) {
	m.SetLabelPadded(m.ToPadded(id), traversable)
}

// GetLabelPacked reports traversability at a packed (logical) cell.
func (m *Map) GetLabelPacked(id PackedID) bool {
	return m.GetLabelPadded(m.ToPadded(id))
}

// Neighbours3x3 holds the three-row, three-bit-per-row window around a
// cell: bit 0 is the west/left-column neighbour of that row, bit 1 the
// centre column, bit 2 the east/right-column neighbour. Above carries
// {NW,N,NE}, Row carries {W,p,E}, Below carries {SW,S,SE}.
type Neighbours3x3 struct {
	Above byte
	Row   byte
	Below byte
}

// Bit positions within the packed 24-bit neighbourhood word returned by Pack.
const (
	bitNW = 0
	bitN  = 1
	bitNE = 2
	bitW  = 8
	bitP  = 9
	bitE  = 10
	bitSW = 16
	bitS  = 17
	bitSE = 18
)

// Pack concatenates the three rows into a single 24-bit word:
// below<<16 | row<<8 | above. Expansion policies test this word against
// the documented cardinal/diagonal bit masks.
func (n Neighbours3x3) Pack() uint32 {
	return uint32(n.Below)<<16 | uint32(n.Row)<<8 | uint32(n.Above)
}

// GetNeighbours3x3 returns the 3x3 bit-window centred on the padded cell p,
// computed via one unaligned span read per row (three total). p must be a
// real cell (0 <= x < W, 0 <= y < H); the padding scheme guarantees the
// reads never stray into undefined memory because every row carries at
// least one trailing zero-padding column (paddedRowWidth > headerWidth).
func (m *Map) GetNeighbours3x3(p PaddedID) Neighbours3x3 {
	pw := uint64(m.paddedWidth)
	id := uint64(p)

	above, _ := m.tbl.SpanRead(id-pw-1, 3)
	row, _ := m.tbl.SpanRead(id-1, 3)
	below, _ := m.tbl.SpanRead(id+pw-1, 3)

	return Neighbours3x3{Above: byte(above), Row: byte(row), Below: byte(below)}
}

// GetNeighbours32Bit returns 32-bit horizontal strips at the row above,
// the row itself, and the row below, each centred so that p occupies bit 0.
// Used by jump-style algorithms (not exercised by the uniform-cost or
// weighted-terrain expansion policies in this engine).
func (m *Map) GetNeighbours32Bit(p PaddedID) (above, row, below uint32) {
	pw := uint64(m.paddedWidth)
	id := uint64(p)

	a, _ := m.tbl.SpanRead(id-pw, 32)
	r, _ := m.tbl.SpanRead(id, 32)
	b, _ := m.tbl.SpanRead(id+pw, 32)

	return uint32(a), uint32(r), uint32(b)
}

// GetNeighboursUpper32Bit is like GetNeighbours32Bit but p occupies bit 31
// instead of bit 0 — useful when jumping toward smaller memory addresses.
func (m *Map) GetNeighboursUpper32Bit(p PaddedID) (above, row, below uint32) {
	pw := uint64(m.paddedWidth)
	id := uint64(p)
	start := id - 31

	a, _ := m.tbl.SpanRead(start-pw, 32)
	r, _ := m.tbl.SpanRead(start, 32)
	b, _ := m.tbl.SpanRead(start+pw, 32)

	return uint32(a), uint32(r), uint32(b)
}

// GetNeighbours64Bit returns 64-bit strips aligned to the containing dbword
// of p (i.e. truncated to the nearest 64-bit boundary), for the row above,
// the row itself, and the row below.
func (m *Map) GetNeighbours64Bit(p PaddedID) (above, row, below uint64) {
	pw := uint64(m.paddedWidth)
	aligned := (uint64(p) / 64) * 64

	a, _ := m.tbl.SpanRead(aligned-pw, 57)
	ah, _ := m.tbl.SpanRead(aligned-pw+57, 7)
	r, _ := m.tbl.SpanRead(aligned, 57)
	rh, _ := m.tbl.SpanRead(aligned+57, 7)
	b, _ := m.tbl.SpanRead(aligned+pw, 57)
	bh, _ := m.tbl.SpanRead(aligned+pw+57, 7)

	above = a | (ah << 57)
	row = r | (rh << 57)
	below = b | (bh << 57)

	return above, row, below
}

// Invert flips every stored bit (traversable becomes blocked and vice
// versa), including padding cells — callers that rely on padding staying
// zero must not call Invert on a map still in use by a search.
func (m *Map) Invert() {
	m.tbl.Flip()
	m.numTraversable = uint32(m.tbl.Size()) - m.numTraversable
}
