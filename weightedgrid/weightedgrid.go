package weightedgrid

import "github.com/katalvlaran/gridpath/bittable"

// PackedID and PaddedID mirror gridmap's id spaces, kept distinct so the
// two map types are never confused at a call site even though they share
// no code.
type PackedID uint64
type PaddedID uint64

// PaddingRows is the fixed number of zeroed rows above and below the real map.
const PaddingRows = 3

// OutOfBounds is the terrain code reserved for padding cells: cost 0, impassable.
const OutOfBounds byte = 0

// Map is a byte-per-cell padded terrain grid, reusing bittable.Table at an
// 8-bit cell width for its backing storage (the same table type that backs
// gridmap.Map's 1-bit cells). Cells are read with Get, not SpanRead, which
// only accepts 1-bit tables.
type Map struct {
	tbl *bittable.Table

	headerWidth  uint32
	headerHeight uint32
	paddedWidth  uint32 // headerWidth + 1
	paddedHeight uint32 // headerHeight + 2*PaddingRows
}

// New allocates an all-zero (all-out-of-bounds) terrain Map.
func New(width, height uint32) *Map {
	if width == 0 || height == 0 {
		panic(ErrZeroDimension)
	}
	pw := width + 1
	ph := height + 2*PaddingRows

	return &Map{
		tbl:          bittable.New(pw, ph, 8),
		headerWidth:  width,
		headerHeight: height,
		paddedWidth:  pw,
		paddedHeight: ph,
	}
}

func (m *Map) Width() uint32        { return m.headerWidth }
func (m *Map) Height() uint32       { return m.headerHeight }
func (m *Map) PaddedWidth() uint32  { return m.paddedWidth }
func (m *Map) PaddedHeight() uint32 { return m.paddedHeight }
func (m *Map) Mem() int             { return len(m.tbl.Data()) }

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

func (m *Map) XYToPadded(x, y uint32) PaddedID {
	return PaddedID(uint64(y)*uint64(m.paddedWidth) + uint64(x))
}

func (m *Map) PaddedToXY(id PaddedID) (x, y uint32) {
	pw := uint64(m.paddedWidth)
	return uint32(uint64(id) % pw), uint32(uint64(id) / pw)
}

func (m *Map) XYToPacked(x, y uint32) PackedID {
	return PackedID(uint64(y)*uint64(m.headerWidth) + uint64(x))
}

// GetLabelPadded returns the terrain code at a padded id.
func (m *Map) GetLabelPadded(id PaddedID) byte {
	if uint64(id) >= m.tbl.Size() {
		return OutOfBounds
	}
	return byte(m.tbl.Get(uint64(id)))
}

// SetLabelPadded stores a terrain code at a padded id.
func (m *Map) SetLabelPadded(id PaddedID, code byte) {
	m.tbl.Set(uint64(id), uint64(code))
}

// SetLabelPacked stores a terrain code at a packed (logical) id.
func (m *Map) SetLabelPacked(id PackedID, code byte) {
	m.SetLabelPadded(m.ToPadded(id), code)
}

// GetLabelPacked returns the terrain code at a packed (logical) id.
func (m *Map) GetLabelPacked(id PackedID) byte {
	return m.GetLabelPadded(m.ToPadded(id))
}

// Neighbours2x2 is the four terrain codes of the 2x2 square used by a
// diagonal move: a is the source cell, d the diagonal target, b and c the
// two cardinal cells between them.
type Neighbours2x2 struct {
	A, B, C, D byte
}

// GetNeighbours4 returns the four cardinal terrain codes (N,E,S,W) around
// the padded cell p.
func (m *Map) GetNeighbours4(p PaddedID) (n, e, s, w byte) {
	pw := PaddedID(m.paddedWidth)
	return m.GetLabelPadded(p - pw), m.GetLabelPadded(p + 1), m.GetLabelPadded(p + pw), m.GetLabelPadded(p - 1)
}
