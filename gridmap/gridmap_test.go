package gridmap

import (
	"strings"
	"testing"
)

func smallMap() *Map {
	// 8x4 map from spec.md §8:
	// Row 0: . . . . . . . .
	// Row 1: . @ @ @ @ @ . .
	// Row 2: . . . . . . . .
	// Row 3: . . . . . . . .
	m := New(8, 4)
	blocked := map[[2]uint32]bool{
		{1, 1}: true, {2, 1}: true, {3, 1}: true, {4, 1}: true, {5, 1}: true,
	}
	for y := uint32(0); y < 4; y++ {
		for x := uint32(0); x < 8; x++ {
			if !blocked[[2]uint32{x, y}] {
				m.SetLabelPacked(m.XYToPacked(x, y), true)
			}
		}
	}
	return m
}

// TestIDRoundTrip covers testable property 1: ToPacked/ToPadded invert
// each other for every real cell.
func TestIDRoundTrip(t *testing.T) {
	m := smallMap()
	for y := uint32(0); y < m.Height(); y++ {
		for x := uint32(0); x < m.Width(); x++ {
			p := m.XYToPacked(x, y)
			padded := m.ToPadded(p)
			if got := m.ToPacked(padded); got != p {
				t.Fatalf("ToPacked(ToPadded(%d)) = %d; want %d", p, got, p)
			}
		}
	}
}

// TestPaddingIsZero covers property 2: padding rows/columns read back as
// untraversable.
func TestPaddingIsZero(t *testing.T) {
	m := smallMap()
	for y := uint32(0); y < PaddingRows; y++ {
		for x := uint32(0); x < m.PaddedWidth(); x++ {
			if m.GetLabelXY(x, y) {
				t.Fatalf("leading padding row %d col %d is traversable", y, x)
			}
		}
	}
	for y := m.PaddedHeight() - PaddingRows; y < m.PaddedHeight(); y++ {
		for x := uint32(0); x < m.PaddedWidth(); x++ {
			if m.GetLabelXY(x, y) {
				t.Fatalf("trailing padding row %d col %d is traversable", y, x)
			}
		}
	}
	for y := PaddingRows; y < PaddingRows+m.Height(); y++ {
		for x := m.Width(); x < m.PaddedWidth(); x++ {
			if m.GetLabelXY(x, y) {
				t.Fatalf("right-padding row %d col %d is traversable", y, x)
			}
		}
	}
}

// TestNeighbourhoodAgreement covers property 3: the 3x3 window matches
// individual GetLabel reads.
func TestNeighbourhoodAgreement(t *testing.T) {
	m := smallMap()
	for y := uint32(0); y < m.Height(); y++ {
		for x := uint32(0); x < m.Width(); x++ {
			p := m.ToPadded(m.XYToPacked(x, y))
			px, py := m.PaddedToXY(p)
			win := m.GetNeighbours3x3(p)

			check := func(bit byte, dx, dy int32) {
				want := m.GetLabelXY(uint32(int32(px)+dx), uint32(int32(py)+dy))
				got := bit != 0
				if want != got {
					t.Fatalf("(%d,%d) dx=%d dy=%d: window says %v, GetLabel says %v", x, y, dx, dy, got, want)
				}
			}
			check(win.Above&1, -1, -1)
			check((win.Above>>1)&1, 0, -1)
			check((win.Above>>2)&1, 1, -1)
			check(win.Row&1, -1, 0)
			check((win.Row>>2)&1, 1, 0)
			check(win.Below&1, -1, 1)
			check((win.Below>>1)&1, 0, 1)
			check((win.Below>>2)&1, 1, 1)
		}
	}
}

func TestLoadAndRoundTrip(t *testing.T) {
	src := "type octile\nheight 4\nwidth 8\nmap\n........\n.@@@@@..\n........\n........\n"
	m, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Width() != 8 || m.Height() != 4 {
		t.Fatalf("dims = (%d,%d); want (8,4)", m.Width(), m.Height())
	}
	if !m.GetLabelPacked(m.XYToPacked(0, 0)) {
		t.Fatal("(0,0) should be traversable")
	}
	if m.GetLabelPacked(m.XYToPacked(1, 1)) {
		t.Fatal("(1,1) should be blocked")
	}
}

func TestLoadRejectsUnknownTerrain(t *testing.T) {
	src := "type octile\nheight 1\nwidth 3\nmap\n.X.\n"
	if _, err := Load(strings.NewReader(src)); err == nil {
		t.Fatal("expected error for unknown terrain character")
	}
}

func TestLoadRejectsRowWidthMismatch(t *testing.T) {
	src := "type octile\nheight 1\nwidth 3\nmap\n..\n"
	if _, err := Load(strings.NewReader(src)); err == nil {
		t.Fatal("expected error for row width mismatch")
	}
}
