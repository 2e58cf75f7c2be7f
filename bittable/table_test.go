package bittable

import (
	"testing"
)

// TestXYRoundTrip verifies XYToID/IDToXY invert each other across a small grid.
func TestXYRoundTrip(t *testing.T) {
	tb := New(7, 5, 1)
	for y := uint32(0); y < 5; y++ {
		for x := uint32(0); x < 7; x++ {
			id := tb.XYToID(x, y)
			gx, gy := tb.IDToXY(id)
			if gx != x || gy != y {
				t.Errorf("IDToXY(XYToID(%d,%d)) = (%d,%d); want (%d,%d)", x, y, gx, gy, x, y)
			}
		}
	}
}

// TestGetSet covers basic set/get across bit widths.
func TestGetSet(t *testing.T) {
	cases := []struct {
		name string
		bits uint8
		vals []uint64
	}{
		{"bit1", 1, []uint64{0, 1, 1, 0}},
		{"bit2", 2, []uint64{0, 1, 2, 3}},
		{"bit4", 4, []uint64{0, 5, 15, 8}},
		{"byte", 8, []uint64{0, 255, 128, 17}},
		{"word32", 32, []uint64{0, 1, 4294967295, 123456}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tb := New(uint32(len(tc.vals)), 1, tc.bits)
			for i, v := range tc.vals {
				tb.Set(uint64(i), v)
			}
			for i, v := range tc.vals {
				if got := tb.Get(uint64(i)); got != v {
					t.Errorf("Get(%d) = %d; want %d", i, got, v)
				}
			}
		})
	}
}

// TestSetOutOfRangePanics ensures Set enforces the cell's bit width.
func TestSetOutOfRangePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for out-of-range value")
		}
	}()
	tb := New(4, 4, 2)
	tb.Set(0, 4) // 2 bits max value is 3
}

// TestAndOrXorNeg exercises the bitwise mutators on a 1-bit table.
func TestAndOrXorNeg(t *testing.T) {
	tb := New(8, 1, 1)
	tb.Set(3, 1)
	tb.And(3, 1)
	if tb.Get(3) != 1 {
		t.Fatalf("And(1) on set bit = %d; want 1", tb.Get(3))
	}
	tb.And(3, 0)
	if tb.Get(3) != 0 {
		t.Fatalf("And(0) = %d; want 0", tb.Get(3))
	}
	tb.Or(3, 1)
	if tb.Get(3) != 1 {
		t.Fatalf("Or(1) = %d; want 1", tb.Get(3))
	}
	tb.Xor(3, 1)
	if tb.Get(3) != 0 {
		t.Fatalf("Xor(1) after set = %d; want 0", tb.Get(3))
	}
	tb.Neg(3)
	if tb.Get(3) != 1 {
		t.Fatalf("Neg(0) = %d; want 1", tb.Get(3))
	}
}

// TestFillAndFlip checks whole-table fill and bitwise negation.
func TestFillAndFlip(t *testing.T) {
	tb := New(10, 1, 1)
	tb.Fill(1)
	for id := uint64(0); id < tb.Size(); id++ {
		if tb.Get(id) != 1 {
			t.Fatalf("Get(%d) after Fill(1) = %d; want 1", id, tb.Get(id))
		}
	}
	tb.Flip()
	for id := uint64(0); id < tb.Size(); id++ {
		if tb.Get(id) != 0 {
			t.Fatalf("Get(%d) after Flip = %d; want 0", id, tb.Get(id))
		}
	}
}

// TestSpanReadMatchesSequentialGets verifies property 4: span reads equal
// the concatenation of individual Get calls in increasing-bit order.
func TestSpanReadMatchesSequentialGets(t *testing.T) {
	const n = 200
	tb := New(n, 1, 1)
	// Deterministic pseudo-random-ish bit pattern.
	for i := uint64(0); i < n; i++ {
		if (i*2654435761)%7 < 3 {
			tb.Set(i, 1)
		}
	}
	for start := uint64(0); start < n-57; start++ {
		const count = 57
		got, err := tb.SpanRead(start, count)
		if err != nil {
			t.Fatalf("SpanRead(%d,%d): %v", start, count, err)
		}
		var want uint64
		for k := 0; k < count; k++ {
			if tb.Get(start+uint64(k)) == 1 {
				want |= uint64(1) << uint(k)
			}
		}
		if got != want {
			t.Fatalf("SpanRead(%d,%d) = %d; want %d", start, count, got, want)
		}
	}
}

// TestSpanReadRejectsWideTable ensures SpanRead only operates on 1-bit tables.
func TestSpanReadRejectsWideTable(t *testing.T) {
	tb := New(8, 1, 8)
	if _, err := tb.SpanRead(0, 8); err != ErrSpanRequiresSingleBit {
		t.Fatalf("SpanRead on byte table: err = %v; want ErrSpanRequiresSingleBit", err)
	}
}

// TestSpanReadRejectsWideCount ensures SpanRead caps count at 57 bits.
func TestSpanReadRejectsWideCount(t *testing.T) {
	tb := New(128, 1, 1)
	if _, err := tb.SpanRead(0, 58); err != ErrSpanTooWide {
		t.Fatalf("SpanRead(0,58): err = %v; want ErrSpanTooWide", err)
	}
}

// TestSharedBackingStoreAliases verifies two tables over the same buffer alias.
func TestSharedBackingStoreAliases(t *testing.T) {
	n := CalcArraySize(16, 1, 1) + spanSuffixBytes
	buf := make([]byte, n)
	a := &Table{}
	a.Setup(buf, 16, 1, 1)
	b := &Table{}
	b.Setup(buf, 16, 1, 1)
	a.Set(5, 1)
	if b.Get(5) != 1 {
		t.Fatal("tables sharing a backing store did not alias")
	}
}

func TestNewPanicsOnInvalidBitWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid bit width")
		}
	}()
	New(4, 4, 3)
}

func TestNewPanicsOnZeroDimension(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero dimension")
		}
	}()
	New(0, 4, 1)
}
