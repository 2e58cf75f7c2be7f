package weightedgrid

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Load parses a GPPC weighted map file using the glyph->terrain-code
// assignment produced by LoadCostTable. Unknown glyphs are rejected.
func Load(r io.Reader, codes map[rune]byte) (*Map, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var width, height int
	var sawWidth, sawHeight bool

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "type":
			continue
		case "patches":
			continue
		case "height":
			h, err := strconv.Atoi(fields[1])
			if err != nil || h <= 0 {
				return nil, errors.Wrap(ErrBadHeader, "height")
			}
			height = h
			sawHeight = true
		case "width":
			w, err := strconv.Atoi(fields[1])
			if err != nil || w <= 0 {
				return nil, errors.Wrap(ErrBadHeader, "width")
			}
			width = w
			sawWidth = true
		case "map":
			goto body
		default:
			return nil, errors.Wrapf(ErrBadHeader, "unexpected header field %q", fields[0])
		}
	}

body:
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "weightedgrid: reading header")
	}
	if !sawWidth || !sawHeight {
		return nil, ErrBadHeader
	}

	m := New(uint32(width), uint32(height))

	row := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		if row >= height {
			return nil, errors.Wrapf(ErrRowCount, "got more than %d rows", height)
		}
		runes := []rune(line)
		if len(runes) != width {
			return nil, errors.Wrapf(ErrRowWidth, "row %d has %d chars, want %d", row, len(runes), width)
		}
		for x, ch := range runes {
			code, ok := codes[ch]
			if !ok {
				return nil, errors.Wrapf(ErrBadCostLine, "row %d col %d: glyph %q has no assigned cost", row, x, ch)
			}
			m.SetLabelPacked(m.XYToPacked(uint32(x), uint32(row)), code)
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "weightedgrid: reading body")
	}
	if row != height {
		return nil, errors.Wrapf(ErrRowCount, "got %d rows, want %d", row, height)
	}

	return m, nil
}
