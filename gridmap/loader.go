package gridmap

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Load parses a GPPC map file (header + ASCII body) into a new Map.
//
//	type octile
//	height <H>
//	width <W>
//	map
//	<H lines of W chars each>
//
// '.' and 'G' are traversable; '@ O S T W' are blockers; any other
// character is a parse error (ErrUnknownTerrain).
func Load(r io.Reader) (*Map, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var width, height int
	var sawType, sawWidth, sawHeight bool

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "type":
			if len(fields) < 2 {
				return nil, errors.Wrap(ErrBadHeader, "type")
			}
			switch strings.ToLower(fields[1]) {
			case "octile", "patch", "other":
				sawType = true
			default:
				return nil, errors.Wrapf(ErrUnknownType, "type %q", fields[1])
			}
		case "patches":
			// Accepted and ignored: patch count is not part of the core data model.
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
		return nil, errors.Wrap(err, "gridmap: reading header")
	}
	if !sawType || !sawWidth || !sawHeight {
		return nil, ErrBadHeader
	}

	m := New(uint32(width), uint32(height))

	row := 0
	for sc.Scan() {
		line := sc.Text()
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		if row >= height {
			return nil, errors.Wrapf(ErrRowCount, "got more than %d rows", height)
		}
		if len(line) != width {
			return nil, errors.Wrapf(ErrRowWidth, "row %d has %d chars, want %d", row, len(line), width)
		}
		for x, ch := range line {
			trav, err := cellTraversable(byte(ch))
			if err != nil {
				return nil, errors.Wrapf(err, "row %d col %d", row, x)
			}
			if trav {
				m.SetLabelPacked(m.XYToPacked(uint32(x), uint32(row)), true)
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "gridmap: reading body")
	}
	if row != height {
		return nil, errors.Wrapf(ErrRowCount, "got %d rows, want %d", row, height)
	}

	return m, nil
}

// cellTraversable classifies a single map-body glyph.
func cellTraversable(ch byte) (bool, error) {
	switch ch {
	case '.', 'G':
		return true, nil
	case '@', 'O', 'S', 'T', 'W':
		return false, nil
	default:
		return false, errors.Wrapf(ErrUnknownTerrain, "character %q", ch)
	}
}
