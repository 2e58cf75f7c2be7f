package scenario

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Record is one query from a GPPC v1 scenario file:
//
//	<bucket> <mapname> <W> <H> <sx> <sy> <gx> <gy> <optimal-distance>
type Record struct {
	Bucket          int
	MapName         string
	MapWidth        int
	MapHeight       int
	StartX, StartY  uint32
	GoalX, GoalY    uint32
	OptimalDistance float64
}

// Load parses a "version 1" scenario file into its records, in file order.
func Load(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, errors.Wrap(ErrBadVersion, "empty file")
	}
	header := strings.Fields(strings.TrimSpace(sc.Text()))
	if len(header) != 2 || strings.ToLower(header[0]) != "version" || header[1] != "1" {
		return nil, errors.Wrapf(ErrBadVersion, "got %q", sc.Text())
	}

	var records []Record
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, err := parseRecord(line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scenario: reading file")
	}

	return records, nil
}

func parseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != 9 {
		return Record{}, errors.Wrapf(ErrBadRecord, "line %q: want 9 fields, got %d", line, len(fields))
	}

	var rec Record
	var err error
	if rec.Bucket, err = strconv.Atoi(fields[0]); err != nil {
		return Record{}, errors.Wrapf(ErrBadRecord, "bucket %q", fields[0])
	}
	rec.MapName = fields[1]
	if rec.MapWidth, err = strconv.Atoi(fields[2]); err != nil {
		return Record{}, errors.Wrapf(ErrBadRecord, "map width %q", fields[2])
	}
	if rec.MapHeight, err = strconv.Atoi(fields[3]); err != nil {
		return Record{}, errors.Wrapf(ErrBadRecord, "map height %q", fields[3])
	}
	sx, err := strconv.ParseUint(fields[4], 10, 32)
	if err != nil {
		return Record{}, errors.Wrapf(ErrBadRecord, "sx %q", fields[4])
	}
	rec.StartX = uint32(sx)
	sy, err := strconv.ParseUint(fields[5], 10, 32)
	if err != nil {
		return Record{}, errors.Wrapf(ErrBadRecord, "sy %q", fields[5])
	}
	rec.StartY = uint32(sy)
	gx, err := strconv.ParseUint(fields[6], 10, 32)
	if err != nil {
		return Record{}, errors.Wrapf(ErrBadRecord, "gx %q", fields[6])
	}
	rec.GoalX = uint32(gx)
	gy, err := strconv.ParseUint(fields[7], 10, 32)
	if err != nil {
		return Record{}, errors.Wrapf(ErrBadRecord, "gy %q", fields[7])
	}
	rec.GoalY = uint32(gy)
	if rec.OptimalDistance, err = strconv.ParseFloat(fields[8], 64); err != nil {
		return Record{}, errors.Wrapf(ErrBadRecord, "optimal distance %q", fields[8])
	}

	return rec, nil
}
