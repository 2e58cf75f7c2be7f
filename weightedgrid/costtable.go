package weightedgrid

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// costMinPositive is the smallest cost the loader will accept from a cost
// file. The original source's COST_MIN is ambiguous between DBL_MAX and
// DBL_MIN (spec.md §9 open question); we resolve it as the smallest finite
// positive cost accepted at the use sites that compare against it — costs
// smaller than this are a parse error rather than silently flushed to zero.
const costMinPositive = 1e-9

// CostTable maps each of the 256 possible terrain codes to a real cost.
// NaN means "unspecified" (an error if the code is ever referenced by a
// map); 0 means impassable.
type CostTable struct {
	cost [256]float64
}

// NewCostTable returns a table with every code marked unspecified (NaN)
// except OutOfBounds, which is fixed at cost 0.
func NewCostTable() *CostTable {
	ct := &CostTable{}
	for i := range ct.cost {
		ct.cost[i] = math.NaN()
	}
	ct.cost[OutOfBounds] = 0

	return ct
}

// Set assigns a cost to a terrain code.
func (ct *CostTable) Set(code byte, cost float64) {
	ct.cost[code] = cost
}

// Cost returns the cost of a terrain code (may be NaN or 0).
func (ct *CostTable) Cost(code byte) float64 {
	return ct.cost[code]
}

// LowestCost scans m and returns the minimum positive cost among the
// terrain codes actually referenced by it, or NaN if any referenced code is
// unspecified. Used to derive an admissible heuristic scale (hscale) for
// weighted-terrain octile search.
func (ct *CostTable) LowestCost(m *Map) float64 {
	seen := [256]bool{}
	for y := uint32(0); y < m.Height(); y++ {
		for x := uint32(0); x < m.Width(); x++ {
			seen[m.GetLabelPacked(m.XYToPacked(x, y))] = true
		}
	}

	lowest := math.Inf(1)
	for code, present := range seen {
		if !present {
			continue
		}
		c := ct.cost[code]
		if math.IsNaN(c) {
			return math.NaN()
		}
		if c > 0 && c < lowest {
			lowest = c
		}
	}
	if math.IsInf(lowest, 1) {
		return math.NaN()
	}

	return lowest
}

// LoadCostTable parses a "<char> <decimal-cost>" per line cost file. It
// returns the resolved CostTable plus a glyph->terrain-code assignment the
// map loader uses to encode the ASCII body into bytes.
func LoadCostTable(r io.Reader) (*CostTable, map[rune]byte, error) {
	ct := NewCostTable()
	codes := make(map[rune]byte)

	sc := bufio.NewScanner(r)
	next := byte(1) // code 0 is reserved for OutOfBounds
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || len(fields[0]) != 1 {
			return nil, nil, errors.Wrapf(ErrBadCostLine, "line %q", line)
		}
		cost, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, errors.Wrapf(ErrBadCostLine, "line %q: %v", line, err)
		}
		if cost < 0 || (cost > 0 && cost < costMinPositive) {
			return nil, nil, errors.Wrapf(ErrBadCostLine, "line %q: cost %v below minimum %v", line, cost, costMinPositive)
		}
		glyph := rune(fields[0][0])
		if next == 0 {
			return nil, nil, errors.New("weightedgrid: too many distinct terrain glyphs (max 255)")
		}
		code := next
		next++
		codes[glyph] = code
		ct.Set(code, cost)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "weightedgrid: reading cost file")
	}

	return ct, codes, nil
}
