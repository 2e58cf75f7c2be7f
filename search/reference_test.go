package search

import (
	"container/heap"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/expansion"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/heuristic"
)

// refItem is one entry in refDijkstra's open set: a tentative distance to
// a cell, ordered by cost.
type refItem struct {
	cost float64
	x, y uint32
}

type refHeap []refItem

func (h refHeap) Len() int            { return len(h) }
func (h refHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h refHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *refHeap) Push(x interface{}) { *h = append(*h, x.(refItem)) }
func (h *refHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// refDijkstra is a minimal, independent shortest-path implementation that
// exists only to cross-check UnidirectionalSearch's 4-connected (manhattan)
// mode against ground truth. It walks m's traversability bits directly via
// a textbook Dijkstra over an implicit unit-weight adjacency list, sharing
// no code with the expansion/search packages under test. Returns the map
// of every cell reachable from (sx,sy); an impassable start cell yields an
// empty map.
func refDijkstra(m *gridmap.Map, sx, sy uint32) map[[2]uint32]float64 {
	dist := make(map[[2]uint32]float64)
	if !m.GetLabelPacked(m.XYToPacked(sx, sy)) {
		return dist
	}

	dist[[2]uint32{sx, sy}] = 0
	h := &refHeap{{cost: 0, x: sx, y: sy}}
	visited := make(map[[2]uint32]bool)
	offsets := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	for h.Len() > 0 {
		cur := heap.Pop(h).(refItem)
		pos := [2]uint32{cur.x, cur.y}
		if visited[pos] {
			continue
		}
		visited[pos] = true

		for _, d := range offsets {
			nx, ny := int(cur.x)+d[0], int(cur.y)+d[1]
			if nx < 0 || ny < 0 || uint32(nx) >= m.Width() || uint32(ny) >= m.Height() {
				continue
			}
			if !m.GetLabelPacked(m.XYToPacked(uint32(nx), uint32(ny))) {
				continue
			}
			npos := [2]uint32{uint32(nx), uint32(ny)}
			nd := cur.cost + 1
			if old, ok := dist[npos]; !ok || nd < old {
				dist[npos] = nd
				heap.Push(h, refItem{cost: nd, x: uint32(nx), y: uint32(ny)})
			}
		}
	}

	return dist
}

// crossCheckManhattan runs the 4-connected (manhattan) engine from
// (sx,sy) to (gx,gy) on m and compares its cost against refDijkstra's
// ground truth over the same obstacle layout.
func crossCheckManhattan(t *testing.T, m *gridmap.Map, sx, sy, gx, gy uint32) {
	t.Helper()

	policy := expansion.NewUniformCostPolicy(m, true)
	s := New(policy, heuristic.Manhattan{}, gridCoords(m), Parameters{Admissibility: WAdmissible, W: 1})
	scope := NewScope()
	problem := scope.NewProblem(uint64(m.XYToPacked(sx, sy)), uint64(m.XYToPacked(gx, gy)))
	sol := s.GetPath(problem)

	dist := refDijkstra(m, sx, sy)
	want, reachable := dist[[2]uint32{gx, gy}]

	if !reachable {
		if sol.Found() {
			t.Fatalf("(%d,%d)->(%d,%d): engine found cost %v but oracle says unreachable",
				sx, sy, gx, gy, sol.SumOfEdgeCosts)
		}

		return
	}

	if !sol.Found() {
		t.Fatalf("(%d,%d)->(%d,%d): oracle found cost %v but engine found no incumbent",
			sx, sy, gx, gy, want)
	}
	if math.Abs(sol.SumOfEdgeCosts-want) > 1e-9 {
		t.Fatalf("(%d,%d)->(%d,%d): engine cost = %v; oracle cost = %v",
			sx, sy, gx, gy, sol.SumOfEdgeCosts, want)
	}
}

func TestCrossCheckAgainstDijkstraOracleWallMap(t *testing.T) {
	m := literalMap(t)

	for _, pair := range [][4]uint32{
		{0, 0, 7, 0},
		{0, 1, 6, 1},
		{0, 0, 2, 2},
		{7, 3, 0, 0},
		{1, 1, 7, 0}, // (1,1) is an obstacle: must agree on unreachability
	} {
		crossCheckManhattan(t, m, pair[0], pair[1], pair[2], pair[3])
	}
}

func TestCrossCheckAgainstDijkstraOracleOpenMap(t *testing.T) {
	src := "type octile\nheight 5\nwidth 5\nmap\n.....\n.....\n.....\n.....\n.....\n"
	m, err := gridmap.Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for y := uint32(0); y < 5; y++ {
		for x := uint32(0); x < 5; x++ {
			crossCheckManhattan(t, m, 0, 0, x, y)
		}
	}
}

func TestCrossCheckAgainstDijkstraOracleMaze(t *testing.T) {
	src := "type octile\nheight 6\nwidth 6\nmap\n" +
		"......\n" +
		".@@@.@\n" +
		".@...@\n" +
		".@.@@@\n" +
		".@...@\n" +
		"......\n"
	m, err := gridmap.Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, pair := range [][4]uint32{
		{0, 0, 5, 5},
		{0, 0, 5, 0},
		{2, 2, 4, 4},
		{0, 0, 4, 2},
	} {
		crossCheckManhattan(t, m, pair[0], pair[1], pair[2], pair[3])
	}
}
