// Command gridpath runs a GPPC v1 scenario file against the engine and
// emits one tab-separated metrics row per query, per §4.9/§6.
package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/katalvlaran/gridpath/expansion"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/listener"
	"github.com/katalvlaran/gridpath/nodepool"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/weightedgrid"
)

// exit codes, per §6: 0 success; 1 invalid arguments or no queries; 4
// optimality check failed.
const (
	exitOK        = 0
	exitBadArgs   = 1
	exitOptFailed = 4

	checkoptPrecision = 6
)

// cli is the flag surface kong parses. Required: Alg, Scen. Optional:
// Map, Costs (mandatory only when Alg is astar_wgm), CheckOpt, Verbose.
type cli struct {
	Alg      string `enum:"astar,astar4c,astar_wgm,dijkstra" required:"" help:"Search algorithm to run."`
	Scen     string `required:"" type:"existingfile" help:"Path to a GPPC v1 scenario file."`
	Map      string `optional:"" help:"Path to a map file; derived from the scenario when omitted."`
	Costs    string `optional:"" help:"Path to a cost file; required for --alg=astar_wgm."`
	CheckOpt bool   `name:"checkopt" help:"Verify each path's cost against the scenario's optimal distance."`
	Verbose  bool   `help:"Emit a YAML trace of search events to stderr."`
}

func main() {
	var c cli
	kong.Parse(&c,
		kong.Name("gridpath"),
		kong.Description("Run a GPPC scenario against the gridpath search engine."),
		kong.UsageOnError(),
	)

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	code, err := run(c, logger, os.Stdout)
	if err != nil {
		level.Error(logger).Log("msg", "gridpath: fatal", "err", err)
	}
	os.Exit(code)
}

// run does the real work and returns the process exit code plus any fatal
// error to log. It never calls os.Exit itself, so it stays testable.
func run(c cli, logger kitlog.Logger, out io.Writer) (int, error) {
	if c.Alg == "astar_wgm" && c.Costs == "" {
		fmt.Fprintln(os.Stderr, "gridpath: --costs is required for --alg=astar_wgm")

		return exitBadArgs, nil
	}

	scenFile, err := os.Open(c.Scen)
	if err != nil {
		return exitBadArgs, errors.Wrap(err, "opening scenario file")
	}
	defer scenFile.Close()

	records, err := scenario.Load(scenFile)
	if err != nil {
		return exitBadArgs, errors.Wrap(err, "parsing scenario file")
	}
	if len(records) == 0 {
		fmt.Fprintf(os.Stderr, "gridpath: scenario %s contains no queries\n", c.Scen)

		return exitBadArgs, nil
	}

	mapPath := c.Map
	if mapPath == "" {
		mapPath, err = scenario.ResolveMapPath(c.Scen, records[0].MapName)
		if err != nil {
			return exitBadArgs, errors.Wrap(err, "resolving map path")
		}
	}

	level.Info(logger).Log("msg", "loaded scenario", "queries", len(records), "map", mapPath,
		"alg", c.Alg, "bytes", humanize.Bytes(uint64(len(records)*72)))

	eng, err := newEngine(c.Alg, mapPath, c.Costs)
	if err != nil {
		return exitBadArgs, errors.Wrap(err, "building search engine")
	}

	var trace listener.Listener = listener.Dummy{}
	if c.Verbose {
		trace = listener.NewYAMLTrace(os.Stderr)
	}

	scope := search.NewScope()
	params := search.Parameters{
		Admissibility: search.WAdmissible,
		Feasibility:   search.UntilExhaustion,
		Reopen:        search.ReopenOff,
		W:             1,
	}
	s := search.New(eng.policy, eng.heuristic, eng.coords, params, search.WithListener(trace))

	fmt.Fprintln(out, "id\talg\texpanded\tgenerated\treopen\tsurplus\theapops\tnanos\tplen\tpcost\tscost\tmap")

	optFailures := 0
	eps := math.Pow(10, -checkoptPrecision) / 2

	for i, rec := range records {
		start := eng.packedID(rec.StartX, rec.StartY)
		target := eng.packedID(rec.GoalX, rec.GoalY)
		problem := scope.NewProblem(start, target)

		sol := s.GetPath(problem)
		path := s.Path(sol, problem)

		fmt.Fprintf(out, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\t%s\t%s\n",
			i, c.Alg, sol.Expanded, sol.Generated, sol.Reopened, sol.NodesSurplus, sol.HeapOps,
			sol.Elapsed.Nanoseconds(), len(path), formatCost(sol.SumOfEdgeCosts),
			formatCost(rec.OptimalDistance), mapPath)

		if c.CheckOpt && !math.IsInf(sol.SumOfEdgeCosts, 1) {
			if math.Abs(sol.SumOfEdgeCosts-rec.OptimalDistance) > eps {
				level.Warn(logger).Log("msg", "optimality check failed", "query", i,
					"got", sol.SumOfEdgeCosts, "want", rec.OptimalDistance)
				optFailures++
			}
		}
	}

	if c.CheckOpt && optFailures > 0 {
		return exitOptFailed, nil
	}

	return exitOK, nil
}

func formatCost(c float64) string {
	if math.IsInf(c, 1) {
		return "inf"
	}

	return fmt.Sprintf("%.6f", c)
}

// engine bundles the per-run search dependencies newEngine assembles, so
// the main query loop only ever talks to this adapter, never to the
// concrete map/policy types.
type engine struct {
	policy    expansion.Policy
	heuristic heuristic.Heuristic
	coords    search.Coords
	packedID  func(x, y uint32) uint64
}

// newEngine wires the map, cost table, expansion policy, and heuristic
// for the named algorithm, per §4.7/§4.6's pairing of each --alg value
// with a connectivity and heuristic scale.
func newEngine(alg, mapPath, costsPath string) (*engine, error) {
	switch alg {
	case "astar", "dijkstra":
		m, err := loadGridMap(mapPath)
		if err != nil {
			return nil, err
		}
		policy := expansion.NewUniformCostPolicy(m, false)
		h := heuristic.Heuristic(heuristic.NewOctile())
		if alg == "dijkstra" {
			h = heuristic.Zero{}
		}

		return &engine{
			policy:    policy,
			heuristic: h,
			coords:    uniformCoords(m),
			packedID:  func(x, y uint32) uint64 { return uint64(m.XYToPacked(x, y)) },
		}, nil

	case "astar4c":
		m, err := loadGridMap(mapPath)
		if err != nil {
			return nil, err
		}
		policy := expansion.NewUniformCostPolicy(m, true)

		return &engine{
			policy:    policy,
			heuristic: heuristic.Manhattan{},
			coords:    uniformCoords(m),
			packedID:  func(x, y uint32) uint64 { return uint64(m.XYToPacked(x, y)) },
		}, nil

	case "astar_wgm":
		if costsPath == "" {
			return nil, errors.New("astar_wgm requires a cost file")
		}
		costsFile, err := os.Open(costsPath)
		if err != nil {
			return nil, errors.Wrap(err, "opening cost file")
		}
		defer costsFile.Close()

		costs, codes, err := weightedgrid.LoadCostTable(costsFile)
		if err != nil {
			return nil, errors.Wrap(err, "parsing cost file")
		}

		mapFile, err := os.Open(mapPath)
		if err != nil {
			return nil, errors.Wrap(err, "opening map file")
		}
		defer mapFile.Close()

		m, err := weightedgrid.Load(mapFile, codes)
		if err != nil {
			return nil, errors.Wrap(err, "parsing map file")
		}

		policy := expansion.NewWeightedTerrainPolicy(m, costs, false)
		hscale := costs.LowestCost(m)
		if math.IsNaN(hscale) {
			return nil, errors.New("astar_wgm: map references a terrain code with no assigned cost")
		}

		return &engine{
			policy:    policy,
			heuristic: heuristic.Octile{HScale: hscale},
			coords:    weightedCoords(m),
			packedID:  func(x, y uint32) uint64 { return uint64(m.XYToPacked(x, y)) },
		}, nil

	default:
		return nil, errors.Errorf("unknown algorithm %q", alg)
	}
}

func loadGridMap(path string) (*gridmap.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening map file")
	}
	defer f.Close()

	m, err := gridmap.Load(f)
	if err != nil {
		return nil, errors.Wrap(err, "parsing map file")
	}

	return m, nil
}

func uniformCoords(m *gridmap.Map) search.Coords {
	return func(id nodepool.ID) (x, y float64) {
		px, py := m.PaddedToXY(gridmap.PaddedID(id))

		return float64(px), float64(py)
	}
}

func weightedCoords(m *weightedgrid.Map) search.Coords {
	return func(id nodepool.ID) (x, y float64) {
		px, py := m.PaddedToXY(weightedgrid.PaddedID(id))

		return float64(px), float64(py)
	}
}
