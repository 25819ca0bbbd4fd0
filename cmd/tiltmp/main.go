// Command tiltmp solves tilt motion-planning instances: given a board of
// glue-labeled tiles and a target polyomino shape, it searches for a
// sequence of board tilts that assembles the shape somewhere on the
// board.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/hailam/tiltmp/internal/board"
	"github.com/hailam/tiltmp/internal/buildorder"
	"github.com/hailam/tiltmp/internal/heuristic"
	"github.com/hailam/tiltmp/internal/instance"
	"github.com/hailam/tiltmp/internal/pruner"
	"github.com/hailam/tiltmp/internal/rrt"
	"github.com/hailam/tiltmp/internal/search"
	"github.com/hailam/tiltmp/internal/storage"
)

var (
	out         = flag.String("out", "", "output file path for the solution")
	outShort    = flag.String("o", "", "output file path for the solution (shorthand)")
	outdir      = flag.String("outdir", "", "output directory path, for batch solving a directory of instances")
	timeout     = flag.Int("timeout", 0, "maximum time in seconds for each instance (0: no limit)")
	timeoutS    = flag.Int("t", 0, "maximum time in seconds for each instance, shorthand")
	profileFlag = flag.Bool("profile", false, "write a CPU profile alongside the solution")
	profileS    = flag.Bool("p", false, "write a CPU profile alongside the solution, shorthand")
	solverName  = flag.String("solver", "default", "solver to use: default, bfs, tileatatime, rrt")
	solverS     = flag.String("s", "", "solver to use, shorthand")
	heuristicN  = flag.String("heuristic", "Weighted Sum of Distances", "heuristic for the default solver")
)

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: tiltmp [flags] IN")
		os.Exit(-1)
	}
	input := flag.Arg(0)

	solver := *solverName
	if *solverS != "" {
		solver = *solverS
	}
	outputPath := *out
	if *outShort != "" {
		outputPath = *outShort
	}
	timeoutSec := *timeout
	if *timeoutS != 0 {
		timeoutSec = *timeoutS
	}
	profile := *profileFlag || *profileS

	info, err := os.Stat(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "input not found:", err)
		os.Exit(-1)
	}

	if info.IsDir() {
		if *outdir == "" {
			fmt.Fprintln(os.Stderr, "input directory requires --outdir")
			os.Exit(-1)
		}
		entries, err := os.ReadDir(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to read input directory:", err)
			os.Exit(-1)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			in := filepath.Join(input, e.Name())
			name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
			outPath := filepath.Join(*outdir, name+"_result.json")
			if err := runExperiment(in, outPath, solver, heuristicName(), timeoutSec, profile); err != nil {
				log.Printf("instance %s failed: %v", in, err)
			}
		}
		return
	}

	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		if *outdir != "" {
			outputPath = filepath.Join(*outdir, base+"_result.json")
		} else {
			resultsDir := "results"
			os.MkdirAll(resultsDir, 0755)
			outputPath = filepath.Join(resultsDir, base+"_results.json")
		}
	}

	if err := runExperiment(input, outputPath, solver, heuristicName(), timeoutSec, profile); err != nil {
		if err == errOutputExists {
			os.Exit(2)
		}
		if err == search.ErrSolverTimeout {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "solve failed:", err)
		os.Exit(-1)
	}
}

func heuristicName() string {
	if *heuristicN != "" {
		return *heuristicN
	}
	return "Weighted Sum of Distances"
}

var errOutputExists = fmt.Errorf("output file already exists")

// runExperiment loads one instance, solves it with the named solver, and
// writes the resulting Solution to outputPath, mirroring a single
// solver/profiler invocation.
func runExperiment(inputPath, outputPath, solverName, heuristicName string, timeoutSec int, profile bool) error {
	var solutionStore storage.SolutionStore
	if solutionStore.Exists(outputPath) {
		return errOutputExists
	}

	var instanceStore storage.InstanceStore
	inst, err := instanceStore.Load(inputPath)
	if err != nil {
		return fmt.Errorf("load instance: %w", err)
	}

	if profile {
		profPath := outputPath + ".cpuprof"
		f, err := os.Create(profPath)
		if err != nil {
			log.Printf("could not create CPU profile: %v", err)
		} else {
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				log.Printf("could not start CPU profile: %v", err)
			} else {
				defer pprof.StopCPUProfile()
				log.Printf("CPU profiling enabled, writing to %s", profPath)
			}
		}
	}

	var deadline *search.Deadline
	if timeoutSec > 0 {
		deadline = search.NewDeadline(time.Duration(timeoutSec) * time.Second)
	} else {
		deadline = search.NewDeadline(0)
	}

	t0 := time.Now()
	seq, nodes, timedOut, err := solve(inst, solverName, heuristicName, deadline)
	elapsed := time.Since(t0)
	if err != nil && err != search.ErrSolverTimeout {
		return fmt.Errorf("solve: %w", err)
	}
	if err == search.ErrSolverTimeout {
		timedOut = true
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	sol := &instance.Solution{
		ControlSequence: seq,
		TimeNeeded:      elapsed.Seconds(),
		TimedOut:        timedOut,
		NumberOfNodes:   nodes,
		MaxMemUsageKB:   int64(mem.Sys / 1024),
		Instance:        inst,
	}
	if err := solutionStore.Save(outputPath, sol, false); err != nil {
		return fmt.Errorf("save solution: %w", err)
	}
	log.Printf("solved=%v tilts=%d nodes=%d time=%.2fs -> %s", !timedOut, len(seq), nodes, elapsed.Seconds(), outputPath)
	if timedOut {
		return search.ErrSolverTimeout
	}
	return nil
}

func defaultPruners(noLeftovers, anchoring bool) []pruner.Pruner {
	ps := []pruner.Pruner{
		&pruner.NotEnoughTiles{NoLeftovers: noLeftovers},
		&pruner.Packing{NoLeftovers: noLeftovers},
		&pruner.TargetUnreachable{},
		&pruner.WrongTilesCombined{},
	}
	if anchoring {
		ps = append(ps, &pruner.TilesGluedOutsideTargetArea{})
	}
	return ps
}

// nodeFactoryStop picks the stop condition and noLeftovers pruner mode
// per §4.7's node factory: when the board carries exactly as many tiles
// as the target shape needs and none of them are fixed, the search can
// demand that every tile end up in the target (NoLeftovers); otherwise it
// falls back to requiring only that the target shape be assembled
// somewhere, tolerating spare tiles (Default).
func nodeFactoryStop(inst *instance.Instance, anchoring bool) (search.StopCondition, bool) {
	if anchoring {
		return search.AnchoringStopCondition{}, false
	}
	if inst.Board.TileCount() == len(inst.TargetShape) {
		return &search.NoLeftoversStopCondition{}, true
	}
	return search.DefaultStopCondition{}, false
}

func solve(inst *instance.Instance, solverName, heuristicName string, deadline *search.Deadline) ([]board.Direction, int, bool, error) {
	anchoring := len(inst.FixedTiles) > 0

	switch solverName {
	case "bfs":
		stop, noLeftovers := nodeFactoryStop(inst, anchoring)
		planner := search.NewBFSPlanner(stop, defaultPruners(noLeftovers, anchoring))
		seq, err := planner.Solve(inst.Board, inst.TargetShape, deadline)
		return seq, planner.NodesExpanded, err == search.ErrSolverTimeout, err

	case "tileatatime":
		// Driven by DistanceToFixedDestination internally (see
		// buildorder.OneTileAtATimeMotionPlanner); -heuristic does not
		// apply to this solver.
		planner := &buildorder.OneTileAtATimeMotionPlanner{
			Width:        inst.Board.Width,
			Height:       inst.Board.Height,
			Rules:        inst.Board.Rules,
			TargetOrigin: board.Point{},
			TargetShape:  inst.TargetShape,
			Rand:         board.NewRand(board.DefaultSeed),
		}
		seq, err := planner.Solve(inst.Board, deadline)
		return seq, 0, err == search.ErrSolverTimeout, err

	case "rrt":
		explorer := &rrt.Explorer{
			Width:           inst.Board.Width,
			Height:          inst.Board.Height,
			Rules:           inst.Board.Rules,
			Metric:          rrt.BottleneckMatching{},
			BiasProbability: 0.2,
			Rand:            board.NewRand(board.DefaultSeed),
		}
		target := rrt.Configuration{Polyominoes: [][]board.Point{inst.TargetShape}}
		seq, err := explorer.Solve(inst.Board, target, deadline, 20000)
		return seq, 0, err == search.ErrSolverTimeout, err

	default: // "default": best-first search with the named heuristic
		h, ok := heuristic.Registry[heuristicName]
		if !ok {
			h = heuristic.WeightedSumOfDistances{Weight: 1}
		}
		stop, noLeftovers := nodeFactoryStop(inst, anchoring)
		planner := search.NewBestFirstPlanner(stop, defaultPruners(noLeftovers, anchoring), h)
		seq, err := planner.Solve(inst.Board, inst.TargetShape, deadline)
		return seq, planner.NodesExpanded, err == search.ErrSolverTimeout, err
	}
}
