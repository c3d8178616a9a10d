// Command solve finds a path through a maze file, or a generated maze, and
// prints the solved grid with run statistics.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-solver/config"
	logger "github.com/beka-birhanu/vinom-solver/infrastruture/log"
	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/solver"
)

type options struct {
	mazePath    string
	algorithm   string
	heuristic   string
	maxNodes    int
	timeout     time.Duration
	decreaseKey bool
	lazy        bool
	genWidth    int
	genHeight   int
	seed        int64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log, err := logger.New("SOLVE", config.ColorBlue, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	grid, err := loadGrid(opts)
	if err != nil {
		log.Error(err.Error())
		return 1
	}

	start, goal, err := grid.FindBoundaryEndpoints()
	if err != nil {
		log.Error(fmt.Sprintf("Start and goal not found: %v", err))
		return 1
	}

	engine, err := newEngine(opts)
	if err != nil {
		log.Error(err.Error())
		return 1
	}

	ctx := context.Background()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	report, err := solver.Measure(ctx, engine, grid, start, goal)
	if err != nil {
		log.Error(fmt.Sprintf("%s search failed after %d nodes: %v", engine.Name(), report.NodesExplored, err))
		return 1
	}

	if err := printReport(stdout, grid, report); err != nil {
		log.Error(err.Error())
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.mazePath, "maze", "", "path to a maze file ('-' open, '#' wall, space separated)")
	fs.StringVar(&opts.algorithm, "algo", solver.AlgorithmAStar, "search algorithm: "+strings.Join(solver.Algorithms(), ", "))
	fs.StringVar(&opts.heuristic, "heuristic", "", "A* heuristic: manhattan (default) or euclidean")
	fs.IntVar(&opts.maxNodes, "max-nodes", 0, "abort after exploring this many cells, 0 for no cap")
	fs.DurationVar(&opts.timeout, "timeout", 0, "abort the search after this long, 0 for no deadline")
	fs.BoolVar(&opts.decreaseKey, "decrease-key", false, "update queued A* entries in place")
	fs.BoolVar(&opts.lazy, "lazy-reinsert", false, "push a better duplicate A* entry for an improved cell")
	fs.IntVar(&opts.genWidth, "gen-width", 0, "generate a maze this many cells wide instead of reading -maze")
	fs.IntVar(&opts.genHeight, "gen-height", 0, "generated maze height in cells, defaults to -gen-width")
	fs.Int64Var(&opts.seed, "seed", 0, "generator seed, 0 draws one from the clock")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.mazePath == "" && opts.genWidth == 0 {
		fmt.Fprintln(stderr, "solve: one of -maze or -gen-width is required")
		fs.Usage()
		return opts, errors.New("no maze source")
	}
	if opts.decreaseKey && opts.lazy {
		fmt.Fprintln(stderr, "solve: -decrease-key and -lazy-reinsert are mutually exclusive")
		return opts, errors.New("conflicting open-set flags")
	}
	if opts.genHeight == 0 {
		opts.genHeight = opts.genWidth
	}
	return opts, nil
}

func loadGrid(opts options) (*maze.Grid, error) {
	if opts.mazePath != "" {
		return maze.Load(opts.mazePath)
	}
	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return maze.Generate(opts.genWidth, opts.genHeight, rand.New(rand.NewSource(seed)))
}

func newEngine(opts options) (solver.Engine, error) {
	engineOpts := []solver.Option{solver.WithMaxNodes(opts.maxNodes)}
	if opts.heuristic != "" {
		h, ok := solver.HeuristicByName(opts.heuristic)
		if !ok {
			return nil, fmt.Errorf("unknown heuristic %q", opts.heuristic)
		}
		engineOpts = append(engineOpts, solver.WithHeuristic(h))
	}
	switch {
	case opts.decreaseKey:
		engineOpts = append(engineOpts, solver.WithDecreaseKey())
	case opts.lazy:
		engineOpts = append(engineOpts, solver.WithLazyReinsert())
	}
	return solver.New(opts.algorithm, engineOpts...)
}

func printReport(w io.Writer, grid *maze.Grid, report solver.Report) error {
	if err := maze.Render(w, grid, report.Path); err != nil {
		return err
	}

	var sb strings.Builder
	if report.Found {
		cells := make([]string, len(report.Path))
		for i, p := range report.Path {
			cells[i] = fmt.Sprintf("(%d,%d)", p.Row, p.Col)
		}
		fmt.Fprintf(&sb, "%s\n", strings.Join(cells, " "))
	} else {
		sb.WriteString("No path found\n")
	}
	sb.WriteString("Note: Each coordinate is laid out (row,col)\n\n")

	sb.WriteString("===STATISTICS===\n")
	fmt.Fprintf(&sb, "Nodes explored:\n%d\n", report.NodesExplored)
	fmt.Fprintf(&sb, "Time:\n%.6f\n", report.Elapsed.Seconds())
	fmt.Fprintf(&sb, "Steps in path:\n%d\n", report.PathLength())

	_, err := io.WriteString(w, sb.String())
	return err
}
