package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/beka-birhanu/vinom-solver/solver"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
	cacheKeyPrefix      = "solver:result"
)

var (
	ErrUnknownHeuristic = errors.New("unknown heuristic")
	ErrMissingRunRepo   = errors.New("solve service requires a run repository")
	ErrMissingLogger    = errors.New("solve service requires a logger")
)

// SolveConfig holds the dependencies of a SolveService. Cache is optional.
type SolveConfig struct {
	RunRepo  i.RunRepo
	Cache    i.ResultCache
	Logger   i.Logger
	Timeout  time.Duration // Per-solve deadline, 0 for none
	MaxNodes int           // Default node cap, 0 for none
}

// SolveService implements i.MazeSolver.
type SolveService struct {
	runRepo  i.RunRepo
	cache    i.ResultCache
	logger   i.Logger
	timeout  time.Duration
	maxNodes int
	tracer   trace.Tracer
}

// cachedOutcome is what the result cache stores for a grid/algorithm pair.
type cachedOutcome struct {
	Path          []maze.CellPosition `bson:"path"`
	Found         bool                `bson:"found"`
	NodesExplored int                 `bson:"nodesExplored"`
	Elapsed       time.Duration       `bson:"elapsed"`
}

func NewSolveService(c SolveConfig) (*SolveService, error) {
	if c.RunRepo == nil {
		return nil, ErrMissingRunRepo
	}
	if c.Logger == nil {
		return nil, ErrMissingLogger
	}
	return &SolveService{
		runRepo:  c.RunRepo,
		cache:    c.Cache,
		logger:   c.Logger,
		timeout:  c.Timeout,
		maxNodes: c.MaxNodes,
		tracer:   otel.Tracer("github.com/beka-birhanu/vinom-solver/service"),
	}, nil
}

// Solve parses the maze, locates its boundary endpoints, searches it and records the run.
func (s *SolveService) Solve(ctx context.Context, userID uuid.UUID, request dmn.SolveRequest) (*dmn.Run, error) {
	ctx, span := s.tracer.Start(ctx, "service.SolveService.Solve",
		trace.WithAttributes(
			attribute.String("algorithm", request.Algorithm),
			attribute.String("heuristic", request.Heuristic),
		),
	)
	defer span.End()

	run, err := s.solve(ctx, userID, request)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "solve failed")
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("width", run.Width),
		attribute.Int("height", run.Height),
		attribute.Bool("found", run.Found),
		attribute.Bool("cached", run.Cached),
		attribute.Int("nodes_explored", run.NodesExplored),
		attribute.Int("path_length", run.PathLength()),
	)
	span.SetStatus(codes.Ok, "solved")
	return run, nil
}

func (s *SolveService) solve(ctx context.Context, userID uuid.UUID, request dmn.SolveRequest) (*dmn.Run, error) {
	grid, err := maze.Parse(strings.NewReader(request.Maze))
	if err != nil {
		return nil, err
	}

	start, goal, err := grid.FindBoundaryEndpoints()
	if err != nil {
		return nil, err
	}

	maxNodes := s.maxNodes
	if request.MaxNodes > 0 {
		maxNodes = request.MaxNodes
	}
	opts := []solver.Option{solver.WithMaxNodes(maxNodes)}
	label := request.Algorithm
	if request.Heuristic != "" {
		h, ok := solver.HeuristicByName(request.Heuristic)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, request.Heuristic)
		}
		opts = append(opts, solver.WithHeuristic(h))
		if request.Heuristic != solver.DefaultHeuristic {
			label += "+" + request.Heuristic
		}
	}

	engine, err := solver.New(request.Algorithm, opts...)
	if err != nil {
		return nil, err
	}

	mazeHash := hashGrid(grid)
	key := fmt.Sprintf("%s:%s:%s", cacheKeyPrefix, label, mazeHash)

	report, cached, err := s.search(ctx, key, engine, grid, start, goal, maxNodes)
	if err != nil {
		return nil, err
	}

	rendered, err := maze.RenderString(grid, report.Path)
	if err != nil {
		return nil, err
	}

	run := dmn.NewRun(dmn.RunConfig{
		UserID:   userID,
		MazeHash: mazeHash,
		Grid:     grid,
		Report:   report,
		Cached:   cached,
		Rendered: rendered,
	})
	if err := s.runRepo.Save(ctx, run); err != nil {
		return nil, fmt.Errorf("saving run: %w", err)
	}

	s.logger.Info(fmt.Sprintf("run %s: %s on %dx%d found=%t nodes=%d cached=%t",
		run.ID, run.Algorithm, run.Width, run.Height, run.Found, run.NodesExplored, run.Cached))
	return run, nil
}

// search serves the outcome from the cache when possible, otherwise runs the
// engine under the lock for key and stores what it found.
func (s *SolveService) search(ctx context.Context, key string, engine solver.Engine, grid *maze.Grid, start, goal maze.CellPosition, maxNodes int) (solver.Report, bool, error) {
	if report, ok := s.lookup(ctx, key, engine, start, goal, maxNodes); ok {
		return report, true, nil
	}

	if s.cache != nil {
		unlock, err := s.cache.Lock(ctx, key)
		if err != nil {
			s.logger.Warning(fmt.Sprintf("solving %s without lock: %v", key, err))
		} else {
			defer func() {
				if err := unlock(); err != nil {
					s.logger.Warning(fmt.Sprintf("releasing lock %s: %v", key, err))
				}
			}()
			// Another holder may have stored it while we waited.
			if report, ok := s.lookup(ctx, key, engine, start, goal, maxNodes); ok {
				return report, true, nil
			}
		}
	}

	solveCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	report, err := solver.Measure(solveCtx, engine, grid, start, goal)
	if err != nil {
		return report, false, err
	}

	s.store(ctx, key, report)
	return report, false, nil
}

func (s *SolveService) lookup(ctx context.Context, key string, engine solver.Engine, start, goal maze.CellPosition, maxNodes int) (solver.Report, bool) {
	if s.cache == nil {
		return solver.Report{}, false
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, i.ErrCacheMiss) {
			s.logger.Warning(fmt.Sprintf("reading cache %s: %v", key, err))
		}
		return solver.Report{}, false
	}

	var outcome cachedOutcome
	if err := bson.Unmarshal(data, &outcome); err != nil {
		s.logger.Warning(fmt.Sprintf("decoding cache %s: %v", key, err))
		return solver.Report{}, false
	}
	// A tighter cap than the cached search used would have stopped it.
	if maxNodes > 0 && outcome.NodesExplored > maxNodes {
		return solver.Report{}, false
	}

	return solver.Report{
		Algorithm: engine.Name(),
		Result: solver.Result{
			Path:          outcome.Path,
			Found:         outcome.Found,
			NodesExplored: outcome.NodesExplored,
		},
		Start:   start,
		Goal:    goal,
		Elapsed: outcome.Elapsed,
	}, true
}

func (s *SolveService) store(ctx context.Context, key string, report solver.Report) {
	if s.cache == nil {
		return
	}

	data, err := bson.Marshal(cachedOutcome{
		Path:          report.Path,
		Found:         report.Found,
		NodesExplored: report.NodesExplored,
		Elapsed:       report.Elapsed,
	})
	if err != nil {
		s.logger.Warning(fmt.Sprintf("encoding cache %s: %v", key, err))
		return
	}
	if err := s.cache.Set(ctx, key, data); err != nil {
		s.logger.Warning(fmt.Sprintf("writing cache %s: %v", key, err))
	}
}

// Run returns the run with runID when userID owns it.
func (s *SolveService) Run(ctx context.Context, userID, runID uuid.UUID) (*dmn.Run, error) {
	run, err := s.runRepo.ByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.UserID != userID {
		return nil, i.ErrRunNotFound
	}
	return run, nil
}

// History lists the user's latest runs. limit is clamped to [1, 100]; 0 means 20.
func (s *SolveService) History(ctx context.Context, userID uuid.UUID, limit int) ([]*dmn.Run, error) {
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}
	return s.runRepo.ByUser(ctx, userID, limit)
}

// Generate returns the text of a random perfect maze. A zero seed draws one from the clock.
func (s *SolveService) Generate(width, height int, seed int64) (string, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	grid, err := maze.Generate(width, height, rand.New(rand.NewSource(seed)))
	if err != nil {
		return "", err
	}
	return grid.String(), nil
}

func hashGrid(g *maze.Grid) string {
	sum := sha256.Sum256([]byte(g.String()))
	return hex.EncodeToString(sum[:])
}
