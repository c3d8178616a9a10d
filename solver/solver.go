/*
Package solver finds paths through a maze.Grid.

Two engines are provided: AStar, a best-first search that returns a shortest
path, and DFS, an explicit-stack depth-first search that returns the first
path its fixed neighbor order discovers. Both share the Engine interface and
never modify the grid, so one grid can be searched concurrently.

An unreachable goal is not an error: Solve returns a Result with Found set to
false. Errors are reserved for bad endpoints, cancellation and the optional
node limit.
*/
package solver

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/beka-birhanu/vinom-solver/maze"
)

const (
	AlgorithmAStar = "astar"
	AlgorithmDFS   = "dfs"
)

var (
	ErrBlockedEndpoint  = errors.New("start or goal is not an open cell")
	ErrNodeLimit        = errors.New("node limit reached")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Engine searches a grid for a path between two cells.
type Engine interface {
	// Name returns the algorithm identifier, e.g. "astar".
	Name() string
	// Solve searches g from start to goal. The returned Result carries the
	// exploration counter even when an error is returned.
	Solve(ctx context.Context, g *maze.Grid, start, goal maze.CellPosition) (Result, error)
}

// Result contains the outcome of a single search.
type Result struct {
	Path          []maze.CellPosition // start to goal inclusive, nil when not found
	Found         bool
	NodesExplored int
}

// Length returns the number of cells on the path.
func (r Result) Length() int {
	return len(r.Path)
}

// Options defines parameters shared by the engines.
type Options struct {
	// Heuristic used by A*. Defaults to Manhattan.
	Heuristic Heuristic
	// MaxNodes caps the number of explored cells; 0 means no cap.
	MaxNodes int
	// OpenSet chooses how A* treats a queued cell whose score improves.
	OpenSet OpenSetPolicy
}

// OpenSetPolicy is the A* rule for cells already in the open set.
type OpenSetPolicy int

const (
	// SinglePush keeps one heap entry per cell for the whole search. An
	// improved cell keeps its first priority and is expanded with its
	// current gScore when popped. Cells are never queued twice.
	SinglePush OpenSetPolicy = iota
	// LazyReinsert pushes a second entry with the better priority and skips
	// the stale one on pop.
	LazyReinsert
	// DecreaseKey updates the queued entry in place.
	DecreaseKey
)

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic sets the A* heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithMaxNodes aborts a search with ErrNodeLimit once it would explore more
// than n cells.
func WithMaxNodes(n int) Option {
	return func(o *Options) { o.MaxNodes = n }
}

// WithLazyReinsert makes A* push a better duplicate for an improved cell.
func WithLazyReinsert() Option {
	return func(o *Options) { o.OpenSet = LazyReinsert }
}

// WithDecreaseKey switches A* to in-place priority updates.
func WithDecreaseKey() Option {
	return func(o *Options) { o.OpenSet = DecreaseKey }
}

func buildOptions(opts []Option) Options {
	o := Options{Heuristic: Manhattan}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Heuristic == nil {
		o.Heuristic = Manhattan
	}
	if o.MaxNodes < 0 {
		o.MaxNodes = 0
	}
	return o
}

// New returns the engine registered under algorithm.
func New(algorithm string, opts ...Option) (Engine, error) {
	switch algorithm {
	case AlgorithmAStar:
		return NewAStar(opts...), nil
	case AlgorithmDFS:
		return NewDFS(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// Algorithms lists the names accepted by New.
func Algorithms() []string {
	return []string{AlgorithmAStar, AlgorithmDFS}
}

// checkEndpoints rejects endpoints outside the grid or on walls.
func checkEndpoints(g *maze.Grid, start, goal maze.CellPosition) error {
	for _, pos := range []maze.CellPosition{start, goal} {
		tag, err := g.CellAt(pos)
		if err != nil {
			return err
		}
		if tag != maze.Open {
			return fmt.Errorf("%w: (%d,%d) is %q", ErrBlockedEndpoint, pos.Row, pos.Col, tag)
		}
	}
	return nil
}

// reconstructPath walks cameFrom back from goal until a cell with no
// predecessor, which is the start.
func reconstructPath(cameFrom map[maze.CellPosition]maze.CellPosition, goal maze.CellPosition) []maze.CellPosition {
	path := []maze.CellPosition{goal}
	current := goal
	for {
		previous, exists := cameFrom[current]
		if !exists {
			break
		}
		path = append(path, previous)
		current = previous
	}
	slices.Reverse(path)
	return path
}
