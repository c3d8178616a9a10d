package solver

import (
	"context"

	"github.com/beka-birhanu/vinom-solver/maze"
)

// DFS is a depth-first backtracking search. It returns the first path found
// in maze.Directions order, which need not be the shortest.
type DFS struct {
	opts Options
}

// NewDFS creates a depth-first engine. The heuristic and open-set options
// do not apply to it.
func NewDFS(opts ...Option) *DFS {
	return &DFS{opts: buildOptions(opts)}
}

// Name implements Engine.
func (d *DFS) Name() string { return AlgorithmDFS }

// frame is one level of the search: the cell entered and a cursor over the
// neighbors it had when it was entered.
type frame struct {
	cell      maze.CellPosition
	neighbors []maze.CellPosition
	next      int
}

// Solve implements Engine.
//
// Every cell entered is marked and counted once. A neighbor visited by an
// earlier branch is skipped, and a frame with no neighbors left is a dead
// end that gets popped.
func (d *DFS) Solve(ctx context.Context, g *maze.Grid, start, goal maze.CellPosition) (Result, error) {
	if err := checkEndpoints(g, start, goal); err != nil {
		return Result{}, err
	}

	visited := newVisitLayer(g)
	visited.mark(start)
	result := Result{NodesExplored: 1}

	if start == goal {
		result.Path = []maze.CellPosition{start}
		result.Found = true
		return result, nil
	}

	stack := []frame{{cell: start, neighbors: g.Neighbors(start)}}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		top := &stack[len(stack)-1]
		if top.next == len(top.neighbors) {
			stack = stack[:len(stack)-1]
			continue
		}
		next := top.neighbors[top.next]
		top.next++

		if visited.has(next) {
			continue
		}
		if d.opts.MaxNodes > 0 && result.NodesExplored >= d.opts.MaxNodes {
			return result, ErrNodeLimit
		}
		visited.mark(next)
		result.NodesExplored++

		if next == goal {
			path := make([]maze.CellPosition, 0, len(stack)+1)
			for _, f := range stack {
				path = append(path, f.cell)
			}
			result.Path = append(path, goal)
			result.Found = true
			return result, nil
		}

		stack = append(stack, frame{cell: next, neighbors: g.Neighbors(next)})
	}

	return result, nil
}

// visitLayer is a row-major visited flag per grid cell, kept apart from the
// grid so searches never write to it.
type visitLayer struct {
	width int
	cells []bool
}

func newVisitLayer(g *maze.Grid) *visitLayer {
	return &visitLayer{width: g.Width(), cells: make([]bool, g.Width()*g.Height())}
}

func (v *visitLayer) mark(pos maze.CellPosition) { v.cells[pos.Row*v.width+pos.Col] = true }

func (v *visitLayer) has(pos maze.CellPosition) bool { return v.cells[pos.Row*v.width+pos.Col] }
