package solver

import (
	"container/heap"
	"context"

	"github.com/beka-birhanu/vinom-solver/maze"
)

// AStar is a best-first search with uniform edge cost 1.
type AStar struct {
	opts Options
}

// NewAStar creates an A* engine.
func NewAStar(opts ...Option) *AStar {
	return &AStar{opts: buildOptions(opts)}
}

// Name implements Engine.
func (a *AStar) Name() string { return AlgorithmAStar }

// Solve implements Engine.
//
// NodesExplored counts distinct cells ever added to the open set, the start
// included. How an improved cell is requeued depends on Options.OpenSet; the
// default queues every cell exactly once.
func (a *AStar) Solve(ctx context.Context, g *maze.Grid, start, goal maze.CellPosition) (Result, error) {
	if err := checkEndpoints(g, start, goal); err != nil {
		return Result{}, err
	}

	h := a.opts.Heuristic
	policy := a.opts.OpenSet
	openSet := make(openQueue, 0)
	heap.Init(&openSet)
	var seq uint64

	push := func(cell maze.CellPosition, gScore int) *openItem {
		item := &openItem{cell: cell, g: gScore, f: float64(gScore) + h(cell, goal), seq: seq}
		seq++
		heap.Push(&openSet, item)
		return item
	}

	gScore := map[maze.CellPosition]int{start: 0}
	cameFrom := make(map[maze.CellPosition]maze.CellPosition)
	// queued tracks live heap entries for DecreaseKey only.
	queued := make(map[maze.CellPosition]*openItem)
	queued[start] = push(start, 0)

	result := Result{NodesExplored: 1}
	for openSet.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		current := heap.Pop(&openSet).(*openItem)
		switch policy {
		case LazyReinsert:
			if current.g > gScore[current.cell] {
				continue
			}
		case DecreaseKey:
			delete(queued, current.cell)
		}

		if current.cell == goal {
			result.Path = reconstructPath(cameFrom, goal)
			result.Found = true
			return result, nil
		}

		tentativeG := gScore[current.cell] + 1
		for _, neighbor := range g.Neighbors(current.cell) {
			known, discovered := gScore[neighbor]
			if discovered && tentativeG >= known {
				continue
			}

			if !discovered {
				if a.opts.MaxNodes > 0 && result.NodesExplored >= a.opts.MaxNodes {
					return result, ErrNodeLimit
				}
				result.NodesExplored++
			}

			cameFrom[neighbor] = current.cell
			gScore[neighbor] = tentativeG

			switch {
			case !discovered:
				item := push(neighbor, tentativeG)
				if policy == DecreaseKey {
					queued[neighbor] = item
				}
			case policy == LazyReinsert:
				push(neighbor, tentativeG)
			case policy == DecreaseKey:
				if item, ok := queued[neighbor]; ok {
					item.g = tentativeG
					item.f = float64(tentativeG) + h(neighbor, goal)
					heap.Fix(&openSet, item.index)
				} else {
					queued[neighbor] = push(neighbor, tentativeG)
				}
			}
		}
	}

	return result, nil
}
