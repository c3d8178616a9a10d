package solver

import (
	"math"

	"github.com/beka-birhanu/vinom-solver/maze"
)

// Heuristic returns the estimated cost from one cell to another.
// A* stays optimal only if it never overestimates the true remaining cost.
type Heuristic func(from, to maze.CellPosition) float64

// Manhattan is the axis-aligned step count between two cells, exact on an
// open grid with unit moves.
func Manhattan(from, to maze.CellPosition) float64 {
	return math.Abs(float64(to.Row-from.Row)) + math.Abs(float64(to.Col-from.Col))
}

// Euclidean is the straight-line distance between two cells.
func Euclidean(from, to maze.CellPosition) float64 {
	return math.Hypot(float64(to.Row-from.Row), float64(to.Col-from.Col))
}

// DefaultHeuristic names the heuristic A* uses when none is given.
const DefaultHeuristic = "manhattan"

var heuristics = map[string]Heuristic{
	DefaultHeuristic: Manhattan,
	"euclidean": Euclidean,
}

// HeuristicByName looks up a heuristic by its lower-case name.
func HeuristicByName(name string) (Heuristic, bool) {
	h, ok := heuristics[name]
	return h, ok
}
