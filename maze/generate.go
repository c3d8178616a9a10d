package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	maxGenerateDimension = 50
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
)

// move is a step between two adjacent lattice cells.
type move struct {
	From CellPosition
	To   CellPosition
}

// lattice is the cell graph Wilson's algorithm runs over. Lattice cell
// (r, c) becomes grid cell (2r+1, 2c+1); the grid cell between two lattice
// neighbours is the wall that a move opens.
type lattice struct {
	width  int
	height int
	rng    *rand.Rand
}

// Generate builds a perfect maze of width x height lattice cells using
// Wilson's algorithm and returns it as a (2*height+1) x (2*width+1) grid.
// The grid has one opening in its top row and one in its bottom row.
// A nil rng seeds one from the clock.
func Generate(width, height int, rng *rand.Rand) (*Grid, error) {
	if min(width, height) <= 0 || max(width, height) > maxGenerateDimension {
		return nil, fmt.Errorf("%w: %dx%d (allowed 1..%d)", ErrInvalidDimensions, width, height, maxGenerateDimension)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	rows := make([][]CellTag, 2*height+1)
	for r := range rows {
		rows[r] = make([]CellTag, 2*width+1)
		for c := range rows[r] {
			rows[r][c] = Wall
		}
	}

	l := &lattice{width: width, height: height, rng: rng}
	for _, m := range l.spanningTree() {
		from := CellPosition{Row: 2*m.From.Row + 1, Col: 2*m.From.Col + 1}
		to := CellPosition{Row: 2*m.To.Row + 1, Col: 2*m.To.Col + 1}
		rows[from.Row][from.Col] = Open
		rows[to.Row][to.Col] = Open
		rows[(from.Row+to.Row)/2][(from.Col+to.Col)/2] = Open
	}
	// A 1x1 lattice has no moves.
	rows[1][1] = Open

	rows[0][1] = Open
	rows[2*height][2*width-1] = Open

	return New(rows)
}

// randomCellPosition generates a random position within the lattice.
func (l *lattice) randomCellPosition() CellPosition {
	return CellPosition{Row: l.rng.Intn(l.height), Col: l.rng.Intn(l.width)}
}

// randomUnvisitedCellPosition selects a random position that is not yet in the tree.
func (l *lattice) randomUnvisitedCellPosition(visited map[CellPosition]struct{}) CellPosition {
	for {
		pos := l.randomCellPosition()
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// neighbors returns the in-bounds lattice neighbours of pos.
func (l *lattice) neighbors(pos CellPosition) []CellPosition {
	result := make([]CellPosition, 0, len(Directions))
	for _, dir := range Directions {
		neighbor := pos.Add(dir.Delta)
		if neighbor.Row >= 0 && neighbor.Row < l.height && neighbor.Col >= 0 && neighbor.Col < l.width {
			result = append(result, neighbor)
		}
	}
	return result
}

// randomWalk walks from an unvisited cell until it hits the tree and returns
// the loop-erased path as moves. Overwriting the exit of a revisited cell
// erases the loop.
func (l *lattice) randomWalk(visited map[CellPosition]struct{}) []move {
	start := l.randomUnvisitedCellPosition(visited)
	exits := make(map[CellPosition]CellPosition)

	cell := start
	for {
		neighbors := l.neighbors(cell)
		next := neighbors[l.rng.Intn(len(neighbors))]
		exits[cell] = next
		if _, included := visited[next]; included {
			break
		}
		cell = next
	}

	var moves []move
	for cell = start; ; cell = exits[cell] {
		if _, included := visited[cell]; included {
			break
		}
		moves = append(moves, move{From: cell, To: exits[cell]})
		visited[cell] = struct{}{}
	}
	return moves
}

// spanningTree returns the moves of a uniform spanning tree of the lattice.
func (l *lattice) spanningTree() []move {
	visited := make(map[CellPosition]struct{}, l.width*l.height)
	visited[l.randomCellPosition()] = struct{}{}

	var tree []move
	for len(visited) < l.width*l.height {
		tree = append(tree, l.randomWalk(visited)...)
	}
	return tree
}
