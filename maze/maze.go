/*
Package maze provides the grid model used by the solvers.

A Grid is a rectangular array of cell tags addressed by CellPosition{Row, Col},
with (0, 0) at the top-left corner. The package also reads grids from text,
renders solved paths back onto them, and generates random mazes with Wilson's
algorithm.

A Grid is never written to by a search, so one instance can be shared by any
number of concurrent solves. Rendering works on a clone.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedGrid     = errors.New("malformed grid")
	ErrEndpointsNotFound = errors.New("start and goal not found on grid boundary")
	ErrOutOfBounds       = errors.New("position out of bounds")
)

// Grid represents a rectangular maze of open and wall cells.
type Grid struct {
	width  int         // Number of columns
	height int         // Number of rows
	cells  [][]CellTag // Row-major cell tags
}

// New builds a Grid from rows of tags. The rows are copied.
// Every row must be non-empty and of equal length, and only Open and Wall
// tags are accepted.
func New(rows [][]CellTag) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: grid is empty", ErrMalformedGrid)
	}

	width := len(rows[0])
	cells := make([][]CellTag, len(rows))
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedGrid, r, len(row), width)
		}
		for c, tag := range row {
			if tag != Open && tag != Wall {
				return nil, fmt.Errorf("%w: unknown cell %q at row %d col %d", ErrMalformedGrid, tag, r, c)
			}
		}
		cells[r] = append([]CellTag(nil), row...)
	}

	return &Grid{
		width:  width,
		height: len(rows),
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether pos lies inside the grid.
func (g *Grid) InBounds(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.height && pos.Col >= 0 && pos.Col < g.width
}

// CellAt returns the tag stored at pos.
func (g *Grid) CellAt(pos CellPosition) (CellTag, error) {
	if !g.InBounds(pos) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, pos.Row, pos.Col, g.height, g.width)
	}
	return g.cells[pos.Row][pos.Col], nil
}

// IsOpen reports whether pos is inside the grid and holds an Open cell.
func (g *Grid) IsOpen(pos CellPosition) bool {
	return g.InBounds(pos) && g.cells[pos.Row][pos.Col] == Open
}

// Neighbors returns the open cells adjacent to pos, in Directions order.
func (g *Grid) Neighbors(pos CellPosition) []CellPosition {
	result := make([]CellPosition, 0, len(Directions))
	for _, dir := range Directions {
		neighbor := pos.Add(dir.Delta)
		if g.IsOpen(neighbor) {
			result = append(result, neighbor)
		}
	}
	return result
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]CellTag, g.height)
	for r := range g.cells {
		cells[r] = append([]CellTag(nil), g.cells[r]...)
	}
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// SetTag overwrites the tag at pos. It is meant for render clones; searches
// never call it.
func (g *Grid) SetTag(pos CellPosition, tag CellTag) error {
	if !g.InBounds(pos) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, pos.Row, pos.Col, g.height, g.width)
	}
	g.cells[pos.Row][pos.Col] = tag
	return nil
}

// ClearMarks turns every Path and Visited cell back into Open.
func (g *Grid) ClearMarks() {
	for r := range g.cells {
		for c, tag := range g.cells[r] {
			if tag == Path || tag == Visited {
				g.cells[r][c] = Open
			}
		}
	}
}

// Mark tags every cell of path with Path.
func (g *Grid) Mark(path []CellPosition) error {
	for _, pos := range path {
		if err := g.SetTag(pos, Path); err != nil {
			return err
		}
	}
	return nil
}

// String returns the grid as maze text: cells joined by single spaces, one
// row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (2*g.width + 1))
	for _, row := range g.cells {
		for c, tag := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte(tag))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
