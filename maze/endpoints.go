package maze

import "fmt"

// boundaryScans returns the four edges in scan order: top row and bottom row
// left to right, then left column and right column top to bottom.
func (g *Grid) boundaryScans() [][]CellPosition {
	top := make([]CellPosition, 0, g.width)
	bottom := make([]CellPosition, 0, g.width)
	for col := 0; col < g.width; col++ {
		top = append(top, CellPosition{Row: 0, Col: col})
		bottom = append(bottom, CellPosition{Row: g.height - 1, Col: col})
	}

	left := make([]CellPosition, 0, g.height)
	right := make([]CellPosition, 0, g.height)
	for row := 0; row < g.height; row++ {
		left = append(left, CellPosition{Row: row, Col: 0})
		right = append(right, CellPosition{Row: row, Col: g.width - 1})
	}

	return [][]CellPosition{top, bottom, left, right}
}

// FindBoundaryEndpoints locates the maze entry and exit.
//
// Each edge contributes its first open cell; the first two distinct cells
// collected are returned as start and goal. A cell seen by two edges (a
// corner, or the only row of a one-row grid) is collected once, so start and
// goal always differ.
func (g *Grid) FindBoundaryEndpoints() (CellPosition, CellPosition, error) {
	found := make([]CellPosition, 0, 2)

	for _, edge := range g.boundaryScans() {
		for _, pos := range edge {
			if !g.IsOpen(pos) {
				continue
			}
			if len(found) == 0 || found[0] != pos {
				found = append(found, pos)
			}
			break
		}
		if len(found) == 2 {
			return found[0], found[1], nil
		}
	}

	return CellPosition{}, CellPosition{}, fmt.Errorf("%w: found %d open boundary cell(s)", ErrEndpointsNotFound, len(found))
}
