package maze

// CellTag classifies a single grid cell.
type CellTag byte

const (
	Open    CellTag = '-' // Open floor, traversable.
	Wall    CellTag = '#' // Wall, never traversable.
	Path    CellTag = 'P' // Render-only mark for a solved path cell.
	Visited CellTag = 'V' // Render-only mark for an explored cell.
)

// String returns the tag as it appears in maze text.
func (t CellTag) String() string {
	return string(rune(t))
}

// CellPosition represents the position of a cell in the grid.
// Rows grow downwards from the top edge, columns grow rightwards from the left edge.
type CellPosition struct {
	Row int `json:"row" bson:"row"` // Row index of the cell
	Col int `json:"col" bson:"col"` // Column index of the cell
}

// Add returns the position offset by delta.
func (cp CellPosition) Add(delta CellPosition) CellPosition {
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}

// IsAdjacent reports whether other is exactly one axis-aligned step away.
func (cp CellPosition) IsAdjacent(other CellPosition) bool {
	dr, dc := cp.Row-other.Row, cp.Col-other.Col
	return dr*dr+dc*dc == 1
}

// Direction is a named axis-aligned step.
type Direction struct {
	Name  string
	Delta CellPosition
}

// Directions lists the four moves in the order neighbors are enumerated.
// DFS returns the first path this order discovers, so the order is part of
// the package contract.
var Directions = []Direction{
	{Name: "North", Delta: CellPosition{Row: -1, Col: 0}},
	{Name: "South", Delta: CellPosition{Row: 1, Col: 0}},
	{Name: "East", Delta: CellPosition{Row: 0, Col: 1}},
	{Name: "West", Delta: CellPosition{Row: 0, Col: -1}},
}
