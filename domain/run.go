// Package domain holds the records the service persists: accounts and solve runs.
package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/solver"
	"github.com/google/uuid"
)

// SolveRequest asks for a path through a maze given as text.
type SolveRequest struct {
	Maze      string // Maze text, '-' open and '#' wall, space separated
	Algorithm string // "astar" or "dfs"
	Heuristic string // Optional A* heuristic name
	MaxNodes  int    // Optional node cap, 0 uses the service default
}

// Run is the history record of one solve.
type Run struct {
	ID            uuid.UUID           `bson:"_id"`
	UserID        uuid.UUID           `bson:"userId"`
	Algorithm     string              `bson:"algorithm"`
	MazeHash      string              `bson:"mazeHash"`
	Width         int                 `bson:"width"`
	Height        int                 `bson:"height"`
	Start         maze.CellPosition   `bson:"start"`
	Goal          maze.CellPosition   `bson:"goal"`
	Found         bool                `bson:"found"`
	Path          []maze.CellPosition `bson:"path"`
	NodesExplored int                 `bson:"nodesExplored"`
	Elapsed       time.Duration       `bson:"elapsed"`
	Cached        bool                `bson:"cached"`
	Rendered      string              `bson:"rendered"`
	CreatedAt     time.Time           `bson:"createdAt"`
}

// RunConfig holds the inputs NewRun records.
type RunConfig struct {
	UserID   uuid.UUID
	MazeHash string
	Grid     *maze.Grid
	Report   solver.Report
	Cached   bool
	Rendered string
}

// NewRun creates a Run with a fresh ID from a solver report.
func NewRun(c RunConfig) *Run {
	return &Run{
		ID:            uuid.New(),
		UserID:        c.UserID,
		Algorithm:     c.Report.Algorithm,
		MazeHash:      c.MazeHash,
		Width:         c.Grid.Width(),
		Height:        c.Grid.Height(),
		Start:         c.Report.Start,
		Goal:          c.Report.Goal,
		Found:         c.Report.Found,
		Path:          c.Report.Path,
		NodesExplored: c.Report.NodesExplored,
		Elapsed:       c.Report.Elapsed,
		Cached:        c.Cached,
		Rendered:      c.Rendered,
		CreatedAt:     time.Now().UTC(),
	}
}

// PathLength returns the number of cells on the path.
func (r *Run) PathLength() int {
	return len(r.Path)
}
