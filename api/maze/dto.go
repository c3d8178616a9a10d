package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/maze"
)

// SolveRequest asks for a path through a maze given as text.
type SolveRequest struct {
	Maze      string `json:"maze" binding:"required"`
	Algorithm string `json:"algorithm"`
	Heuristic string `json:"heuristic"`
	MaxNodes  int    `json:"max_nodes" binding:"min=0"`
}

// GenerateRequest asks for a random perfect maze of width x height cells.
type GenerateRequest struct {
	Width  int   `json:"width" binding:"required,min=1,max=50"`
	Height int   `json:"height" binding:"required,min=1,max=50"`
	Seed   int64 `json:"seed"`
}

// GenerateResponse carries the generated maze text.
type GenerateResponse struct {
	Maze string `json:"maze"`
}

// RunResponse represents one solve run.
type RunResponse struct {
	ID             string              `json:"id"`
	Algorithm      string              `json:"algorithm"`
	MazeHash       string              `json:"maze_hash"`
	Width          int                 `json:"width"`
	Height         int                 `json:"height"`
	Start          maze.CellPosition   `json:"start"`
	Goal           maze.CellPosition   `json:"goal"`
	Found          bool                `json:"found"`
	Path           []maze.CellPosition `json:"path"`
	PathLength     int                 `json:"path_length"`
	NodesExplored  int                 `json:"nodes_explored"`
	ElapsedSeconds float64             `json:"elapsed_seconds"`
	Cached         bool                `json:"cached"`
	Rendered       string              `json:"rendered,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

func newRunResponse(run *dmn.Run) RunResponse {
	path := run.Path
	if path == nil {
		path = []maze.CellPosition{}
	}
	return RunResponse{
		ID:             run.ID.String(),
		Algorithm:      run.Algorithm,
		MazeHash:       run.MazeHash,
		Width:          run.Width,
		Height:         run.Height,
		Start:          run.Start,
		Goal:           run.Goal,
		Found:          run.Found,
		Path:           path,
		PathLength:     run.PathLength(),
		NodesExplored:  run.NodesExplored,
		ElapsedSeconds: run.Elapsed.Seconds(),
		Cached:         run.Cached,
		Rendered:       run.Rendered,
		CreatedAt:      run.CreatedAt,
	}
}
