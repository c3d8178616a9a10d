package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/google/uuid"
)

// MazeSolver solves, generates and recalls mazes on behalf of users.
type MazeSolver interface {
	// Solve parses the request maze, finds its endpoints and searches it.
	// A maze with no path yields a Run with Found false, not an error.
	Solve(ctx context.Context, userID uuid.UUID, request dmn.SolveRequest) (*dmn.Run, error)

	// Run returns a stored run owned by userID.
	Run(ctx context.Context, userID, runID uuid.UUID) (*dmn.Run, error)

	// History lists the user's most recent runs.
	History(ctx context.Context, userID uuid.UUID, limit int) ([]*dmn.Run, error)

	// Generate builds a random maze of width x height cells and returns its text.
	Generate(width, height int, seed int64) (string, error)
}
