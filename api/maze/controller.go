// Package mazeapi exposes maze generation, solving and run history over HTTP.
package mazeapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-solver/api/identity"
	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/service"
	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/beka-birhanu/vinom-solver/solver"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// maxSolveBodyBytes caps a solve request body.
	maxSolveBodyBytes = 8 << 20

	// statusClientClosedRequest is the nginx convention for a request the client abandoned.
	statusClientClosedRequest = 499
)

// MazeController serves the maze routes.
type MazeController struct {
	solver i.MazeSolver
	logger i.Logger
}

// NewMazeController initializes a MazeController.
func NewMazeController(s i.MazeSolver, logger i.Logger) (*MazeController, error) {
	if s == nil {
		return nil, errors.New("maze controller requires a solver")
	}
	if logger == nil {
		return nil, errors.New("maze controller requires a logger")
	}
	return &MazeController{solver: s, logger: logger}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/mazes/generate", mc.generate)
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	route.POST("/mazes/solve", mc.solve)

	runs := route.Group("/runs")
	{
		runs.GET("", mc.history)
		runs.GET("/:ID", mc.run)
	}
}

func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text, err := mc.solver.Generate(request.Width, request.Height, request.Seed)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &GenerateResponse{Maze: text})
}

// solve answers 200 whether or not a path exists; found tells them apart.
func (mc *MazeController) solve(ctx *gin.Context) {
	userID, ok := identity.UserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxSolveBodyBytes)

	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Algorithm == "" {
		request.Algorithm = solver.AlgorithmAStar
	}

	run, err := mc.solver.Solve(ctx.Request.Context(), userID, dmn.SolveRequest{
		Maze:      request.Maze,
		Algorithm: request.Algorithm,
		Heuristic: request.Heuristic,
		MaxNodes:  request.MaxNodes,
	})
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newRunResponse(run))
}

func (mc *MazeController) history(ctx *gin.Context) {
	userID, ok := identity.UserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	runs, err := mc.solver.History(ctx.Request.Context(), userID, limit)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	response := make([]RunResponse, 0, len(runs))
	for _, run := range runs {
		response = append(response, newRunResponse(run))
	}
	ctx.JSON(http.StatusOK, response)
}

func (mc *MazeController) run(ctx *gin.Context) {
	userID, ok := identity.UserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	runID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return
	}

	run, err := mc.solver.Run(ctx.Request.Context(), userID, runID)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newRunResponse(run))
}

// fail writes the status for err. Unexpected errors are logged and hidden from the client.
func (mc *MazeController) fail(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		mc.logger.Error(err.Error())
		ctx.JSON(status, gin.H{"error": "internal error"})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, maze.ErrMalformedGrid),
		errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, solver.ErrUnknownAlgorithm),
		errors.Is(err, service.ErrUnknownHeuristic):
		return http.StatusBadRequest
	case errors.Is(err, maze.ErrEndpointsNotFound),
		errors.Is(err, solver.ErrBlockedEndpoint),
		errors.Is(err, solver.ErrNodeLimit),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	case errors.Is(err, i.ErrRunNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
