package solver

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// solveTotal counts measured solves by algorithm and outcome.
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maze_solve_total",
		Help: "Total maze solves by algorithm and result",
	}, []string{"algorithm", "result"})

	// solveDuration tracks wall-clock time spent inside Solve.
	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "maze_solve_duration_seconds",
		Help:    "Maze solve duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us to ~2.6s
	}, []string{"algorithm"})

	// solveNodesExplored tracks how many cells each solve explored.
	solveNodesExplored = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "maze_solve_nodes_explored",
		Help:    "Cells explored per maze solve",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"algorithm"})
)

// Report wraps a Result with the statistics of the run that produced it.
type Report struct {
	Algorithm string
	Result
	Start   maze.CellPosition
	Goal    maze.CellPosition
	Elapsed time.Duration
}

// PathLength returns the number of cells on the path, 0 when not found.
func (r Report) PathLength() int {
	return r.Length()
}

// Measure runs engine.Solve and records its wall-clock duration. A search
// that finds no path yields a Report with Found false and a nil error.
func Measure(ctx context.Context, engine Engine, g *maze.Grid, start, goal maze.CellPosition) (Report, error) {
	began := time.Now()
	result, err := engine.Solve(ctx, g, start, goal)
	elapsed := time.Since(began)

	report := Report{
		Algorithm: engine.Name(),
		Result:    result,
		Start:     start,
		Goal:      goal,
		Elapsed:   elapsed,
	}

	solveDuration.WithLabelValues(report.Algorithm).Observe(elapsed.Seconds())
	solveTotal.WithLabelValues(report.Algorithm, outcome(report, err)).Inc()
	if err == nil {
		solveNodesExplored.WithLabelValues(report.Algorithm).Observe(float64(result.NodesExplored))
	}

	return report, err
}

func outcome(r Report, err error) string {
	switch {
	case err != nil:
		return "error"
	case r.Found:
		return "found"
	default:
		return "not_found"
	}
}
