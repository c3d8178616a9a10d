package solver

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(t *testing.T, lines ...string) *maze.Grid {
	t.Helper()
	g, err := maze.Parse(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	return g
}

func pos(row, col int) maze.CellPosition {
	return maze.CellPosition{Row: row, Col: col}
}

// engines returns every engine configuration under test.
func engines() map[string]Engine {
	return map[string]Engine{
		"astar":               NewAStar(),
		"astar lazy-reinsert": NewAStar(WithLazyReinsert()),
		"astar decrease-key":  NewAStar(WithDecreaseKey()),
		"astar euclidean":     NewAStar(WithHeuristic(Euclidean)),
		"dfs":                 NewDFS(),
	}
}

// bfsDistance returns the shortest path length in cells, or 0 if unreachable.
func bfsDistance(g *maze.Grid, start, goal maze.CellPosition) int {
	dist := map[maze.CellPosition]int{start: 1}
	queue := []maze.CellPosition{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur]
		}
		for _, n := range g.Neighbors(cur) {
			if _, ok := dist[n]; !ok {
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}
	return 0
}

func assertValidPath(t *testing.T, g *maze.Grid, path []maze.CellPosition, start, goal maze.CellPosition) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])

	seen := make(map[maze.CellPosition]bool, len(path))
	for i, p := range path {
		assert.True(t, g.IsOpen(p), "cell %v is not open", p)
		assert.False(t, seen[p], "cell %v repeated", p)
		seen[p] = true
		if i > 0 {
			assert.True(t, path[i-1].IsAdjacent(p), "%v -> %v not adjacent", path[i-1], p)
		}
	}
}

func TestPlusGrid(t *testing.T) {
	g := grid(t,
		"- - -",
		"# - #",
		"- - -",
	)

	for name, e := range engines() {
		t.Run(name, func(t *testing.T) {
			res, err := e.Solve(context.Background(), g, pos(0, 0), pos(2, 2))
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, 5, res.Length())
			assertValidPath(t, g, res.Path, pos(0, 0), pos(2, 2))
		})
	}

	res, err := NewDFS().Solve(context.Background(), g, pos(0, 0), pos(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []maze.CellPosition{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}, res.Path)
	assert.Equal(t, 5, res.NodesExplored)
}

func TestWalledInGoal(t *testing.T) {
	g := grid(t,
		"- # #",
		"# # #",
		"# # -",
	)

	for name, e := range engines() {
		t.Run(name, func(t *testing.T) {
			res, err := e.Solve(context.Background(), g, pos(0, 0), pos(2, 2))
			require.NoError(t, err)
			assert.False(t, res.Found)
			assert.Nil(t, res.Path)
			assert.Equal(t, 1, res.NodesExplored)
		})
	}
}

func TestCorridor(t *testing.T) {
	const n = 9
	row := strings.TrimSpace(strings.Repeat("- ", n))
	column := make([]string, n)
	for i := range column {
		column[i] = "-"
	}

	fixtures := map[string]struct {
		g           *maze.Grid
		start, goal maze.CellPosition
	}{
		"horizontal": {grid(t, row), pos(0, 0), pos(0, n-1)},
		"reversed":   {grid(t, row), pos(0, n-1), pos(0, 0)},
		"vertical":   {grid(t, column...), pos(0, 0), pos(n-1, 0)},
	}

	for fname, f := range fixtures {
		for ename, e := range engines() {
			t.Run(fname+"/"+ename, func(t *testing.T) {
				res, err := e.Solve(context.Background(), f.g, f.start, f.goal)
				require.NoError(t, err)
				require.True(t, res.Found)
				assert.Equal(t, n, res.Length())
				assert.Equal(t, n, res.NodesExplored)
				assertValidPath(t, f.g, res.Path, f.start, f.goal)
			})
		}
	}
}

func TestStartIsGoal(t *testing.T) {
	g := grid(t,
		"- - -",
		"- - -",
	)

	for name, e := range engines() {
		t.Run(name, func(t *testing.T) {
			res, err := e.Solve(context.Background(), g, pos(1, 1), pos(1, 1))
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, []maze.CellPosition{{Row: 1, Col: 1}}, res.Path)
			assert.Equal(t, 1, res.NodesExplored)
		})
	}
}

func TestDFSIsNotShortest(t *testing.T) {
	g := grid(t,
		"- - -",
		"- # -",
		"- - -",
	)

	dfs, err := NewDFS().Solve(context.Background(), g, pos(0, 0), pos(0, 1))
	require.NoError(t, err)
	assert.Equal(t, 8, dfs.Length(), "south-first order walks the long way round")
	assertValidPath(t, g, dfs.Path, pos(0, 0), pos(0, 1))

	astar, err := NewAStar().Solve(context.Background(), g, pos(0, 0), pos(0, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, astar.Length())
}

func TestEndpointErrors(t *testing.T) {
	g := grid(t,
		"- #",
		"- -",
	)

	for name, e := range engines() {
		t.Run(name, func(t *testing.T) {
			_, err := e.Solve(context.Background(), g, pos(0, 0), pos(0, 1))
			assert.ErrorIs(t, err, ErrBlockedEndpoint)

			_, err = e.Solve(context.Background(), g, pos(-1, 0), pos(1, 1))
			assert.ErrorIs(t, err, maze.ErrOutOfBounds)

			_, err = e.Solve(context.Background(), g, pos(0, 0), pos(2, 2))
			assert.ErrorIs(t, err, maze.ErrOutOfBounds)
		})
	}
}

func TestNodeLimit(t *testing.T) {
	g := grid(t, "- - - - - - - -")

	for _, e := range []Engine{NewAStar(WithMaxNodes(3)), NewDFS(WithMaxNodes(3))} {
		t.Run(e.Name(), func(t *testing.T) {
			res, err := e.Solve(context.Background(), g, pos(0, 0), pos(0, 7))
			assert.ErrorIs(t, err, ErrNodeLimit)
			assert.False(t, res.Found)
			assert.Equal(t, 3, res.NodesExplored)
		})
	}

	res, err := NewAStar(WithMaxNodes(8)).Solve(context.Background(), g, pos(0, 0), pos(0, 7))
	require.NoError(t, err)
	assert.True(t, res.Found)
}

func TestCanceledContext(t *testing.T) {
	g := grid(t, "- - -")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, e := range engines() {
		t.Run(name, func(t *testing.T) {
			_, err := e.Solve(ctx, g, pos(0, 0), pos(0, 2))
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

// randomGrid fills a rows x cols grid with walls at the given density.
func randomGrid(t *testing.T, rng *rand.Rand, rows, cols int, density float64) *maze.Grid {
	t.Helper()
	cells := make([][]maze.CellTag, rows)
	for r := range cells {
		cells[r] = make([]maze.CellTag, cols)
		for c := range cells[r] {
			cells[r][c] = maze.Open
			if rng.Float64() < density {
				cells[r][c] = maze.Wall
			}
		}
	}
	g, err := maze.New(cells)
	require.NoError(t, err)
	return g
}

func randomOpenCell(rng *rand.Rand, g *maze.Grid) (maze.CellPosition, bool) {
	for tries := 0; tries < 100; tries++ {
		p := pos(rng.Intn(g.Height()), rng.Intn(g.Width()))
		if g.IsOpen(p) {
			return p, true
		}
	}
	return maze.CellPosition{}, false
}

func TestPathProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))

	type fixture struct {
		g           *maze.Grid
		start, goal maze.CellPosition
	}
	var fixtures []fixture

	for i := 0; i < 60; i++ {
		g := randomGrid(t, rng, 6+rng.Intn(10), 6+rng.Intn(10), 0.3)
		start, ok1 := randomOpenCell(rng, g)
		goal, ok2 := randomOpenCell(rng, g)
		if ok1 && ok2 {
			fixtures = append(fixtures, fixture{g, start, goal})
		}
	}
	for i := 0; i < 10; i++ {
		g, err := maze.Generate(4+rng.Intn(12), 4+rng.Intn(12), rng)
		require.NoError(t, err)
		start, goal, err := g.FindBoundaryEndpoints()
		require.NoError(t, err)
		fixtures = append(fixtures, fixture{g, start, goal})
	}

	for i, f := range fixtures {
		shortest := bfsDistance(f.g, f.start, f.goal)

		for name, e := range engines() {
			res, err := e.Solve(context.Background(), f.g, f.start, f.goal)
			require.NoError(t, err)

			if shortest == 0 {
				assert.False(t, res.Found, "fixture %d %s", i, name)
				continue
			}
			require.True(t, res.Found, "fixture %d %s", i, name)
			assertValidPath(t, f.g, res.Path, f.start, f.goal)

			if e.Name() == AlgorithmAStar {
				assert.Equal(t, shortest, res.Length(), "fixture %d %s", i, name)
			} else {
				assert.GreaterOrEqual(t, res.Length(), shortest, "fixture %d %s", i, name)
			}

			again, err := e.Solve(context.Background(), f.g, f.start, f.goal)
			require.NoError(t, err)
			assert.Equal(t, res, again, "fixture %d %s not idempotent", i, name)
		}
	}
}

func TestNew(t *testing.T) {
	for _, name := range Algorithms() {
		e, err := New(name)
		require.NoError(t, err)
		assert.Equal(t, name, e.Name())
	}

	_, err := New("bfs")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
