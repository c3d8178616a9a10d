package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMaze(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestRun(t *testing.T) {
	t.Run("solves a file", func(t *testing.T) {
		path := writeMaze(t, "- - -\n# - #\n- - -\n")
		var stdout, stderr bytes.Buffer

		code := run([]string{"-maze", path}, &stdout, &stderr)
		require.Equal(t, 0, code, stderr.String())

		out := stdout.String()
		assert.Contains(t, out, "P P -\n# P #\nP P -\n\n")
		assert.Contains(t, out, "(0,0) (0,1) (1,1) (2,1) (2,0)\n")
		assert.Contains(t, out, "Note: Each coordinate is laid out (row,col)\n")
		assert.Contains(t, out, "===STATISTICS===\n")
		assert.Contains(t, out, "Steps in path:\n5\n")
		assert.Regexp(t, regexp.MustCompile(`Time:\n\d+\.\d{6}\n`), out)
	})

	t.Run("no path exits zero", func(t *testing.T) {
		path := writeMaze(t, "- # #\n# # #\n# # -\n")
		var stdout, stderr bytes.Buffer

		code := run([]string{"-maze", path, "-algo", "dfs"}, &stdout, &stderr)
		assert.Equal(t, 0, code)
		assert.Contains(t, stdout.String(), "No path found\n")
		assert.Contains(t, stdout.String(), "Nodes explored:\n1\n")
		assert.Contains(t, stdout.String(), "Steps in path:\n0\n")
	})

	t.Run("generated maze", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-gen-width", "5", "-seed", "3", "-decrease-key", "-heuristic", "euclidean"}, &stdout, &stderr)
		require.Equal(t, 0, code, stderr.String())
		assert.NotContains(t, stdout.String(), "No path found")
	})

	failures := map[string][]string{
		"malformed":         {"-maze", writeMaze(t, "- x -\n")},
		"missing file":      {"-maze", filepath.Join(t.TempDir(), "absent.txt")},
		"no endpoints":      {"-maze", writeMaze(t, "# # #\n# - #\n# # #\n")},
		"unknown algorithm": {"-maze", writeMaze(t, "- - -\n"), "-algo", "bfs"},
		"unknown heuristic": {"-maze", writeMaze(t, "- - -\n"), "-heuristic", "chebyshev"},
		"node limit":        {"-maze", writeMaze(t, "- - - - - -\n"), "-max-nodes", "2"},
		"bad dimensions":    {"-gen-width", "99"},
	}
	for name, args := range failures {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, 1, run(args, &stdout, &stderr))
			assert.Contains(t, stderr.String(), "[ERROR]")
		})
	}

	t.Run("lazy reinsert", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-maze", writeMaze(t, "- - -\n# - #\n- - -\n"), "-lazy-reinsert"}, &stdout, &stderr)
		require.Equal(t, 0, code, stderr.String())
		assert.Contains(t, stdout.String(), "Steps in path:\n5\n")
	})

	t.Run("conflicting open-set flags", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, run([]string{"-gen-width", "3", "-decrease-key", "-lazy-reinsert"}, &stdout, &stderr))
	})

	t.Run("usage", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, run(nil, &stdout, &stderr))
		assert.Contains(t, stderr.String(), "-maze")
	})
}
