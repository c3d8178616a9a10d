package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBoundaryEndpoints(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		start CellPosition
		goal  CellPosition
	}{
		{
			name: "top and bottom openings",
			lines: []string{
				"# - # #",
				"# - - #",
				"# # - #",
			},
			start: CellPosition{Row: 0, Col: 1},
			goal:  CellPosition{Row: 2, Col: 2},
		},
		{
			name: "left and right openings",
			lines: []string{
				"# # # #",
				"- - - -",
				"# # # #",
			},
			start: CellPosition{Row: 1, Col: 0},
			goal:  CellPosition{Row: 1, Col: 3},
		},
		{
			name: "top and left",
			lines: []string{
				"# - #",
				"- - #",
				"# # #",
			},
			start: CellPosition{Row: 0, Col: 1},
			goal:  CellPosition{Row: 1, Col: 0},
		},
		{
			name: "corner cell is collected once",
			lines: []string{
				"- # #",
				"- - -",
				"# # #",
			},
			start: CellPosition{Row: 0, Col: 0},
			goal:  CellPosition{Row: 1, Col: 2},
		},
		{
			name:  "single row",
			lines: []string{"- - -"},
			start: CellPosition{Row: 0, Col: 0},
			goal:  CellPosition{Row: 0, Col: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.lines...)
			start, goal, err := g.FindBoundaryEndpoints()
			require.NoError(t, err)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.goal, goal)
		})
	}
}

func TestFindBoundaryEndpointsMissing(t *testing.T) {
	for name, lines := range map[string][]string{
		"no openings": {"# # #", "# - #", "# # #"},
		"one opening": {"# - #", "# - #", "# # #"},
		"single cell": {"-"},
	} {
		t.Run(name, func(t *testing.T) {
			g := mustParse(t, lines...)
			_, _, err := g.FindBoundaryEndpoints()
			assert.ErrorIs(t, err, ErrEndpointsNotFound)
		})
	}
}
