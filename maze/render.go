package maze

import (
	"io"
	"strings"
)

// Render writes grid with path cells tagged Path, followed by a blank line.
// The grid itself is left untouched. A nil path renders the bare grid.
func Render(w io.Writer, grid *Grid, path []CellPosition) error {
	canvas := grid.Clone()
	canvas.ClearMarks()
	if err := canvas.Mark(path); err != nil {
		return err
	}

	if _, err := io.WriteString(w, canvas.String()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// RenderString is Render into a string.
func RenderString(grid *Grid, path []CellPosition) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, grid, path); err != nil {
		return "", err
	}
	return sb.String(), nil
}
