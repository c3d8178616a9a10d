package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single maze line; very large mazes have long rows.
const maxLineBytes = 4 << 20

// Parse reads maze text: one row per line, cells separated by single spaces,
// '-' for open floor and '#' for wall. Line breaks and empty tokens are
// stripped and blank lines are skipped.
func Parse(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]CellTag
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")

		row := make([]CellTag, 0, len(line)/2+1)
		for _, token := range strings.Split(line, " ") {
			if token == "" {
				continue
			}
			if len(token) != 1 || (CellTag(token[0]) != Open && CellTag(token[0]) != Wall) {
				return nil, fmt.Errorf("%w: unexpected token %q on line %d", ErrMalformedGrid, token, lineNo)
			}
			row = append(row, CellTag(token[0]))
		}

		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading maze: %w", err)
	}

	return New(rows)
}

// Load reads and parses the maze file at path.
func Load(path string) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	grid, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}
