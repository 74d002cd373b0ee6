package rows

import (
	"regexp"
	"strings"
)

var excessiveSpaces = regexp.MustCompile(` {3,}`)

// CleanCell trims a cell and collapses runs of three or more spaces,
// preserving deliberate line breaks and double spacing within cells.
func CleanCell(cell string) string {
	return excessiveSpaces.ReplaceAllString(strings.TrimSpace(cell), " ")
}

// FillEmpty pads every row to exactly width cells, cleaning cell text on
// the way. Non-empty cells beyond the width are folded into the last
// column rather than dropped.
func FillEmpty(grid [][]string, width int) [][]string {
	if width <= 0 {
		return grid
	}
	filled := make([][]string, len(grid))
	for i, row := range grid {
		out := make([]string, width)
		for j := 0; j < width && j < len(row); j++ {
			out[j] = CleanCell(row[j])
		}
		for j := width; j < len(row); j++ {
			extra := CleanCell(row[j])
			if extra == "" {
				continue
			}
			if out[width-1] != "" {
				out[width-1] += " " + extra
			} else {
				out[width-1] = extra
			}
		}
		filled[i] = out
	}
	return filled
}
