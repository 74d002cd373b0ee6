package classify

import "strings"

// standardNames rewrites well-known header spellings to one canonical
// form. Checked in order; first match wins.
var standardNames = []struct {
	contains string
	name     string
}{
	{"item code", "Item Code"},
	{"item name", "Item Name"},
	{"item details", "Item Details"},
	{"additional", "Additional Information"},
	{"uom", "UOM"},
	{"quantity", "Quantity"},
	{"qty", "Quantity"},
	{"rate", "Rate"},
	{"price", "Rate"},
	{"amount", "Amount"},
	{"total", "Amount"},
}

// CleanHeaders collapses duplicate headers (same normalized text) into a
// single column and drops fully-empty headers. The returned mapping is a
// total function from every original column index to a cleaned index:
// duplicates map to the surviving column, and an empty-header column maps
// to its nearest retained neighbour so its cell data is merged rather
// than lost.
func CleanHeaders(headers []string) ([]string, map[int]int) {
	mapping := make(map[int]int, len(headers))
	if len(headers) == 0 {
		return headers, mapping
	}

	cleaned := make([]string, 0, len(headers))
	seen := make(map[string]int)
	pending := []int{} // empty-header columns seen before any retained one

	for idx, header := range headers {
		headerNorm := Normalize(header)

		if headerNorm == "" {
			if len(cleaned) > 0 {
				mapping[idx] = len(cleaned) - 1
			} else {
				pending = append(pending, idx)
			}
			continue
		}

		if prev, ok := seen[headerNorm]; ok {
			mapping[idx] = prev
			continue
		}

		newIdx := len(cleaned)
		cleaned = append(cleaned, strings.TrimSpace(header))
		seen[headerNorm] = newIdx
		mapping[idx] = newIdx
		for _, p := range pending {
			mapping[p] = newIdx
		}
		pending = nil
	}

	// All headers empty: keep a single column.
	if len(cleaned) == 0 {
		cleaned = genericHeaders(1)
		for _, p := range pending {
			mapping[p] = 0
		}
	}

	return standardizeHeaders(cleaned), mapping
}

func standardizeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, header := range headers {
		out[i] = standardizeHeader(header)
	}
	return out
}

func standardizeHeader(header string) string {
	headerNorm := Normalize(header)
	for _, std := range standardNames {
		if strings.Contains(headerNorm, std.contains) {
			return std.name
		}
	}
	return header
}

// AlignRows re-projects every data row through the column mapping
// produced by CleanHeaders, yielding rows of exactly len(headers) cells.
// Cells landing on the same cleaned column are concatenated with a
// space; the header row itself is replaced by the cleaned headers.
func AlignRows(rows [][]string, headers []string, mapping map[int]int, headerRow int) [][]string {
	if len(rows) == 0 || len(headers) == 0 || len(mapping) == 0 {
		return rows
	}

	aligned := make([][]string, 0, len(rows))
	for rowIdx, row := range rows {
		if rowIdx == headerRow {
			headerCopy := make([]string, len(headers))
			copy(headerCopy, headers)
			aligned = append(aligned, headerCopy)
			continue
		}

		projected := make([]string, len(headers))
		for origIdx, cell := range row {
			newIdx, ok := mapping[origIdx]
			if !ok || newIdx >= len(projected) {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if projected[newIdx] != "" {
				projected[newIdx] += " " + cell
			} else {
				projected[newIdx] = cell
			}
		}
		aligned = append(aligned, projected)
	}
	return aligned
}
