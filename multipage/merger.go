// Package multipage stitches per-page tables into logical tables that
// span page boundaries. A table on page N+1 continues the table on page
// N when the structures agree; otherwise it starts a new table.
package multipage

import (
	"strings"

	"github.com/tsawler/tablature/classify"
	"github.com/tsawler/tablature/model"
)

// PageTable is one reconstructed table on a single page, the unit of
// multi-page merging.
type PageTable struct {
	Headers []string
	Rows    [][]string
	Page    int
	Bands   []model.Band
}

// Merger merges page tables into logical tables.
type Merger struct {
	// HeaderSimilarity is the fraction of positionally matching (or
	// empty) headers needed to treat a page as a continuation.
	HeaderSimilarity float64

	// MinNumericCells is how many numeric or currency cells a putative
	// header row needs before it is treated as misclassified data.
	MinNumericCells int
}

// NewMerger creates a merger with default thresholds.
func NewMerger() *Merger {
	return &Merger{
		HeaderSimilarity: 0.7,
		MinNumericCells:  2,
	}
}

// Merge folds continuation pages into their predecessor table. Tables
// arrive in page order. Continuation requires consecutive pages, equal
// column count (after image-column recovery) and similar headers.
// Assigned IDs are sequential in reading order.
func (m *Merger) Merge(tables []PageTable) []*model.LogicalTable {
	var merged []*model.LogicalTable
	var current *model.LogicalTable

	for _, table := range tables {
		if current == nil {
			current = model.NewLogicalTable(len(merged), table.Headers, table.Rows, table.Page, table.Bands)
			continue
		}

		headers := table.Headers
		rows := table.Rows
		bands := table.Bands

		consecutive := table.Page == current.LastPage()+1
		sameCols := len(headers) == current.ColumnCount()

		// A continuation page missing its image column shows up one
		// column short with numbers where headers should be.
		if !sameCols && consecutive && current.ColumnCount()-len(headers) == 1 {
			if numericCells(headers) >= m.MinNumericCells {
				if imageCol := imageColumn(current.Headers); imageCol >= 0 {
					headers, rows = insertColumn(headers, rows, imageCol, current.ColumnCount()-1)
					sameCols = true
				}
			}
		}

		similar := false
		if sameCols && consecutive {
			similar = m.headersSimilar(current.Headers, headers)

			// Equal width but dissimilar headers: when the putative
			// header is numeric-dominated it is really the first data
			// row of a continuation page.
			if !similar && numericCells(headers) >= m.MinNumericCells {
				similar = true
				rows = append([][]string{headers}, rows...)
				// Placeholder keeps row and band counts aligned.
				bands = append([]model.Band{{}}, bands...)
			}
		}

		if sameCols && consecutive && similar {
			current.AppendPage(rows, table.Page, bands)
			continue
		}

		merged = append(merged, current)
		current = model.NewLogicalTable(len(merged), table.Headers, table.Rows, table.Page, table.Bands)
	}

	if current != nil {
		merged = append(merged, current)
	}
	return merged
}

// headersSimilar reports continuation-grade similarity: mostly empty
// headers, or enough positional case-insensitive matches.
func (m *Merger) headersSimilar(current, next []string) bool {
	if len(next) == 0 {
		return false
	}

	empty := 0
	for _, h := range next {
		if strings.TrimSpace(h) == "" {
			empty++
		}
	}
	if float64(empty) >= float64(len(next))*m.HeaderSimilarity {
		return true
	}

	matching := 0
	for i := range current {
		if i < len(next) && strings.EqualFold(strings.TrimSpace(current[i]), strings.TrimSpace(next[i])) {
			matching++
		}
	}
	return float64(matching) >= float64(len(current))*m.HeaderSimilarity
}

// numericCells counts cells holding numbers or currency amounts.
func numericCells(cells []string) int {
	n := 0
	for _, c := range cells {
		if strings.TrimSpace(c) == "" {
			continue
		}
		if classify.IsNumericCell(c) {
			n++
		}
	}
	return n
}

// imageColumn finds the image column in a header list, or -1.
func imageColumn(headers []string) int {
	for idx, h := range headers {
		norm := classify.Normalize(h)
		if norm == "" {
			continue
		}
		for _, kw := range []string{"image", "indicative", "photo", "picture"} {
			if strings.Contains(norm, kw) {
				return idx
			}
		}
	}
	return -1
}

// insertColumn inserts an empty header at col and an empty cell in
// every row of exactly rowWidth cells.
func insertColumn(headers []string, rows [][]string, col, rowWidth int) ([]string, [][]string) {
	if col > len(headers) {
		col = len(headers)
	}
	newHeaders := make([]string, 0, len(headers)+1)
	newHeaders = append(newHeaders, headers[:col]...)
	newHeaders = append(newHeaders, "")
	newHeaders = append(newHeaders, headers[col:]...)

	newRows := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) != rowWidth {
			newRows[i] = row
			continue
		}
		fixed := make([]string, 0, len(row)+1)
		fixed = append(fixed, row[:col]...)
		fixed = append(fixed, "")
		fixed = append(fixed, row[col:]...)
		newRows[i] = fixed
	}
	return newHeaders, newRows
}
