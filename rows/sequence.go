package rows

import (
	"math"
	"sort"

	"github.com/tsawler/tablature/classify"
	"github.com/tsawler/tablature/model"
)

// SortBySerial stable-sorts a table's rows by the numeric value
// recovered from its serial column (first embedded integer; rows with no
// parseable serial sort last). It returns the old→new row index map that
// dependent image records must be rewritten through. A negative
// serialCol leaves the table untouched and returns nil.
func SortBySerial(table *model.LogicalTable, serialCol int) map[int]int {
	if table == nil || serialCol < 0 || len(table.Rows) == 0 {
		return nil
	}

	keys := make([]float64, len(table.Rows))
	for i, row := range table.Rows {
		keys[i] = serialKey(row, serialCol)
	}

	order := make([]int, len(table.Rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] < keys[order[b]]
	})

	sorted := make([][]string, len(table.Rows))
	mapping := make(map[int]int, len(order))
	for newIdx, oldIdx := range order {
		sorted[newIdx] = table.Rows[oldIdx]
		mapping[oldIdx] = newIdx
	}
	table.Rows = sorted

	return mapping
}

func serialKey(row []string, serialCol int) float64 {
	if serialCol >= len(row) {
		return math.Inf(1)
	}
	n, ok := classify.FirstInteger(row[serialCol])
	if !ok {
		return math.Inf(1)
	}
	return float64(n)
}

// RemapImages rewrites the row index of every image record belonging to
// the given table through the sort mapping. Records whose old index has
// no mapping entry keep their index and are flagged low-confidence.
// It returns the number of records left unmapped.
func RemapImages(records []*model.ImageRecord, tableID int, mapping map[int]int) int {
	if len(mapping) == 0 {
		return 0
	}
	unmapped := 0
	for _, rec := range records {
		if rec.TableID != tableID || !rec.Matched {
			continue
		}
		if newIdx, ok := mapping[rec.RowIndex]; ok {
			rec.RowIndex = newIdx
		} else {
			rec.LowConfidence = true
			unmapped++
		}
	}
	return unmapped
}
