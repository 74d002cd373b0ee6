package rows

import (
	"strings"

	"github.com/tsawler/tablature/classify"
	"github.com/tsawler/tablature/model"
)

// headerEchoRows are fragments of a repeated header that extraction
// sometimes emits as data; they are dropped before merging.
var headerEchoRows = map[string]bool{
	"sl.no":                 true,
	"s.no":                  true,
	"image":                 true,
	"reference":             true,
	"sl.no image":           true,
	"image reference":       true,
	"sl.no image reference": true,
}

// Merger folds multi-line continuation fragments into one logical row
// per physical item. A row either starts an item (it carries a strong
// item-boundary signature) or continues the currently open one.
type Merger struct {
	classifier *classify.Classifier

	// MinOrphanCells is the non-empty cell count an orphan continuation
	// needs to be kept standalone instead of discarded as noise.
	MinOrphanCells int

	// MinDescriptionLen qualifies a description cell as substantial for
	// the third boundary signature.
	MinDescriptionLen int
}

// NewMerger creates a merger that uses the classifier's vocabulary for
// summary-row detection.
func NewMerger(c *classify.Classifier) *Merger {
	return &Merger{
		classifier:        c,
		MinOrphanCells:    3,
		MinDescriptionLen: 10,
	}
}

// cell returns the trimmed cell at idx, or "" when idx is out of range
// or negative.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func columnIndex(semantics []model.ColumnSemantic, want model.ColumnSemantic) int {
	for idx, sem := range semantics {
		if sem == want {
			return idx
		}
	}
	return -1
}

// isItemStart checks the boundary signatures in order; the first match
// wins:
//  1. the serial column holds a bare positive integer
//  2. quantity AND rate both hold numeric-leading values
//  3. the description is substantial AND quantity or rate is populated
func (m *Merger) isItemStart(row []string, serialCol, descCol, qtyCol, rateCol int) bool {
	if s := cell(row, serialCol); s != "" && classify.IsBareInteger(s, 1, 100000) {
		return true
	}

	qty := cell(row, qtyCol)
	rate := cell(row, rateCol)
	if qty != "" && rate != "" && classify.LeadsNumeric(qty) && classify.LeadsNumeric(rate) {
		return true
	}

	if desc := cell(row, descCol); len(desc) > m.MinDescriptionLen {
		if qty != "" || rate != "" {
			return true
		}
	}
	return false
}

// isHeaderEcho reports whether the row is a stray repetition of header
// fragments.
func isHeaderEcho(row []string) bool {
	text := classify.Normalize(strings.Join(row, " "))
	return headerEchoRows[strings.TrimSpace(text)]
}

// Merge returns one logical row per item. The input grid must already
// exclude the header row; semantics identify the serial, description,
// quantity, rate and amount columns. Summary rows close the open item
// and pass through verbatim. Orphan continuations with enough content
// are kept standalone; sparser ones are discarded as noise.
func (m *Merger) Merge(grid [][]string, semantics []model.ColumnSemantic) [][]string {
	if len(grid) == 0 {
		return nil
	}

	serialCol := columnIndex(semantics, model.SemanticSerial)
	descCol := columnIndex(semantics, model.SemanticDescription)
	qtyCol := columnIndex(semantics, model.SemanticQuantity)
	rateCol := columnIndex(semantics, model.SemanticRate)

	// Drop header echoes and fully empty rows first. Rows with a single
	// non-empty cell stay: they are usually description continuations.
	filtered := make([][]string, 0, len(grid))
	for _, row := range grid {
		if isHeaderEcho(row) {
			continue
		}
		if nonEmptyCells(row) == 0 {
			continue
		}
		filtered = append(filtered, row)
	}
	if len(filtered) == 0 {
		return nil
	}

	var merged [][]string
	var open []string // currently accumulating item, nil when none

	emit := func() {
		if open != nil {
			merged = append(merged, open)
			open = nil
		}
	}

	for _, row := range filtered {
		switch {
		case m.classifier.IsSummaryRow(row):
			emit()
			merged = append(merged, row)

		case m.isItemStart(row, serialCol, descCol, qtyCol, rateCol):
			emit()
			open = append([]string(nil), row...)

		case open != nil:
			m.absorb(open, row, semantics)

		case nonEmptyCells(row) >= m.MinOrphanCells:
			// Orphan continuation with no open item: keep it standalone
			// rather than lose the content.
			merged = append(merged, row)

		default:
			// Sparse orphan, discard as noise.
		}
	}
	emit()

	return merged
}

// absorb folds a continuation row into the open item: numeric/identity
// columns are filled only when currently empty, textual columns are
// concatenated with a space.
func (m *Merger) absorb(open []string, row []string, semantics []model.ColumnSemantic) {
	for idx := range open {
		curr := cell(row, idx)
		if curr == "" {
			continue
		}

		numeric := idx < len(semantics) && semantics[idx].IsNumeric()
		if numeric {
			if strings.TrimSpace(open[idx]) == "" {
				open[idx] = curr
			}
			continue
		}

		if strings.TrimSpace(open[idx]) == "" {
			open[idx] = curr
		} else {
			open[idx] += " " + curr
		}
	}
}

func nonEmptyCells(row []string) int {
	n := 0
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			n++
		}
	}
	return n
}
