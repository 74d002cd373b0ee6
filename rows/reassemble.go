package rows

import (
	"strings"

	"github.com/tsawler/tablature/classify"
)

// Text-column priorities. A higher-priority column claims spillover
// text before a lower-priority one gets the chance.
const (
	priorityDetails    = 1
	priorityName       = 2
	priorityAdditional = 3
	priorityItem       = 4
)

// Reassembler repairs horizontally split text: a backend artifact of
// bordered-table extraction where the text of one logical cell is laid
// out across adjacent columns.
type Reassembler struct {
	// MaxSweep is how many columns to the right of a text column are
	// examined for spillover.
	MaxSweep int

	// MinAvgTextLen is the average cell length above which a column is
	// treated as a text column when headers give no hint.
	MinAvgTextLen float64
}

// NewReassembler creates a reassembler with default settings.
func NewReassembler() *Reassembler {
	return &Reassembler{
		MaxSweep:      15,
		MinAvgTextLen: 15.0,
	}
}

// numericHeaderWords mark columns the sweep must never merge from.
var numericHeaderWords = []string{"qty", "quantity", "price", "rate", "total", "amount", "uom"}

// textColumnPriority returns the reassembly priority for a header, or 0
// when the column is not a text column.
func textColumnPriority(header string) int {
	h := classify.Normalize(header)
	if h == "" {
		return 0
	}
	switch {
	case strings.Contains(h, "details") || strings.Contains(h, "description") || strings.Contains(h, "specification"):
		return priorityDetails
	case strings.Contains(h, "name"):
		return priorityName
	case strings.Contains(h, "additional"):
		return priorityAdditional
	case strings.Contains(h, "item") && !strings.Contains(h, "code"):
		return priorityItem
	}
	return 0
}

func isNumericHeader(header string) bool {
	h := classify.Normalize(header)
	for _, word := range numericHeaderWords {
		if strings.Contains(h, word) {
			return true
		}
	}
	return false
}

func isCodeHeader(header string) bool {
	h := classify.Normalize(header)
	return strings.Contains(h, "code") && h != "item code"
}

// Repair merges spillover text back into its source text column for
// every data row, processing text columns in priority order so that an
// earlier, higher-priority column claims spillover before a later one.
// The header row at headerRow is left untouched.
func (r *Reassembler) Repair(rows [][]string, headers []string, headerRow int) [][]string {
	if len(rows) < 2 || len(headers) == 0 {
		return rows
	}

	priorities := make(map[int]int)
	var textCols []int
	for idx, header := range headers {
		if p := textColumnPriority(header); p > 0 {
			priorities[idx] = p
			textCols = append(textCols, idx)
		}
	}
	if len(textCols) == 0 {
		textCols = r.detectTextColumns(rows, headers, headerRow)
		for _, idx := range textCols {
			priorities[idx] = priorityItem
		}
	}
	if len(textCols) == 0 {
		return rows
	}

	// Priority order, stable within equal priority.
	for i := 0; i < len(textCols); i++ {
		for j := i + 1; j < len(textCols); j++ {
			if priorities[textCols[j]] < priorities[textCols[i]] {
				textCols[i], textCols[j] = textCols[j], textCols[i]
			}
		}
	}

	fixed := make([][]string, len(rows))
	for rowIdx, row := range rows {
		if rowIdx == headerRow {
			fixed[rowIdx] = row
			continue
		}
		fixed[rowIdx] = r.repairRow(row, headers, textCols, priorities)
	}
	return fixed
}

// repairRow sweeps rightward from each text column, absorbing non-numeric,
// non-code spillover and blanking the source cells.
func (r *Reassembler) repairRow(row []string, headers []string, textCols []int, priorities map[int]int) []string {
	fixed := make([]string, len(row))
	copy(fixed, row)

	for _, textCol := range textCols {
		if textCol >= len(fixed) {
			continue
		}
		merged := strings.TrimSpace(fixed[textCol])
		var clear []int

		limit := textCol + r.MaxSweep
		if limit > len(fixed) {
			limit = len(fixed)
		}

	sweep:
		for check := textCol + 1; check < limit; check++ {
			// A higher-priority text column owns everything past it.
			if p, ok := priorities[check]; ok && p < priorities[textCol] {
				break
			}

			if check < len(headers) {
				if isNumericHeader(headers[check]) || isCodeHeader(headers[check]) {
					break
				}
			}

			cell := strings.TrimSpace(fixed[check])
			if cell == "" {
				continue // spacing column, keep scanning
			}

			switch {
			case classify.IsPureNumber(cell) || classify.IsProductCode(cell):
				break sweep
			case len(cell) > 1:
				if merged != "" {
					merged += " " + cell
				} else {
					merged = cell
				}
				clear = append(clear, check)
			default:
				break sweep
			}
		}

		if len(clear) > 0 {
			fixed[textCol] = merged
			for _, idx := range clear {
				fixed[idx] = ""
			}
		}
	}
	return fixed
}

// detectTextColumns infers text columns from the data when no header
// names one: a column whose first few data cells average more than
// MinAvgTextLen characters is treated as descriptive text.
func (r *Reassembler) detectTextColumns(rows [][]string, headers []string, headerRow int) []int {
	var cols []int
	for colIdx := range headers {
		var lengths []int
		for rowIdx := headerRow + 1; rowIdx < len(rows) && rowIdx < headerRow+5; rowIdx++ {
			if rowIdx < 0 || colIdx >= len(rows[rowIdx]) {
				continue
			}
			if cell := strings.TrimSpace(rows[rowIdx][colIdx]); len(cell) > 10 {
				lengths = append(lengths, len(cell))
			}
		}
		if len(lengths) == 0 {
			continue
		}
		sum := 0
		for _, l := range lengths {
			sum += l
		}
		if float64(sum)/float64(len(lengths)) > r.MinAvgTextLen {
			cols = append(cols, colIdx)
		}
	}
	return cols
}
