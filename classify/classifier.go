package classify

import (
	"fmt"
	"strings"

	"github.com/tsawler/tablature/model"
)

// HeaderRowNone indicates that no row of a candidate qualifies as a
// header: synthesized headers are in use and every row is data.
const HeaderRowNone = -1

// semanticOrder fixes the precedence used when a header could name more
// than one semantic group. Narrow, position-bound groups come first so
// that e.g. "no." resolves to serial before description's "name" gets a
// chance to claim "item name" variants out of order.
var semanticOrder = []model.ColumnSemantic{
	model.SemanticSerial,
	model.SemanticImage,
	model.SemanticQuantity,
	model.SemanticUnit,
	model.SemanticRate,
	model.SemanticAmount,
	model.SemanticLocation,
	model.SemanticSupplier,
	model.SemanticActions,
	model.SemanticDescription,
}

// Classifier decides which row of a candidate grid is the header and
// classifies rows as header, data, or non-table noise.
type Classifier struct {
	vocab Vocabulary

	// SerialMin and SerialMax bound the bare-integer serial signature.
	SerialMin int
	SerialMax int

	// LongTextThreshold is the cell length above which a cell counts as
	// descriptive text, a data-row signal.
	LongTextThreshold int
}

// NewClassifier creates a classifier using the given vocabulary.
func NewClassifier(vocab Vocabulary) *Classifier {
	return &Classifier{
		vocab:             vocab,
		SerialMin:         1,
		SerialMax:         1000,
		LongTextThreshold: 50,
	}
}

// IsDataRow reports whether a row carries data rather than header text.
// The checks run in priority order and always override keyword evidence,
// because keyword lists can coincidentally match data cells:
//  1. first cell is a bare serial integer
//  2. two or more cells look numeric/currency
//  3. any cell is long descriptive text
func (c *Classifier) IsDataRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	if IsBareInteger(row[0], c.SerialMin, c.SerialMax) {
		return true
	}
	numeric := 0
	for _, cell := range row {
		if IsNumericCell(cell) {
			numeric++
		}
	}
	if numeric >= 2 {
		return true
	}
	for _, cell := range row {
		if len(strings.TrimSpace(cell)) > c.LongTextThreshold {
			return true
		}
	}
	return false
}

// KeywordMatches counts the cells of a row that match any header-variant
// group. Each cell contributes at most one match.
func (c *Classifier) KeywordMatches(row []string) int {
	matches := 0
	for _, cell := range row {
		if c.matchesAnyVariant(cell) {
			matches++
		}
	}
	return matches
}

func (c *Classifier) matchesAnyVariant(cell string) bool {
	cellNorm := Normalize(cell)
	if cellNorm == "" {
		return false
	}
	for _, sem := range semanticOrder {
		for _, variant := range c.vocab.Variants[sem] {
			if variantMatches(cellNorm, variant) {
				return true
			}
		}
	}
	return false
}

// variantMatches is the literal-or-boundary test: containment, prefix,
// suffix, or equality against the normalized cell.
func variantMatches(cellNorm, variant string) bool {
	return cellNorm == variant ||
		strings.Contains(cellNorm, variant) ||
		strings.HasPrefix(cellNorm, variant) ||
		strings.HasSuffix(cellNorm, variant)
}

// DetectHeaders returns the header cells of a candidate grid and the
// index of the header row, or HeaderRowNone with synthesized "Column N"
// headers when no row qualifies (every row is then data).
func (c *Classifier) DetectHeaders(rows [][]string) ([]string, int) {
	if len(rows) == 0 {
		return nil, HeaderRowNone
	}

	// Data-row evidence on the first row beats keyword evidence.
	if c.IsDataRow(rows[0]) {
		return genericHeaders(len(rows[0])), HeaderRowNone
	}

	if c.isHeaderRow(rows[0], len(rows)) {
		return trimRow(rows[0]), 0
	}

	// The first row may be stray prose above the table; try the second.
	if len(rows) > 1 && !c.IsDataRow(rows[1]) && c.isHeaderRow(rows[1], len(rows)) {
		return trimRow(rows[1]), 1
	}

	return genericHeaders(len(rows[0])), HeaderRowNone
}

// isHeaderRow applies the keyword rules: one match suffices for tables
// with more than two rows; short tables require two matches to avoid
// misreading a short data table. A row of at least four short non-empty
// cells with a keyword match also qualifies.
func (c *Classifier) isHeaderRow(row []string, tableRows int) bool {
	matches := c.KeywordMatches(row)

	minMatches := 1
	if tableRows <= 2 {
		minMatches = 2
	}
	if matches >= minMatches {
		return true
	}

	nonEmpty := nonEmptyCount(row)
	short := 0
	for _, cell := range row {
		t := strings.TrimSpace(cell)
		if t != "" && len(t) < 30 {
			short++
		}
	}
	return nonEmpty >= 4 && short >= nonEmpty && matches >= 1
}

// Semantics maps each header to at most one column semantic. Absent or
// unrecognized headers map to SemanticUnknown.
func (c *Classifier) Semantics(headers []string) []model.ColumnSemantic {
	semantics := make([]model.ColumnSemantic, len(headers))
	for i, header := range headers {
		semantics[i] = c.headerSemantic(header)
	}
	return semantics
}

func (c *Classifier) headerSemantic(header string) model.ColumnSemantic {
	headerNorm := Normalize(header)
	if headerNorm == "" {
		return model.SemanticUnknown
	}
	for _, sem := range semanticOrder {
		for _, variant := range c.vocab.Variants[sem] {
			if headerNorm == variant ||
				strings.HasPrefix(headerNorm, variant+" ") ||
				strings.HasSuffix(headerNorm, " "+variant) {
				return sem
			}
		}
	}
	// Fall back to containment so decorated headers ("Qty (Nos)") still
	// resolve.
	for _, sem := range semanticOrder {
		for _, variant := range c.vocab.Variants[sem] {
			if len(variant) >= 3 && strings.Contains(headerNorm, variant) {
				return sem
			}
		}
	}
	return model.SemanticUnknown
}

// IsSummaryRow reports whether the row text contains a summary keyword
// (total, vat, balance and friends).
func (c *Classifier) IsSummaryRow(row []string) bool {
	text := Normalize(strings.Join(row, " "))
	for _, keyword := range c.vocab.SummaryKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// IsNonTableRow reports whether a row is surrounding prose rather than
// table content: it matches a non-table keyword, or has fewer than two
// words.
func (c *Classifier) IsNonTableRow(row []string) bool {
	text := Normalize(strings.Join(row, " "))
	for _, keyword := range c.vocab.NonTableKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return len(strings.Fields(text)) < 2
}

// FilterNoise removes non-table rows, preserving order.
func (c *Classifier) FilterNoise(rows [][]string) [][]string {
	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 || c.IsNonTableRow(row) {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

func genericHeaders(n int) []string {
	headers := make([]string, n)
	for i := range headers {
		headers[i] = fmt.Sprintf("Column %d", i+1)
	}
	return headers
}

func trimRow(row []string) []string {
	trimmed := make([]string, len(row))
	for i, cell := range row {
		trimmed[i] = strings.TrimSpace(cell)
	}
	return trimmed
}
