package model

// CandidateTable is a raw row/column arrangement of text proposed by one
// extraction strategy. Column counts may vary row-to-row until the table
// has been cleaned; row and column order are significant throughout.
type CandidateTable struct {
	// Rows holds raw cell strings in reading order.
	Rows [][]string

	// Strategy identifies the extraction strategy that produced the grid.
	Strategy string

	// Page is the zero-based page the grid was found on.
	Page int

	// RowBands holds the vertical extent of each data row on the page,
	// when the strategy can supply it. Used for image-to-row matching.
	RowBands []Band

	score  float64
	scored bool
}

// RowCount returns the number of rows in the candidate.
func (c *CandidateTable) RowCount() int {
	return len(c.Rows)
}

// ColumnCounts returns the cell count of every non-nil row.
func (c *CandidateTable) ColumnCounts() []int {
	counts := make([]int, 0, len(c.Rows))
	for _, row := range c.Rows {
		if row != nil {
			counts = append(counts, len(row))
		}
	}
	return counts
}

// Score returns the cached quality score and whether one has been set.
func (c *CandidateTable) Score() (float64, bool) {
	return c.score, c.scored
}

// SetScore records the quality score. The score is computed once; later
// calls overwrite the cached value, which scorers only do with an
// identical result for an unchanged table.
func (c *CandidateTable) SetScore(score float64) {
	c.score = score
	c.scored = true
}

// IsEmpty reports whether the candidate has no rows at all.
func (c *CandidateTable) IsEmpty() bool {
	return c == nil || len(c.Rows) == 0
}

// Clone returns a deep copy of the candidate's rows and bands. The cached
// score is not carried over.
func (c *CandidateTable) Clone() *CandidateTable {
	clone := &CandidateTable{
		Strategy: c.Strategy,
		Page:     c.Page,
	}
	clone.Rows = make([][]string, len(c.Rows))
	for i, row := range c.Rows {
		clone.Rows[i] = make([]string, len(row))
		copy(clone.Rows[i], row)
	}
	if c.RowBands != nil {
		clone.RowBands = make([]Band, len(c.RowBands))
		copy(clone.RowBands, c.RowBands)
	}
	return clone
}
