package model

// LogicalTable is the reconciled, canonical table structure consumed by
// renderers. It exclusively owns its header list and rows.
//
// Invariants maintained by the pipeline:
//   - every row has exactly len(Headers) cells
//   - row order is the authoritative reading order
//   - RowBands[p][i] is the vertical extent of the i-th data row
//     physically on page p, recorded before any serial-number resort
type LogicalTable struct {
	ID      int        `json:"id"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`

	// Pages lists the pages the table spans, in reading order.
	Pages []int `json:"pages"`

	// RowBands maps a page number to the vertical bands of that page's
	// data rows.
	RowBands map[int][]Band `json:"row_bands,omitempty"`

	// PageRows maps a page number to how many data rows that page
	// contributed. Unlike RowBands, which a pipeline stage may discard
	// when merging invalidates the geometry, PageRows is always
	// recorded, so page-local row indices stay convertible to
	// table-global ones.
	PageRows map[int]int `json:"page_rows,omitempty"`
}

// NewLogicalTable creates a logical table for a single page.
func NewLogicalTable(id int, headers []string, rows [][]string, page int, bands []Band) *LogicalTable {
	t := &LogicalTable{
		ID:      id,
		Headers: headers,
		Rows:    rows,
		Pages:   []int{page},
		RowBands: map[int][]Band{
			page: bands,
		},
		PageRows: map[int]int{
			page: len(rows),
		},
	}
	return t
}

// RowCount returns the number of data rows.
func (t *LogicalTable) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of columns, defined by the header list.
func (t *LogicalTable) ColumnCount() int {
	return len(t.Headers)
}

// FirstPage returns the first page the table appears on, or 0 when the
// table spans no pages.
func (t *LogicalTable) FirstPage() int {
	if len(t.Pages) == 0 {
		return 0
	}
	return t.Pages[0]
}

// LastPage returns the most recently appended page, or 0.
func (t *LogicalTable) LastPage() int {
	if len(t.Pages) == 0 {
		return 0
	}
	return t.Pages[len(t.Pages)-1]
}

// AppendPage absorbs a continuation page: its rows, its page number, and
// its row bands.
func (t *LogicalTable) AppendPage(rows [][]string, page int, bands []Band) {
	t.Rows = append(t.Rows, rows...)
	t.Pages = append(t.Pages, page)
	if t.RowBands == nil {
		t.RowBands = make(map[int][]Band)
	}
	t.RowBands[page] = bands
	if t.PageRows == nil {
		t.PageRows = make(map[int]int)
	}
	t.PageRows[page] = len(rows)
}

// PageRowOffset returns the number of data rows contributed by pages
// before the given page, converting a page-local row index into a
// table-global one. The offset comes from PageRows, so it stays correct
// for pages whose band geometry was discarded.
func (t *LogicalTable) PageRowOffset(page int) int {
	offset := 0
	for _, p := range t.Pages {
		if p == page {
			break
		}
		offset += t.PageRows[p]
	}
	return offset
}

// Normalize pads or truncates every row to exactly len(Headers) cells.
// Extra non-empty trailing cells are folded into the last column rather
// than dropped.
func (t *LogicalTable) Normalize() {
	width := len(t.Headers)
	if width == 0 {
		return
	}
	for i, row := range t.Rows {
		switch {
		case len(row) < width:
			padded := make([]string, width)
			copy(padded, row)
			t.Rows[i] = padded
		case len(row) > width:
			for _, extra := range row[width:] {
				if extra == "" {
					continue
				}
				if row[width-1] != "" {
					row[width-1] += " " + extra
				} else {
					row[width-1] = extra
				}
			}
			t.Rows[i] = row[:width]
		}
	}
}
