package strategies

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/tablature/model"
)

// HTML parses table markup a backend produced for the page into
// candidate grids. Colspans are expanded to empty cells so the grid
// keeps its positional column alignment.
type HTML struct {
	name string
}

// NewHTML creates an HTML markup strategy reporting under the given
// strategy name.
func NewHTML(name string) *HTML {
	return &HTML{name: name}
}

// Name returns the strategy name.
func (h *HTML) Name() string {
	return h.name
}

// Extract parses every <table> element in the page's markup rendition.
func (h *HTML) Extract(_ context.Context, page *model.PageData) ([]*model.CandidateTable, error) {
	if page == nil || len(page.HTML) == 0 {
		return nil, nil
	}
	grids, err := ParseTables(page.HTML)
	if err != nil {
		return nil, err
	}
	var out []*model.CandidateTable
	for _, rows := range grids {
		if len(rows) == 0 {
			continue
		}
		out = append(out, &model.CandidateTable{
			Rows:     rows,
			Strategy: h.name,
			Page:     page.Page,
		})
	}
	return out, nil
}

// ParseTables extracts every <table> in the markup as a cell grid, in
// document order.
func ParseTables(markup []byte) ([][][]string, error) {
	doc, err := html.Parse(bytes.NewReader(markup))
	if err != nil {
		return nil, err
	}
	var tables [][][]string
	collectTables(doc, &tables)
	return tables, nil
}

func collectTables(n *html.Node, tables *[][][]string) {
	if n.Type == html.ElementNode && n.Data == "table" {
		if rows := parseTable(n); len(rows) > 0 {
			*tables = append(*tables, rows)
		}
		return // nested tables inside cells are flattened into cell text
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectTables(c, tables)
	}
}

// parseTable walks thead, tbody, tfoot and direct tr children in
// document order.
func parseTable(tableNode *html.Node) [][]string {
	var rows [][]string
	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" {
					if row := parseRow(tr); len(row) > 0 {
						rows = append(rows, row)
					}
				}
			}
		case "tr":
			if row := parseRow(c); len(row) > 0 {
				rows = append(rows, row)
			}
		}
	}
	return rows
}

func parseRow(tr *html.Node) []string {
	var row []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		row = append(row, cellText(c))

		// Expand colspan so later cells keep their column index.
		for _, attr := range c.Attr {
			if attr.Key == "colspan" {
				if span, err := strconv.Atoi(strings.TrimSpace(attr.Val)); err == nil {
					for i := 1; i < span; i++ {
						row = append(row, "")
					}
				}
			}
		}
	}
	return row
}

func cellText(n *html.Node) string {
	var b strings.Builder
	appendText(n, &b)
	return strings.Join(strings.Fields(b.String()), " ")
}

func appendText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteString(" ")
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(c, b)
	}
}
