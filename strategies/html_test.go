package strategies

import (
	"context"
	"reflect"
	"testing"

	"github.com/tsawler/tablature/model"
)

func TestParseTables(t *testing.T) {
	markup := []byte(`<html><body>
		<p>prose before</p>
		<table>
			<thead><tr><th>Sl.No</th><th>Description</th><th>Qty</th></tr></thead>
			<tbody>
				<tr><td>1</td><td>Office <b>Desk</b></td><td>2</td></tr>
				<tr><td>2</td><td>Chair</td><td>4</td></tr>
			</tbody>
		</table>
		<table>
			<tr><td>x</td><td>y</td></tr>
		</table>
	</body></html>`)

	tables, err := ParseTables(markup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("parsed %d tables, want 2", len(tables))
	}

	want := [][]string{
		{"Sl.No", "Description", "Qty"},
		{"1", "Office Desk", "2"},
		{"2", "Chair", "4"},
	}
	if !reflect.DeepEqual(tables[0], want) {
		t.Errorf("table 0 = %v, want %v", tables[0], want)
	}
	if !reflect.DeepEqual(tables[1], [][]string{{"x", "y"}}) {
		t.Errorf("table 1 = %v", tables[1])
	}
}

func TestParseTablesColspan(t *testing.T) {
	markup := []byte(`<table>
		<tr><td colspan="3">Section A</td><td>end</td></tr>
		<tr><td>a</td><td>b</td><td>c</td><td>d</td></tr>
	</table>`)

	tables, err := ParseTables(markup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("parsed %d tables, want 1", len(tables))
	}
	if len(tables[0][0]) != 4 {
		t.Errorf("colspan not expanded: %v", tables[0][0])
	}
	if tables[0][0][3] != "end" {
		t.Errorf("cell after colspan misaligned: %v", tables[0][0])
	}
}

func TestParseTablesNoTables(t *testing.T) {
	tables, err := ParseTables([]byte(`<p>no tables here</p>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) != 0 {
		t.Errorf("parsed %d tables, want 0", len(tables))
	}
}

func TestHTMLStrategyExtract(t *testing.T) {
	h := NewHTML("layout-preserving")

	page := &model.PageData{
		Page: 3,
		HTML: []byte(`<table><tr><td>1</td><td>Desk</td></tr></table>`),
	}
	candidates, err := h.Extract(context.Background(), page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}
	c := candidates[0]
	if c.Strategy != "layout-preserving" || c.Page != 3 {
		t.Errorf("candidate metadata: strategy %q page %d", c.Strategy, c.Page)
	}
	if c.Rows[0][1] != "Desk" {
		t.Errorf("rows = %v", c.Rows)
	}
}

func TestHTMLStrategyNoMarkup(t *testing.T) {
	h := NewHTML("layout-preserving")
	candidates, err := h.Extract(context.Background(), &model.PageData{Page: 0})
	if err != nil || candidates != nil {
		t.Errorf("Extract without markup = %v, %v", candidates, err)
	}
}
