package classify

import (
	"testing"

	"github.com/tsawler/tablature/model"
)

func TestIsDataRow(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{"serial integer first cell", []string{"1", "Office Desk", "2", "450"}, true},
		{"two numeric cells", []string{"", "Chair", "4", "150.00"}, true},
		{"currency cells", []string{"", "Cabinet", "QAR 450", "QAR 900"}, true},
		{"long descriptive cell", []string{"", "Executive office desk with three lockable drawers and cable tray", "", ""}, true},
		{"header text", []string{"Sl.No", "Description", "Qty", "Rate"}, false},
		{"empty row", []string{"", "", "", ""}, false},
		{"nil row", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsDataRow(tt.row); got != tt.want {
				t.Errorf("IsDataRow(%v) = %v, want %v", tt.row, got, tt.want)
			}
		})
	}
}

func TestDetectHeaders(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	t.Run("first row is header", func(t *testing.T) {
		rows := [][]string{
			{"Sl.No", "Description", "Qty", "Rate", "Amount"},
			{"1", "Office Desk", "2", "450", "900"},
			{"2", "Office Chair", "4", "150", "600"},
		}
		headers, idx := c.DetectHeaders(rows)
		if idx != 0 {
			t.Fatalf("header row = %d, want 0", idx)
		}
		if headers[0] != "Sl.No" || headers[4] != "Amount" {
			t.Errorf("unexpected headers %v", headers)
		}
	})

	t.Run("second row header under stray prose", func(t *testing.T) {
		rows := [][]string{
			{"Prepared by sales team", "", "", "", ""},
			{"Sl.No", "Description", "Qty", "Rate", "Amount"},
			{"1", "Office Desk", "2", "450", "900"},
		}
		_, idx := c.DetectHeaders(rows)
		if idx != 1 {
			t.Errorf("header row = %d, want 1", idx)
		}
	})

	t.Run("data first row synthesizes headers", func(t *testing.T) {
		rows := [][]string{
			{"1", "Office Desk", "2", "450", "900"},
			{"2", "Office Chair", "4", "150", "600"},
		}
		headers, idx := c.DetectHeaders(rows)
		if idx != HeaderRowNone {
			t.Fatalf("header row = %d, want HeaderRowNone", idx)
		}
		if len(headers) != 5 || headers[0] != "Column 1" || headers[4] != "Column 5" {
			t.Errorf("unexpected synthesized headers %v", headers)
		}
	})

	t.Run("empty grid", func(t *testing.T) {
		headers, idx := c.DetectHeaders(nil)
		if headers != nil || idx != HeaderRowNone {
			t.Errorf("DetectHeaders(nil) = %v, %d", headers, idx)
		}
	})

	t.Run("short table needs two keyword matches", func(t *testing.T) {
		rows := [][]string{
			{"Location", "xyz"},
			{"abc", "def"},
		}
		_, idx := c.DetectHeaders(rows)
		if idx != HeaderRowNone {
			t.Errorf("single keyword in a two-row table should not be a header, got row %d", idx)
		}
	})
}

func TestSemantics(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	headers := []string{"Sl.No", "Image", "Item Description", "Quantity", "UOM", "Rate", "Amount", ""}
	want := []model.ColumnSemantic{
		model.SemanticSerial,
		model.SemanticImage,
		model.SemanticDescription,
		model.SemanticQuantity,
		model.SemanticUnit,
		model.SemanticRate,
		model.SemanticAmount,
		model.SemanticUnknown,
	}

	got := c.Semantics(headers)
	if len(got) != len(want) {
		t.Fatalf("Semantics returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("header %q: semantic = %v, want %v", headers[i], got[i], want[i])
		}
	}
}

func TestSemanticsDecoratedHeader(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())
	if got := c.Semantics([]string{"Qty (Nos)"})[0]; got != model.SemanticQuantity {
		t.Errorf("decorated quantity header resolved to %v", got)
	}
}

func TestIsSummaryRow(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	if !c.IsSummaryRow([]string{"", "Grand Total", "", "", "1,500"}) {
		t.Error("grand total row not recognized as summary")
	}
	if c.IsSummaryRow([]string{"1", "Office Desk", "2", "450", "900"}) {
		t.Error("item row misread as summary")
	}
}

func TestFilterNoise(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	rows := [][]string{
		{"Terms and conditions apply to this offer", "", ""},
		{"Sl.No", "Description", "Qty"},
		{"1", "Office Desk", "2"},
		{"footer", "", ""},
	}
	kept := c.FilterNoise(rows)
	if len(kept) != 2 {
		t.Fatalf("kept %d rows, want 2: %v", len(kept), kept)
	}
	if kept[0][0] != "Sl.No" || kept[1][0] != "1" {
		t.Errorf("wrong rows kept: %v", kept)
	}
}

func TestDefaultVocabularyIsFresh(t *testing.T) {
	a := DefaultVocabulary()
	a.SummaryKeywords[0] = "mutated"
	a.Variants[model.SemanticSerial][0] = "mutated"

	b := DefaultVocabulary()
	if b.SummaryKeywords[0] == "mutated" {
		t.Error("DefaultVocabulary shares summary keyword backing array across calls")
	}
	if b.Variants[model.SemanticSerial][0] == "mutated" {
		t.Error("DefaultVocabulary shares variant backing array across calls")
	}
}
