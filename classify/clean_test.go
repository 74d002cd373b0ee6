package classify

import (
	"reflect"
	"testing"
)

func TestCleanHeaders(t *testing.T) {
	t.Run("duplicates collapse and empties map to neighbour", func(t *testing.T) {
		headers := []string{"Sl.No", "", "Description", "Description", "Qty"}
		cleaned, mapping := CleanHeaders(headers)

		want := []string{"Sl.No", "Description", "Quantity"}
		if !reflect.DeepEqual(cleaned, want) {
			t.Fatalf("cleaned = %v, want %v", cleaned, want)
		}

		wantMapping := map[int]int{0: 0, 1: 0, 2: 1, 3: 1, 4: 2}
		if !reflect.DeepEqual(mapping, wantMapping) {
			t.Errorf("mapping = %v, want %v", mapping, wantMapping)
		}
	})

	t.Run("mapping is total", func(t *testing.T) {
		headers := []string{"", "A", "", "A", "B", ""}
		cleaned, mapping := CleanHeaders(headers)
		for idx := range headers {
			newIdx, ok := mapping[idx]
			if !ok {
				t.Errorf("original column %d has no mapping entry", idx)
				continue
			}
			if newIdx < 0 || newIdx >= len(cleaned) {
				t.Errorf("column %d maps out of range: %d", idx, newIdx)
			}
		}
	})

	t.Run("no duplicate normalized names survive", func(t *testing.T) {
		headers := []string{"Qty", "QTY", "qty.", "Rate", "RATE"}
		cleaned, _ := CleanHeaders(headers)
		seen := map[string]bool{}
		for _, h := range cleaned {
			n := Normalize(h)
			if seen[n] {
				t.Errorf("duplicate normalized header %q in %v", n, cleaned)
			}
			seen[n] = true
		}
	})

	t.Run("leading empty maps to first retained", func(t *testing.T) {
		headers := []string{"", "", "Description"}
		cleaned, mapping := CleanHeaders(headers)
		if len(cleaned) != 1 {
			t.Fatalf("cleaned = %v", cleaned)
		}
		if mapping[0] != 0 || mapping[1] != 0 || mapping[2] != 0 {
			t.Errorf("mapping = %v, want all zero", mapping)
		}
	})

	t.Run("all empty headers yield one generic column", func(t *testing.T) {
		cleaned, mapping := CleanHeaders([]string{"", "", ""})
		if len(cleaned) != 1 {
			t.Fatalf("cleaned = %v, want one generic column", cleaned)
		}
		for idx := 0; idx < 3; idx++ {
			if mapping[idx] != 0 {
				t.Errorf("column %d maps to %d, want 0", idx, mapping[idx])
			}
		}
	})

	t.Run("standard spellings", func(t *testing.T) {
		tests := []struct{ in, want string }{
			{"QTY", "Quantity"},
			{"Unit Price", "Rate"},
			{"Total Value", "Amount"},
			{"ITEM CODE", "Item Code"},
			{"Description", "Description"},
		}
		for _, tt := range tests {
			cleaned, _ := CleanHeaders([]string{tt.in})
			if cleaned[0] != tt.want {
				t.Errorf("CleanHeaders(%q) = %q, want %q", tt.in, cleaned[0], tt.want)
			}
		}
	})
}

func TestAlignRows(t *testing.T) {
	headers := []string{"Sl.No", "Description", "Quantity"}
	mapping := map[int]int{0: 0, 1: 0, 2: 1, 3: 1, 4: 2}
	rows := [][]string{
		{"Sl.No", "", "Description", "Description", "Qty"},
		{"1", "x", "Steel", "Desk", "5"},
		{"2", "", "Office Chair", "", "3"},
	}

	aligned := AlignRows(rows, headers, mapping, 0)
	if len(aligned) != 3 {
		t.Fatalf("aligned %d rows, want 3", len(aligned))
	}

	if !reflect.DeepEqual(aligned[0], headers) {
		t.Errorf("header row = %v, want %v", aligned[0], headers)
	}
	if !reflect.DeepEqual(aligned[1], []string{"1 x", "Steel Desk", "5"}) {
		t.Errorf("row 1 = %v", aligned[1])
	}
	if !reflect.DeepEqual(aligned[2], []string{"2", "Office Chair", "3"}) {
		t.Errorf("row 2 = %v", aligned[2])
	}

	for _, row := range aligned {
		if len(row) != len(headers) {
			t.Errorf("row width %d != header width %d", len(row), len(headers))
		}
	}
}
