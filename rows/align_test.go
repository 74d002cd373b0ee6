package rows

import (
	"reflect"
	"testing"
)

func TestCleanCell(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  Desk  ", "Desk"},
		{"Steel    cabinet", "Steel cabinet"},
		{"two  spaces kept", "two  spaces kept"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanCell(tt.in); got != tt.want {
			t.Errorf("CleanCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFillEmpty(t *testing.T) {
	grid := [][]string{
		{"1", "Desk"},
		{"2", "Chair", "4", "150"},
		{"3"},
	}
	filled := FillEmpty(grid, 3)

	want := [][]string{
		{"1", "Desk", ""},
		{"2", "Chair", "4 150"},
		{"3", "", ""},
	}
	if !reflect.DeepEqual(filled, want) {
		t.Errorf("filled = %v, want %v", filled, want)
	}
	for _, row := range filled {
		if len(row) != 3 {
			t.Errorf("row width %d, want 3", len(row))
		}
	}
}

func TestFillEmptyZeroWidth(t *testing.T) {
	grid := [][]string{{"a"}}
	if got := FillEmpty(grid, 0); !reflect.DeepEqual(got, grid) {
		t.Errorf("FillEmpty with zero width should return input, got %v", got)
	}
}
