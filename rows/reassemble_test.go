package rows

import (
	"reflect"
	"testing"
)

func TestRepairSplitText(t *testing.T) {
	r := NewReassembler()
	headers := []string{"Sl.No", "Item Details", "", "", "Qty", "Rate"}

	rows := [][]string{
		headers,
		{"1", "Executive desk", "with lockable", "drawers", "2", "450"},
		{"2", "Office chair", "", "mesh back", "4", "150"},
	}

	fixed := r.Repair(rows, headers, 0)

	if !reflect.DeepEqual(fixed[0], headers) {
		t.Errorf("header row modified: %v", fixed[0])
	}
	if fixed[1][1] != "Executive desk with lockable drawers" {
		t.Errorf("row 1 details = %q", fixed[1][1])
	}
	if fixed[1][2] != "" || fixed[1][3] != "" {
		t.Errorf("spillover cells not cleared: %v", fixed[1])
	}
	if fixed[1][4] != "2" || fixed[1][5] != "450" {
		t.Errorf("numeric cells disturbed: %v", fixed[1])
	}
	if fixed[2][1] != "Office chair mesh back" {
		t.Errorf("row 2 details = %q (empty spacing column should be skipped)", fixed[2][1])
	}
}

func TestRepairStopsAtNumericHeader(t *testing.T) {
	r := NewReassembler()
	headers := []string{"Item Details", "Qty", ""}

	rows := [][]string{
		headers,
		{"Steel cabinet", "4", "leftover"},
	}
	fixed := r.Repair(rows, headers, 0)
	if fixed[1][0] != "Steel cabinet" {
		t.Errorf("sweep crossed a numeric header: %q", fixed[1][0])
	}
	if fixed[1][2] != "leftover" {
		t.Errorf("cell beyond numeric header disturbed: %v", fixed[1])
	}
}

func TestRepairStopsAtNumberAndCode(t *testing.T) {
	r := NewReassembler()
	headers := []string{"Item Details", "", ""}

	t.Run("pure number ends the sweep", func(t *testing.T) {
		rows := [][]string{
			headers,
			{"Cabinet", "450.00", "more text"},
		}
		fixed := r.Repair(rows, headers, 0)
		if fixed[1][0] != "Cabinet" || fixed[1][1] != "450.00" {
			t.Errorf("sweep absorbed a number: %v", fixed[1])
		}
	})

	t.Run("product code ends the sweep", func(t *testing.T) {
		rows := [][]string{
			headers,
			{"Filing unit", "LF200A", "more text"},
		}
		fixed := r.Repair(rows, headers, 0)
		if fixed[1][0] != "Filing unit" || fixed[1][1] != "LF200A" {
			t.Errorf("sweep absorbed a product code: %v", fixed[1])
		}
	})
}

func TestRepairPriorityOrder(t *testing.T) {
	r := NewReassembler()
	// Details (priority 1) sweeps before Name (priority 2); Name's sweep
	// stops when it reaches the higher-priority Details column.
	headers := []string{"Item Name", "", "Item Details", ""}
	rows := [][]string{
		headers,
		{"Widget", "deluxe", "Main spec", "continued"},
	}
	fixed := r.Repair(rows, headers, 0)
	if fixed[1][2] != "Main spec continued" {
		t.Errorf("details = %q", fixed[1][2])
	}
	if fixed[1][0] != "Widget deluxe" {
		t.Errorf("name = %q", fixed[1][0])
	}
	if fixed[1][1] != "" || fixed[1][3] != "" {
		t.Errorf("spillover cells not cleared: %v", fixed[1])
	}
}

func TestRepairNoTextColumns(t *testing.T) {
	r := NewReassembler()
	headers := []string{"Qty", "Rate"}
	rows := [][]string{
		headers,
		{"2", "450"},
	}
	fixed := r.Repair(rows, headers, 0)
	if !reflect.DeepEqual(fixed, rows) {
		t.Errorf("rows changed with no text columns: %v", fixed)
	}
}
