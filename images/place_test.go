package images

import (
	"testing"

	"github.com/tsawler/tablature/model"
)

func TestPlaceWritesImageColumn(t *testing.T) {
	table := threeRowTable()

	placed, warnings := Place(table, []model.ImageRecord{
		{Ref: "img-1", TableID: 0, RowIndex: 0, Matched: true},
		{Ref: "img-2", TableID: 0, RowIndex: 2, Matched: true},
	})
	if len(placed) != 2 {
		t.Fatalf("placed %d images, want 2", len(placed))
	}
	if table.Rows[0][2] != "img-1" || table.Rows[2][2] != "img-2" {
		t.Errorf("image column not written: %v", table.Rows)
	}
	if table.Rows[1][2] != "" {
		t.Errorf("row without an image was written to: %v", table.Rows[1])
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestPlaceFirstClaimWins(t *testing.T) {
	table := threeRowTable()

	placed, warnings := Place(table, []model.ImageRecord{
		{Ref: "img-first", TableID: 0, RowIndex: 1, Matched: true},
		{Ref: "img-second", TableID: 0, RowIndex: 1, Matched: true},
	})
	if placed[1] != "img-first" {
		t.Errorf("slot holds %q, want the first claimant", placed[1])
	}
	if table.Rows[1][2] != "img-first" {
		t.Errorf("cell holds %q, want img-first", table.Rows[1][2])
	}
	if len(warnings) != 1 {
		t.Errorf("want one contention warning, got %v", warnings)
	}
}

func TestPlaceSkipsUnmatchedAndForeign(t *testing.T) {
	table := threeRowTable()

	placed, _ := Place(table, []model.ImageRecord{
		{Ref: "img-unmatched", TableID: 0, RowIndex: 0, Matched: false},
		{Ref: "img-other-table", TableID: 9, RowIndex: 0, Matched: true},
	})
	if len(placed) != 0 {
		t.Errorf("placed %v, want nothing", placed)
	}
}

func TestPlaceOutOfRangeRowWarned(t *testing.T) {
	table := threeRowTable()

	placed, warnings := Place(table, []model.ImageRecord{
		{Ref: "img-lost", TableID: 0, RowIndex: 99, Matched: true},
	})
	if len(placed) != 0 {
		t.Errorf("placed %v, want nothing", placed)
	}
	if len(warnings) != 1 {
		t.Errorf("want one out-of-range warning, got %v", warnings)
	}
}

func TestPlaceNoImageColumn(t *testing.T) {
	table := model.NewLogicalTable(0,
		[]string{"Sl.No", "Description"},
		[][]string{{"1", "Desk"}},
		1, nil,
	)
	placed, warnings := Place(table, []model.ImageRecord{
		{Ref: "img-1", TableID: 0, RowIndex: 0, Matched: true},
	})
	if placed != nil || warnings != nil {
		t.Errorf("Place without an image column = %v, %v", placed, warnings)
	}
}
