package images

import (
	"fmt"

	"github.com/tsawler/tablature/classify"
	"github.com/tsawler/tablature/model"
)

// Placement maps (row index, image column) slots to the image
// reference occupying them.
type Placement map[int]string

// Place writes matched image references into the table's image column
// slots. The first image to claim a (row, image-column) slot wins;
// later claimants are reported via warning and stay out of the
// placement. Tables without an image column get no placement.
func Place(table *model.LogicalTable, records []model.ImageRecord) (Placement, []string) {
	if table == nil {
		return nil, nil
	}
	imageCol := imageColumn(table.Headers)
	if imageCol < 0 {
		return nil, nil
	}

	var warnings []string
	placed := make(Placement)
	for _, rec := range records {
		if !rec.Matched || rec.TableID != table.ID {
			continue
		}
		if rec.RowIndex < 0 || rec.RowIndex >= len(table.Rows) {
			warnings = append(warnings,
				fmt.Sprintf("image %q matched out-of-range row %d", rec.Ref, rec.RowIndex))
			continue
		}
		if prev, taken := placed[rec.RowIndex]; taken {
			warnings = append(warnings,
				fmt.Sprintf("row %d already holds image %q, dropping %q from the slot", rec.RowIndex, prev, rec.Ref))
			continue
		}
		placed[rec.RowIndex] = rec.Ref
		if imageCol < len(table.Rows[rec.RowIndex]) {
			table.Rows[rec.RowIndex][imageCol] = rec.Ref
		}
	}
	return placed, warnings
}

// imageColumn finds the table's image column by header semantics, or -1.
func imageColumn(headers []string) int {
	for idx, header := range headers {
		h := classify.Normalize(header)
		if h == "image" || h == "img" || h == "photo" || h == "picture" || h == "item image" {
			return idx
		}
	}
	return -1
}
