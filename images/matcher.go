// Package images places image bounding boxes onto the logical table
// rows they belong to, using the vertical bands recorded when each row
// was reconstructed.
package images

import (
	"fmt"
	"sort"

	"github.com/tsawler/tablature/model"
)

// Matcher assigns page images to table rows by vertical overlap with
// the rows' source bands.
type Matcher struct {
	// MaxDistance bounds the center-distance fallback used when an
	// image overlaps no band at all. Images further than this from
	// every band stay unmatched.
	MaxDistance float64
}

// NewMatcher creates a matcher with default settings.
func NewMatcher() *Matcher {
	return &Matcher{MaxDistance: 150}
}

// Match assigns each image on a page to a row of the logical table.
// The primary rule is maximum vertical overlap with a row band. An
// image overlapping no band falls back to the nearest band by vertical
// distance and is flagged low-confidence; past MaxDistance it stays
// unmatched. When the table recorded no bands for the page, matching
// falls back to sequential pairing. Row indices in the returned
// records are table-global.
//
// Only Ref, BBox and Page are read from the input records; TableID,
// RowIndex, Matched and LowConfidence are overwritten with this
// match's bookkeeping.
func (m *Matcher) Match(table *model.LogicalTable, page int, images []model.ImageRecord) ([]model.ImageRecord, []string) {
	if table == nil || len(images) == 0 {
		return nil, nil
	}

	bands := table.RowBands[page]
	if len(bands) == 0 {
		return m.matchSequential(table, page, images)
	}
	offset := table.PageRowOffset(page)

	var warnings []string
	out := make([]model.ImageRecord, 0, len(images))
	for _, img := range images {
		rec := model.ImageRecord{Ref: img.Ref, BBox: img.BBox, Page: img.Page, TableID: table.ID}
		band := model.Band{Top: img.BBox.Y0, Bottom: img.BBox.Y1}

		bestRow, bestOverlap := -1, 0.0
		nearestRow, nearestDist := -1, 0.0
		for idx, rb := range bands {
			if ov := band.Overlap(rb); ov > bestOverlap {
				bestRow, bestOverlap = idx, ov
			}
			if d := rb.DistanceTo(img.BBox); nearestRow < 0 || d < nearestDist {
				nearestRow, nearestDist = idx, d
			}
		}

		switch {
		case bestRow >= 0:
			rec.Matched = true
			rec.RowIndex = offset + bestRow

		case nearestRow >= 0 && nearestDist <= m.MaxDistance:
			rec.Matched = true
			rec.LowConfidence = true
			rec.RowIndex = offset + nearestRow
			warnings = append(warnings,
				fmt.Sprintf("image %q on page %d overlaps no row, matched nearest row by distance %.1f", rec.Ref, page, nearestDist))

		default:
			rec.Matched = false
			rec.RowIndex = -1
			warnings = append(warnings,
				fmt.Sprintf("image %q on page %d could not be matched to any row", rec.Ref, page))
		}
		out = append(out, rec)
	}
	return out, warnings
}

// matchSequential pairs images to data rows in vertical order when no
// band geometry survives for the page. Excess images are truncated.
func (m *Matcher) matchSequential(table *model.LogicalTable, page int, images []model.ImageRecord) ([]model.ImageRecord, []string) {
	sorted := make([]model.ImageRecord, len(images))
	copy(sorted, images)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].BBox.CenterY() < sorted[b].BBox.CenterY()
	})

	var warnings []string
	offset := table.PageRowOffset(page)
	avail, ok := table.PageRows[page]
	if !ok {
		avail = len(table.Rows) - offset
	}
	if avail < 0 {
		avail = 0
	}
	if len(sorted) > avail {
		warnings = append(warnings,
			fmt.Sprintf("page %d has %d images but only %d rows, truncating", page, len(sorted), avail))
		sorted = sorted[:avail]
	}

	out := make([]model.ImageRecord, 0, len(sorted))
	for idx, img := range sorted {
		out = append(out, model.ImageRecord{
			Ref:           img.Ref,
			BBox:          img.BBox,
			Page:          img.Page,
			TableID:       table.ID,
			Matched:       true,
			LowConfidence: true,
			RowIndex:      offset + idx,
		})
	}
	if len(out) > 0 {
		warnings = append(warnings,
			fmt.Sprintf("page %d has no row geometry, images matched sequentially", page))
	}
	return out, warnings
}
