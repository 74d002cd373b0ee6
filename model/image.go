package model

// ImageRecord tracks one image detected on a page and the logical table
// row it belongs to. Records are created once per detected image and are
// never deleted; an image with no qualifying row is kept but flagged.
//
// The record holds a non-owning back-reference (table ID plus row index)
// instead of a pointer, because table rows are resorted and reindexed
// after images are assigned. RowIndex is written at most twice: once by
// the geometric match and once by the post-sort remap.
type ImageRecord struct {
	// Ref is the opaque byte handle issued by the document access layer.
	Ref  string `json:"ref"`
	BBox BBox   `json:"bbox"`
	Page int    `json:"page"`

	TableID  int `json:"table_id"`
	RowIndex int `json:"row_index"`

	// Matched reports whether the record has been assigned to a row.
	Matched bool `json:"matched"`

	// LowConfidence marks assignments made by fallback rules (nearest
	// row, sequential pairing, or an unmapped index after a resort).
	LowConfidence bool `json:"low_confidence,omitempty"`
}
