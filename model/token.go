package model

// PositionedToken is a single text token with its position on a page.
// Tokens are produced by the document access layer and consumed
// read-only by the reconstruction pipeline.
type PositionedToken struct {
	Text string `json:"text"`
	BBox BBox   `json:"bbox"`
	Page int    `json:"page,omitempty"`
}
