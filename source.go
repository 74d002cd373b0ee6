package tablature

import "github.com/tsawler/tablature/model"

// DocumentSource supplies per-page raw material for reconstruction.
// Implementations wrap whatever produced the document data: a PDF text
// extractor, a scanning pipeline, or test fixtures. Page numbers are
// zero-based.
type DocumentSource interface {
	// PageCount returns the number of pages in the document.
	PageCount() (int, error)

	// Tokens returns the positioned text tokens on a page.
	Tokens(page int) ([]model.PositionedToken, error)

	// Grids returns the candidate grids a named backend pre-extracted
	// for a page. Unknown backends return nil, nil.
	Grids(page int, strategy string) ([]*model.CandidateTable, error)

	// Images returns the image bounding boxes on a page.
	Images(page int) ([]SourceImage, error)
}

// SourceImage is one embedded image on a page.
type SourceImage struct {
	// Ref identifies the image to the caller (a filename, an object
	// id, a storage key).
	Ref string

	// BBox is the image's position on the page.
	BBox model.BBox
}

// HTMLProvider is an optional DocumentSource capability: sources that
// can render a page as HTML markup enable the markup-based strategy.
type HTMLProvider interface {
	HTML(page int) ([]byte, error)
}

// RasterProvider is an optional DocumentSource capability: sources
// that can render a page as an image enable the OCR and model
// strategies.
type RasterProvider interface {
	Render(page int) ([]byte, error)
}
