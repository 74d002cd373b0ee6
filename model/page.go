package model

// PageData is the per-page input handed to extraction strategies. Each
// strategy reads the fields it understands and ignores the rest: the
// positional strategy consumes Tokens, markup-based strategies consume
// HTML, raster-based strategies consume Image.
type PageData struct {
	// Page is the zero-based page number.
	Page int

	// Tokens are the positioned text tokens on the page.
	Tokens []PositionedToken

	// Grids holds pre-extracted candidate grids keyed by the backend
	// that produced them.
	Grids map[string][]*CandidateTable

	// HTML is a markup rendition of the page, when a backend provides
	// one.
	HTML []byte

	// Image is a raster rendition of the page, when available.
	Image []byte
}
