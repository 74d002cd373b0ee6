// Package strategies provides the built-in extraction strategies:
// positional reconstruction from text tokens, pass-through of backend
// grids, HTML markup parsing, OCR word-box reconstruction, and a
// model-based backend.
//
// The positional, layout and layout-preserving strategies are
// registered globally on init. The OCR strategy requires a local
// Tesseract installation and the model strategy requires an API key,
// so both are constructed explicitly by callers.
package strategies
