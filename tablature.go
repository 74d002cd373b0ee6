// Package tablature reconstructs logical tables from document pages:
// positioned text tokens, candidate grids from extraction backends, and
// image bounding boxes go in, canonical tables with headers, merged
// rows, placed images and multi-page continuations come out.
//
// Basic usage:
//
//	engine := tablature.New(tablature.DefaultOptions())
//	result, err := engine.Reconstruct(ctx, source)
//	if err != nil {
//	    // handle error
//	}
//	if len(result.Warnings) > 0 {
//	    log.Println("Warnings:", tablature.FormatWarnings(result.Warnings))
//	}
//
// For advanced use cases, the lower-level classify, columns, rows,
// consensus, images and multipage packages are also available.
package tablature

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
