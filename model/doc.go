// Package model provides the data types shared by every stage of table
// reconstruction.
//
// # Inputs
//
// The document access layer supplies three kinds of positioned content:
//
//   - [PositionedToken] - a text token with its bounding box
//   - [CandidateTable] - a raw row/column grid proposed by one extraction
//     strategy, not yet validated as a logical table
//   - image bounding boxes, tracked as [ImageRecord]
//
// # Outputs
//
// The canonical result is a [LogicalTable]: cleaned headers, one row per
// physical item, the set of pages it spans, and per-page row bands used to
// place images. [ImageRecord] values reference their table by ID and row
// index rather than by pointer, because rows are resorted and reindexed
// after images are first matched.
//
// # Geometry
//
// [BBox] uses top-down reading coordinates: Y0 is the top edge and Y1 the
// bottom edge, so a token earlier in reading order has a smaller Y0.
package model
