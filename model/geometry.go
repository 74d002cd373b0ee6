package model

import "math"

// Point represents a 2D point in top-down page coordinates.
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents a bounding box in top-down page coordinates:
// (X0, Y0) is the top-left corner and (X1, Y1) the bottom-right.
type BBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// NewBBox creates a bounding box from its corner coordinates.
func NewBBox(x0, y0, x1, y1 float64) BBox {
	return BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Y1 - b.Y0
}

// CenterX returns the horizontal center of the box.
func (b BBox) CenterX() float64 {
	return (b.X0 + b.X1) / 2
}

// CenterY returns the vertical center of the box.
func (b BBox) CenterY() float64 {
	return (b.Y0 + b.Y1) / 2
}

// Center returns the center point of the box.
func (b BBox) Center() Point {
	return Point{X: b.CenterX(), Y: b.CenterY()}
}

// Area returns the area of the bounding box.
func (b BBox) Area() float64 {
	return b.Width() * b.Height()
}

// IsEmpty reports whether the box has zero or negative extent.
func (b BBox) IsEmpty() bool {
	return b.X1 <= b.X0 || b.Y1 <= b.Y0
}

// Intersects reports whether two boxes overlap.
func (b BBox) Intersects(other BBox) bool {
	return !(b.X1 < other.X0 ||
		b.X0 > other.X1 ||
		b.Y1 < other.Y0 ||
		b.Y0 > other.Y1)
}

// Union returns the smallest box covering both boxes.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0: math.Min(b.X0, other.X0),
		Y0: math.Min(b.Y0, other.Y0),
		X1: math.Max(b.X1, other.X1),
		Y1: math.Max(b.Y1, other.Y1),
	}
}

// VerticalOverlap returns the length of the shared vertical interval
// between the two boxes, or 0 if they do not overlap vertically.
func (b BBox) VerticalOverlap(other BBox) float64 {
	top := math.Max(b.Y0, other.Y0)
	bottom := math.Min(b.Y1, other.Y1)
	if bottom <= top {
		return 0
	}
	return bottom - top
}

// Band is a vertical interval on a page, typically the extent of one
// table row. Top < Bottom in top-down coordinates.
type Band struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Overlap returns the length of the shared interval with another band.
func (bd Band) Overlap(other Band) float64 {
	top := math.Max(bd.Top, other.Top)
	bottom := math.Min(bd.Bottom, other.Bottom)
	if bottom <= top {
		return 0
	}
	return bottom - top
}

// OverlapBBox returns the shared vertical interval length with a box.
func (bd Band) OverlapBBox(b BBox) float64 {
	return bd.Overlap(Band{Top: b.Y0, Bottom: b.Y1})
}

// Center returns the vertical midpoint of the band.
func (bd Band) Center() float64 {
	return (bd.Top + bd.Bottom) / 2
}

// DistanceTo returns the vertical distance from the band to a box, or 0
// if they overlap.
func (bd Band) DistanceTo(b BBox) float64 {
	if bd.OverlapBBox(b) > 0 {
		return 0
	}
	if b.Y1 < bd.Top {
		return bd.Top - b.Y1
	}
	return b.Y0 - bd.Bottom
}
