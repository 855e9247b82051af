package model

// Quad is a coordinate quad [x, y, width, height] in image pixel space.
// Quads come straight off the wire and may be short or absent; callers must
// check Valid before reading components.
type Quad []float64

// Valid reports whether the quad carries all four components.
func (q Quad) Valid() bool {
	return len(q) >= 4
}

// X returns the left edge coordinate.
func (q Quad) X() float64 { return q[0] }

// Y returns the top edge coordinate.
func (q Quad) Y() float64 { return q[1] }

// Width returns the quad width.
func (q Quad) Width() float64 { return q[2] }

// Height returns the quad height.
func (q Quad) Height() float64 { return q[3] }

// Right returns the right edge coordinate (x + width).
func (q Quad) Right() float64 { return q[0] + q[2] }

// Bottom returns the bottom edge coordinate (y + height).
// Image coordinates grow downward, so this is the larger y value.
func (q Quad) Bottom() float64 { return q[1] + q[3] }

// Area returns width * height.
func (q Quad) Area() float64 { return q[2] * q[3] }

// InBounds reports whether the quad lies entirely within an image of the
// given size. Touching an edge exactly (x+width == w) is in bounds.
func (q Quad) InBounds(w, h float64) bool {
	return q.X() >= 0 && q.Y() >= 0 && q.Right() <= w && q.Bottom() <= h
}

// BBox represents a derived bounding box in image pixel space.
type BBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewBBox creates a bounding box from coordinates.
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Area returns the area of the bounding box.
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// IsEmpty returns true if the bounding box has zero area.
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}
