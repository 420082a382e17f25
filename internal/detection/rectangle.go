package detection

import (
	"fmt"
	"image"
)

// Rectangle is an axis-aligned bounding box reported by a face detector.
//
// Rectangles are immutable values; nothing links them back to the image they
// were detected in except their position.
type Rectangle struct {
	Left   int `json:"left"`   // Left edge X coordinate (inclusive)
	Top    int `json:"top"`    // Top edge Y coordinate (inclusive)
	Width  int `json:"width"`  // Horizontal extent in pixels
	Height int `json:"height"` // Vertical extent in pixels
}

// Rect builds a Rectangle from its top-left corner and size.
func Rect(left, top, width, height int) Rectangle {
	return Rectangle{Left: left, Top: top, Width: width, Height: height}
}

// FromBounds converts an image.Rectangle into a Rectangle.
func FromBounds(b image.Rectangle) Rectangle {
	b = b.Canon()
	return Rectangle{Left: b.Min.X, Top: b.Min.Y, Width: b.Dx(), Height: b.Dy()}
}

// Right returns the exclusive right edge.
func (r Rectangle) Right() int {
	return r.Left + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rectangle) Bottom() int {
	return r.Top + r.Height
}

// Area is Width × Height in square pixels.
func (r Rectangle) Area() int {
	return r.Width * r.Height
}

// Center returns the center point, rounded toward the top-left.
func (r Rectangle) Center() image.Point {
	return image.Pt(r.Left+r.Width/2, r.Top+r.Height/2)
}

// Bounds returns r as an image.Rectangle.
func (r Rectangle) Bounds() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right(), r.Bottom())
}

// Translate returns r moved by (dx, dy).
func (r Rectangle) Translate(dx, dy int) Rectangle {
	r.Left += dx
	r.Top += dy
	return r
}

func (r Rectangle) String() string {
	return fmt.Sprintf("[(%d, %d) %dx%d]", r.Left, r.Top, r.Width, r.Height)
}
