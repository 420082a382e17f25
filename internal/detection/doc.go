// Package detection wraps the frontal face detector used by the demo.
//
// The detector itself is the pigo pixel-intensity-comparison cascade
// (github.com/esimov/pigo). This package loads the packed cascade file,
// runs it over grayscale images, and converts pigo's (row, column, scale)
// detections into plain axis-aligned Rectangle values.
//
// # Coordinate System
//
// Rectangles use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - Left/Top are the inclusive top-left corner
//   - Width/Height are extents in pixels
//
// A rectangle returned by the detector may extend past the image edges when a
// face sits near a border. Callers that need in-bounds boxes should intersect
// Bounds() with the image bounds.
//
// # Result Order
//
// Detect returns rectangles in the order pigo's clustering step produces them.
// They are never re-sorted.
package detection
