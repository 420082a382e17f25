// Package imaging provides the raster primitives used by the face detection demo.
//
// This package owns the in-memory test image (Raster), the synthetic test image
// generator, grayscale conversion for the detector, and the low-level overlay
// drawing used when rendering detection figures. Raster implements image.Image,
// so it can be handed directly to the standard library and to third-party
// imaging packages.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, the top-left corner is inclusive and the bottom-right corner
//     is exclusive, matching image.Rectangle
//
// # Sample Layout
//
// A Raster stores 8-bit samples in row-major order with interleaved RGB
// channels, giving a logical shape of (height, width, 3). Every sample is in
// [0,255]; arithmetic that could leave that range is clamped, never wrapped.
//
// # Thread Safety
//
// Rasters are plain values with no internal locking. Synthesis and conversion
// functions are stateless and return new images; they never mutate their input.
package imaging
