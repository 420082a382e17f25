package imaging

import (
	"image"
	"image/color"
)

// Channels is the number of interleaved samples per Raster pixel.
const Channels = 3

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Gray returns an RGBColor with the same value in every channel.
func Gray(v uint8) RGBColor {
	return RGBColor{R: v, G: v, B: v}
}

// Raster is a fixed-size grid of 8-bit RGB samples.
//
// Pix holds Height rows of Width pixels, each pixel being Channels consecutive
// samples in R, G, B order. The zero value is an empty raster.
//
// Raster implements image.Image as an opaque RGBA image so it can be passed to
// any code that accepts the standard image interfaces.
type Raster struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewRaster allocates a black raster of the given dimensions.
func NewRaster(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}
}

// Shape returns the raster dimensions as (height, width, channels).
func (r *Raster) Shape() (height, width, channels int) {
	return r.Height, r.Width, Channels
}

// PixOffset returns the index of the first sample of pixel (x, y) in Pix.
func (r *Raster) PixOffset(x, y int) int {
	return (y*r.Width + x) * Channels
}

// RGB returns the samples of pixel (x, y). The coordinates must be in bounds.
func (r *Raster) RGB(x, y int) RGBColor {
	i := r.PixOffset(x, y)
	return RGBColor{R: r.Pix[i], G: r.Pix[i+1], B: r.Pix[i+2]}
}

// SetRGB sets pixel (x, y). Out-of-bounds coordinates are ignored.
func (r *Raster) SetRGB(x, y int, c RGBColor) {
	if !(image.Point{X: x, Y: y}.In(r.Bounds())) {
		return
	}
	i := r.PixOffset(x, y)
	r.Pix[i] = c.R
	r.Pix[i+1] = c.G
	r.Pix[i+2] = c.B
}

// Fill sets every pixel to c.
func (r *Raster) Fill(c RGBColor) {
	r.FillRect(r.Bounds(), c)
}

// FillRect sets every pixel inside rect to c. The rectangle is clipped to the
// raster bounds.
func (r *Raster) FillRect(rect image.Rectangle, c RGBColor) {
	rect = rect.Intersect(r.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		i := r.PixOffset(rect.Min.X, y)
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r.Pix[i] = c.R
			r.Pix[i+1] = c.G
			r.Pix[i+2] = c.B
			i += Channels
		}
	}
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	pix := make([]uint8, len(r.Pix))
	copy(pix, r.Pix)
	return &Raster{Width: r.Width, Height: r.Height, Pix: pix}
}

// ColorModel implements image.Image.
func (r *Raster) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

// At implements image.Image. Pixels outside the bounds are transparent black.
func (r *Raster) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(r.Bounds())) {
		return color.RGBA{}
	}
	c := r.RGB(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
