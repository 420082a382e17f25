package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LabelFace is the font used for overlay text.
var LabelFace font.Face = basicfont.Face7x13

// StrokeRect draws the outline of r onto dst with the given line width. The
// stroke lies inside r. Parts of the outline outside dst are clipped.
func StrokeRect(dst draw.Image, r image.Rectangle, c color.Color, width int) {
	if width < 1 {
		width = 1
	}
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), // top
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), // bottom
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), // left
		image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), // right
	}
	for _, e := range edges {
		e = e.Intersect(r).Intersect(dst.Bounds())
		if e.Empty() {
			continue
		}
		draw.Draw(dst, e, src, image.Point{}, draw.Over)
	}
}

// FillRectColor fills r (clipped to dst) with a solid color.
func FillRectColor(dst draw.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// DrawLabel draws text with its baseline starting at (x, y). When bold is set
// the glyphs are drawn a second time one pixel to the right.
func DrawLabel(dst draw.Image, x, y int, text string, c color.Color, bold bool) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: LabelFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	if bold {
		d.Dot = fixed.P(x+1, y)
		d.DrawString(text)
	}
}

// LabelWidth returns the advance width of text in pixels.
func LabelWidth(text string) int {
	return font.MeasureString(LabelFace, text).Ceil()
}

// LabelHeight returns the ascent of LabelFace in pixels.
func LabelHeight() int {
	return LabelFace.Metrics().Ascent.Ceil()
}
