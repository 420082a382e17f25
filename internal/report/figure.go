package report

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/face-detect-demo/internal/detection"
	overlay "github.com/ironsheep/face-detect-demo/internal/imaging"
)

// DefaultHighlight is the box and label color when none is configured.
const DefaultHighlight = "#FF0000"

// Figure layout in output pixels.
const (
	figureMargin     = 20
	figureTitleBand  = 34
	labelGap         = 5
	legendPadding    = 6
	legendSampleLen  = 24
	legendInsetRight = 10
)

// Style controls how a figure is drawn.
type Style struct {
	// Highlight is the color of boxes, labels and the legend sample.
	Highlight color.Color

	// Scale multiplies the source image size. Values below 1 are treated as 1.
	Scale int

	// LineWidth is the box stroke width in output pixels.
	LineWidth int
}

// DefaultStyle draws red 2px boxes on a 2x enlargement, roughly the 8x8 inch
// figure the demo has always produced for a 400px image.
func DefaultStyle() Style {
	red, _ := ParseHighlight(DefaultHighlight)
	return Style{Highlight: red, Scale: 2, LineWidth: 2}
}

// ParseHighlight parses a "#RRGGBB" or "#RGB" color.
func ParseHighlight(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid highlight color %q: %w", hex, err)
	}
	return c.Clamped(), nil
}

// FigureTitle is the title drawn above the image.
func FigureTitle(count int) string {
	return fmt.Sprintf("Face Detection Results - Found %d face(s)", count)
}

// RenderFigure draws src with a title, one unfilled box and "Face N" label
// per face, and a legend naming only the first face. Neither src nor faces is
// modified.
func RenderFigure(src image.Image, faces []detection.Rectangle, style Style) *image.NRGBA {
	scale := style.Scale
	if scale < 1 {
		scale = 1
	}
	if style.Highlight == nil {
		style.Highlight = DefaultStyle().Highlight
	}

	b := src.Bounds()
	imgW, imgH := b.Dx()*scale, b.Dy()*scale
	origin := image.Pt(figureMargin, figureTitleBand)

	canvas := imaging.New(imgW+2*figureMargin, imgH+figureTitleBand+figureMargin, color.White)

	// Work on an RGBA copy so resampling does not go through At().
	scaled := imaging.Resize(clone.AsRGBA(src), imgW, imgH, imaging.NearestNeighbor)
	canvas = imaging.Paste(canvas, scaled, origin)

	title := FigureTitle(len(faces))
	titleX := (canvas.Bounds().Dx() - overlay.LabelWidth(title)) / 2
	overlay.DrawLabel(canvas, titleX, figureTitleBand/2+overlay.LabelHeight()/2, title, color.Black, false)

	for i, face := range faces {
		box := image.Rect(
			face.Left*scale, face.Top*scale,
			face.Right()*scale, face.Bottom()*scale,
		).Add(origin).Sub(b.Min.Mul(scale))

		overlay.StrokeRect(canvas, box, style.Highlight, style.LineWidth)
		overlay.DrawLabel(canvas, box.Min.X, box.Min.Y-labelGap, FaceLabel(i), style.Highlight, true)
	}

	if len(faces) > 0 {
		drawLegend(canvas, image.Rectangle{Min: origin, Max: origin.Add(image.Pt(imgW, imgH))}, style)
	}

	return canvas
}

// drawLegend places a single-entry legend in the upper right of area.
func drawLegend(canvas *image.NRGBA, area image.Rectangle, style Style) {
	label := FaceLabel(0)
	w := legendPadding*3 + legendSampleLen + overlay.LabelWidth(label)
	h := legendPadding*2 + overlay.LabelHeight()

	corner := image.Pt(area.Max.X-legendInsetRight-w, area.Min.Y+legendInsetRight)
	box := image.Rectangle{Min: corner, Max: corner.Add(image.Pt(w, h))}

	overlay.FillRectColor(canvas, box, color.White)
	overlay.StrokeRect(canvas, box, color.Gray{Y: 200}, 1)

	midY := box.Min.Y + h/2
	sample := image.Rect(box.Min.X+legendPadding, midY-style.LineWidth/2, box.Min.X+legendPadding+legendSampleLen, midY-style.LineWidth/2+max(style.LineWidth, 1))
	overlay.FillRectColor(canvas, sample, style.Highlight)

	textX := sample.Max.X + legendPadding
	overlay.DrawLabel(canvas, textX, box.Max.Y-legendPadding, label, color.Black, false)
}
