package report

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/face-detect-demo/internal/detection"
	overlay "github.com/ironsheep/face-detect-demo/internal/imaging"
)

var red = color.NRGBA{255, 0, 0, 255}

func nrgbaAt(img *image.NRGBA, x, y int) color.NRGBA {
	return img.NRGBAAt(x, y)
}

func TestParseHighlight(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#FF0000", red, false},
		{"#00ff00", color.NRGBA{0, 255, 0, 255}, false},
		{"#00F", color.NRGBA{0, 0, 255, 255}, false},
		{"red", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHighlight(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := color.NRGBAModel.Convert(c).(color.NRGBA); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRenderFigure_Layout(t *testing.T) {
	src := overlay.ComposeBase()
	fig := RenderFigure(src, nil, DefaultStyle())

	wantW := 400*2 + 2*figureMargin
	wantH := 400*2 + figureTitleBand + figureMargin
	if fig.Bounds().Dx() != wantW || fig.Bounds().Dy() != wantH {
		t.Fatalf("figure size: got %v, want %dx%d", fig.Bounds().Size(), wantW, wantH)
	}

	// Background pixel (0,0) of the source, enlarged 2x
	if got := nrgbaAt(fig, figureMargin+1, figureTitleBand+1); got != (color.NRGBA{240, 240, 240, 255}) {
		t.Errorf("scaled background: got %+v", got)
	}
	// Face 1 skin at source (60,60)
	if got := nrgbaAt(fig, figureMargin+120, figureTitleBand+120); got != (color.NRGBA{200, 180, 160, 255}) {
		t.Errorf("scaled skin: got %+v", got)
	}
	// Margin stays white
	if got := nrgbaAt(fig, 2, wantH-2); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("margin: got %+v", got)
	}
}

func TestRenderFigure_Boxes(t *testing.T) {
	src := overlay.ComposeBase()
	faces := []detection.Rectangle{
		detection.Rect(50, 50, 100, 100),
		detection.Rect(200, 200, 100, 100),
	}

	fig := RenderFigure(src, faces, DefaultStyle())

	for _, f := range faces {
		left := figureMargin + f.Left*2
		top := figureTitleBand + f.Top*2
		right := figureMargin + f.Right()*2 - 1
		bottom := figureTitleBand + f.Bottom()*2 - 1
		midX := (left + right) / 2
		midY := (top + bottom) / 2

		edges := []image.Point{{left, midY}, {right, midY}, {midX, top}, {midX, bottom}, {left + 1, midY}}
		for _, p := range edges {
			if got := nrgbaAt(fig, p.X, p.Y); got != red {
				t.Errorf("face %v: edge pixel %v got %+v, want red", f, p, got)
			}
		}

		// Unfilled: interior keeps the image color
		if got := nrgbaAt(fig, left+10, top+10); got == red {
			t.Errorf("face %v: interior was filled", f)
		}
	}
}

func TestRenderFigure_LabelAboveBox(t *testing.T) {
	src := overlay.ComposeBase()
	face := detection.Rect(200, 200, 100, 100)

	fig := RenderFigure(src, []detection.Rectangle{face}, DefaultStyle())

	left := figureMargin + face.Left*2
	top := figureTitleBand + face.Top*2
	width := overlay.LabelWidth(FaceLabel(0)) + 1

	found := false
	for y := top - labelGap - overlay.LabelHeight(); y < top-labelGap && !found; y++ {
		for x := left; x < left+width; x++ {
			if nrgbaAt(fig, x, y) == red {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no label pixels found just above the box")
	}
}

func TestRenderFigure_LegendOnlyWithFaces(t *testing.T) {
	src := overlay.ComposeBase()
	area := image.Rect(figureMargin, figureTitleBand, figureMargin+800, figureTitleBand+800)

	countRed := func(fig *image.NRGBA) int {
		n := 0
		for y := area.Min.Y; y < area.Min.Y+60; y++ {
			for x := area.Max.X - 120; x < area.Max.X; x++ {
				if nrgbaAt(fig, x, y) == red {
					n++
				}
			}
		}
		return n
	}

	if n := countRed(RenderFigure(src, nil, DefaultStyle())); n != 0 {
		t.Errorf("legend drawn without faces (%d red pixels)", n)
	}
	// Boxes far from the legend area, so red pixels there belong to the legend sample
	faces := []detection.Rectangle{detection.Rect(10, 300, 40, 40), detection.Rect(60, 300, 40, 40)}
	if n := countRed(RenderFigure(src, faces, DefaultStyle())); n == 0 {
		t.Error("legend sample missing")
	}
}

func TestRenderFigure_DoesNotMutate(t *testing.T) {
	src := overlay.ComposeBase()
	before := src.Clone()
	faces := []detection.Rectangle{detection.Rect(50, 50, 100, 100)}

	_ = RenderFigure(src, faces, DefaultStyle())

	for i := range src.Pix {
		if src.Pix[i] != before.Pix[i] {
			t.Fatalf("source sample %d modified", i)
		}
	}
	if faces[0] != detection.Rect(50, 50, 100, 100) {
		t.Error("faces modified")
	}
}

func TestRenderFigure_ZeroStyle(t *testing.T) {
	src := overlay.NewRaster(10, 10)
	fig := RenderFigure(src, []detection.Rectangle{detection.Rect(0, 0, 5, 5)}, Style{})

	if fig.Bounds().Dx() != 10+2*figureMargin {
		t.Errorf("zero scale should render at 1x, got width %d", fig.Bounds().Dx())
	}
}

func TestFigureTitle(t *testing.T) {
	if got := FigureTitle(2); got != "Face Detection Results - Found 2 face(s)" {
		t.Errorf("FigureTitle(2): got %q", got)
	}
}
