package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestRaster_SetAndGet(t *testing.T) {
	r := NewRaster(10, 5)
	r.SetRGB(3, 4, RGBColor{1, 2, 3})

	if got := r.RGB(3, 4); got != (RGBColor{1, 2, 3}) {
		t.Errorf("RGB(3,4): got %+v, want {1 2 3}", got)
	}

	i := r.PixOffset(3, 4)
	if i != (4*10+3)*3 {
		t.Errorf("PixOffset(3,4): got %d", i)
	}
}

func TestRaster_SetOutOfBounds(t *testing.T) {
	r := NewRaster(4, 4)
	r.SetRGB(-1, 0, Gray(9))
	r.SetRGB(4, 0, Gray(9))
	r.SetRGB(0, 4, Gray(9))

	for i, v := range r.Pix {
		if v != 0 {
			t.Fatalf("sample %d modified by out-of-bounds write: %d", i, v)
		}
	}
}

func TestRaster_FillRectClipped(t *testing.T) {
	r := NewRaster(10, 10)
	r.FillRect(image.Rect(-5, -5, 3, 3), Gray(50))

	if got := r.RGB(2, 2); got != Gray(50) {
		t.Errorf("inside fill: got %+v", got)
	}
	if got := r.RGB(3, 3); got != Gray(0) {
		t.Errorf("outside fill: got %+v", got)
	}
}

func TestRaster_ImageInterface(t *testing.T) {
	r := NewRaster(2, 2)
	r.SetRGB(1, 0, RGBColor{10, 20, 30})

	var img image.Image = r
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds: got %v", img.Bounds())
	}

	got := color.RGBAModel.Convert(img.At(1, 0)).(color.RGBA)
	want := color.RGBA{10, 20, 30, 255}
	if got != want {
		t.Errorf("At(1,0): got %+v, want %+v", got, want)
	}

	if got := img.At(5, 5); got != (color.RGBA{}) {
		t.Errorf("At out of bounds: got %+v, want transparent", got)
	}
}

func TestRaster_Clone(t *testing.T) {
	r := NewRaster(3, 3)
	r.Fill(Gray(7))
	c := r.Clone()
	c.SetRGB(0, 0, Gray(1))

	if r.RGB(0, 0) != Gray(7) {
		t.Error("modifying clone changed original")
	}
}
