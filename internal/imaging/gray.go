package imaging

import (
	"image"
)

// Grayscale reduces an image to a single channel by averaging the R, G and B
// components of each pixel. The mean is truncated toward zero, so a pixel of
// (200, 180, 161) becomes 180.
//
// Unlike luminance-weighted conversions, every channel contributes equally.
// Alpha is ignored. The result has the same bounds as src.
func Grayscale(src image.Image) *image.Gray {
	if r, ok := src.(*Raster); ok {
		return rasterGrayscale(r)
	}

	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			// Convert to 8-bit before averaging
			sum := int(r>>8) + int(g>>8) + int(b>>8)
			dst.Pix[dst.PixOffset(x, y)] = uint8(sum / 3)
		}
	}
	return dst
}

func rasterGrayscale(r *Raster) *image.Gray {
	dst := image.NewGray(r.Bounds())
	for i, j := 0, 0; i < len(r.Pix); i, j = i+Channels, j+1 {
		sum := int(r.Pix[i]) + int(r.Pix[i+1]) + int(r.Pix[i+2])
		dst.Pix[j] = uint8(sum / 3)
	}
	return dst
}
