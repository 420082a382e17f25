package imaging

import (
	"image"
	"math/rand/v2"
)

// Synthetic test image parameters.
const (
	SynthWidth      = 400
	SynthHeight     = 400
	BackgroundLevel = 240

	// NoiseCeiling is the exclusive upper bound of the per-sample noise.
	NoiseCeiling = 50
)

// FaceRegion describes one face-like block of the synthetic test image: a
// solid skin-tone square with a darker square inside it standing in for eyes.
type FaceRegion struct {
	Bounds   image.Rectangle
	Skin     RGBColor
	Eyes     image.Rectangle
	EyeColor RGBColor
}

// SyntheticFaces are the face-like regions painted by ComposeBase, in paint
// order. The two regions are disjoint.
var SyntheticFaces = []FaceRegion{
	{
		Bounds:   image.Rect(50, 50, 150, 150),
		Skin:     RGBColor{R: 200, G: 180, B: 160},
		Eyes:     image.Rect(80, 80, 120, 120),
		EyeColor: Gray(100),
	},
	{
		Bounds:   image.Rect(200, 200, 300, 300),
		Skin:     RGBColor{R: 180, G: 160, B: 140},
		Eyes:     image.Rect(230, 230, 270, 270),
		EyeColor: Gray(80),
	},
}

// ComposeBase returns the noise-free synthetic test image: a light background
// with every region of SyntheticFaces painted on top.
func ComposeBase() *Raster {
	r := NewRaster(SynthWidth, SynthHeight)
	r.Fill(Gray(BackgroundLevel))
	for _, f := range SyntheticFaces {
		r.FillRect(f.Bounds, f.Skin)
		r.FillRect(f.Eyes, f.EyeColor)
	}
	return r
}

// Synthesize builds the synthetic test image and subtracts independent noise,
// drawn uniformly from [0, NoiseCeiling), from every sample.
//
// The shape of the result never depends on rng; only the sample values do.
// Results are clamped to [0,255] before being stored.
func Synthesize(rng *rand.Rand) *Raster {
	r := ComposeBase()
	for i, v := range r.Pix {
		r.Pix[i] = subtractClamped(v, rng.IntN(NoiseCeiling))
	}
	return r
}

// SynthesizeSeeded is Synthesize with a PCG generator seeded from seed.
func SynthesizeSeeded(seed uint64) *Raster {
	return Synthesize(rand.New(rand.NewPCG(seed, seed)))
}

// subtractClamped computes v - n in a wider integer type and clamps the result
// to the 8-bit sample range.
func subtractClamped(v uint8, n int) uint8 {
	return uint8(clamp(int(v)-n, 0, 255))
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
