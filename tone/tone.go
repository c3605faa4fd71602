// Package tone converts color samples to luminance and remaps intensities
// with brightness, contrast, gamma and inversion.
package tone

import "math"

// Params is a tonal adjustment. Brightness and Contrast are percentages in
// [-100, 100]. A Gamma of 1, or any value <= 0, leaves the curve unchanged.
type Params struct {
	Brightness float64
	Contrast   float64
	Gamma      float64
	Invert     bool
}

// Identity returns the adjustment that maps every intensity to itself.
func Identity() Params {
	return Params{Gamma: 1}
}

// Apply remaps the intensity v. The steps run in a fixed order: additive
// brightness, contrast around the mid-point, gamma, inversion.
func (p Params) Apply(v uint8) uint8 {
	x := float64(v) / 255

	x += p.Brightness / 100

	if p.Contrast != 0 {
		c := (100 + p.Contrast) / 100
		x = (x-0.5)*c + 0.5
	}

	x = clamp(x, 0, 1)
	if p.Gamma > 0 && p.Gamma != 1 {
		x = math.Pow(x, 1/p.Gamma)
	}

	if p.Invert {
		x = 1 - x
	}

	return uint8(clamp(math.Round(x*255), 0, 255))
}

// LUT is a precomputed Params.Apply for every possible intensity.
type LUT [256]uint8

func NewLUT(p Params) *LUT {
	var lut LUT
	for i := range lut {
		lut[i] = p.Apply(uint8(i))
	}
	return &lut
}

func (lut *LUT) Apply(v uint8) uint8 { return lut[v] }

// Luma returns the BT.709 luma of an 8-bit RGB triple.
func Luma(r, g, b uint8) uint8 {
	y := 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
	return uint8(clamp(math.Round(y), 0, 255))
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
