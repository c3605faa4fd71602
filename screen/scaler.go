package screen

import (
	"image"

	"github.com/32bitkid/halftone/mask"
)

// Scaler renders a binary mask with a palette.
type Scaler interface {
	Render(m *mask.Mask, p Palette) *image.Paletted
}

// BlockScaler expands every mask pixel into a Size×Size block of solid
// color. No smoothing is applied. A Size below 1 is treated as 1.
type BlockScaler struct {
	Size int
}

var _ Scaler = BlockScaler{}

// Render returns an image of (w*Size)×(h*Size) pixels whose palette is
// p.Colors(), so each pixel's index equals the mask bit it came from.
func (s BlockScaler) Render(m *mask.Mask, p Palette) *image.Paletted {
	size := s.Size
	if size < 1 {
		size = 1
	}
	if m.Empty() {
		return image.NewPaletted(image.Rectangle{}, p.Colors())
	}

	dst := image.NewPaletted(image.Rect(0, 0, m.Width*size, m.Height*size), p.Colors())
	fill(dst, 0)

	for y := 0; y < m.Height; y++ {
		src := m.Pix[y*m.Width : (y+1)*m.Width]
		top := dst.Pix[y*size*dst.Stride:][:dst.Stride]

		set := false
		for x, v := range src {
			if v != 1 {
				continue
			}
			set = true
			block := top[x*size : (x+1)*size]
			for i := range block {
				block[i] = 1
			}
		}
		if !set {
			continue
		}

		for by := 1; by < size; by++ {
			copy(dst.Pix[(y*size+by)*dst.Stride:][:dst.Stride], top)
		}
	}

	return dst
}

func fill(img *image.Paletted, c uint8) {
	for i, n := 0, len(img.Pix); i < n; i++ {
		img.Pix[i] = c
	}
}
