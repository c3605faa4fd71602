package halftone

import (
	"image"

	"golang.org/x/image/draw"
)

// Raster is a decoded source image: Width×Height pixels of Channels 8-bit
// samples each, row-major with no padding. Channels is 3 (RGB) or 4 (RGBA);
// alpha is never read.
type Raster struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// Valid reports whether r describes a non-empty raster whose Pix holds
// every sample.
func (r Raster) Valid() bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	if r.Channels != 3 && r.Channels != 4 {
		return false
	}
	if r.Width > maxInt/r.Height/r.Channels {
		return false
	}
	return len(r.Pix) >= r.Width*r.Height*r.Channels
}

const maxInt = int(^uint(0) >> 1)

// scaledFits reports whether a w×h raster scaled by s has a pixel count
// that fits in an int.
func scaledFits(w, h, s int) bool {
	if w > maxInt/s || h > maxInt/s {
		return false
	}
	return w*s <= maxInt/(h*s)
}

// FromImage captures img as an RGBA raster. RGBA and NRGBA images are
// copied sample for sample; any other image is converted with draw.Src.
func FromImage(img image.Image) Raster {
	if img == nil {
		return Raster{}
	}
	b := img.Bounds()
	if b.Empty() {
		return Raster{}
	}

	w, h := b.Dx(), b.Dy()
	out := Raster{Width: w, Height: h, Channels: 4, Pix: make([]uint8, w*h*4)}

	var pix []uint8
	var stride int
	switch src := img.(type) {
	case *image.RGBA:
		pix, stride = src.Pix[src.PixOffset(b.Min.X, b.Min.Y):], src.Stride
	case *image.NRGBA:
		pix, stride = src.Pix[src.PixOffset(b.Min.X, b.Min.Y):], src.Stride
	default:
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		pix, stride = dst.Pix, dst.Stride
	}

	for y := 0; y < h; y++ {
		copy(out.Pix[y*w*4:(y+1)*w*4], pix[y*stride:])
	}
	return out
}
