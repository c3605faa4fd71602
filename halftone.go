// Package halftone turns images into two-tone dithered rasters.
//
// A pass runs four steps in order: BT.709 luma extraction, the tonal
// transform, one of the dither algorithms, and block-scaled compositing
// with a two-color palette. A pass is synchronous and shares no state with
// any other pass, so separate images may be processed concurrently.
package halftone

import (
	"context"
	"image"
	"log/slog"
	"time"

	"github.com/32bitkid/halftone/dither"
	"github.com/32bitkid/halftone/mask"
	"github.com/32bitkid/halftone/screen"
	"github.com/32bitkid/halftone/tone"
)

// Result holds the products of one pass. Every buffer is freshly allocated
// and owned by the caller.
type Result struct {
	Params Params
	Gray   dither.Gray
	Mask   *mask.Mask
	Image  *image.Paletted
}

// Empty reports whether the pass had no input.
func (r Result) Empty() bool { return r.Image == nil }

// Process runs a full pass over img. A nil or empty img yields an empty
// Result and no error.
func Process(img image.Image, p Params) (Result, error) {
	if img == nil || img.Bounds().Empty() {
		return Result{}, nil
	}
	return ProcessRaster(FromImage(img), p)
}

// ProcessRaster runs a full pass over an already captured raster. A raster
// that is empty or malformed yields an empty Result and no error.
func ProcessRaster(r Raster, p Params) (Result, error) {
	if !r.Valid() {
		return Result{}, nil
	}

	start := time.Now()
	log := Logger()

	pal, ok := screen.LookupOrDefault(p.Palette)
	if !ok {
		log.Warn("unknown palette, using default", "palette", p.Palette, "default", pal.Name)
	}
	p, err := p.Normalize()
	if err != nil {
		return Result{}, err
	}
	if !scaledFits(r.Width, r.Height, p.BlockSize) {
		return Result{}, nil
	}

	gray := Grayscale(r, tone.NewLUT(p.tone()))

	m, err := dither.Apply(p.Algorithm, gray, dither.Options{
		Threshold: p.Threshold,
		Rand:      p.Rand,
	})
	if err != nil {
		return Result{}, err
	}

	out := screen.BlockScaler{Size: p.BlockSize}.Render(m, pal)

	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("halftone pass",
			"width", r.Width,
			"height", r.Height,
			"algorithm", p.Algorithm.String(),
			"palette", p.Palette,
			"block", p.BlockSize,
			"set", m.Count(),
			"elapsed", time.Since(start),
		)
	}

	return Result{
		Params: p,
		Gray:   gray,
		Mask:   m,
		Image:  out,
	}, nil
}

// Grayscale builds the adjusted intensity buffer for r. A nil lut leaves
// the luma unchanged.
func Grayscale(r Raster, lut *tone.LUT) dither.Gray {
	if lut == nil {
		lut = tone.NewLUT(tone.Identity())
	}
	n := r.Width * r.Height
	g := dither.Gray{Width: r.Width, Height: r.Height, Pix: make([]uint8, n)}
	for i, j := 0, 0; i < n; i, j = i+1, j+r.Channels {
		g.Pix[i] = lut.Apply(tone.Luma(r.Pix[j], r.Pix[j+1], r.Pix[j+2]))
	}
	return g
}
