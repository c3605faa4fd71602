package dither

import (
	"math"

	"github.com/32bitkid/halftone/mask"
)

// Tap is one destination of an error-diffusion kernel: the neighbor at
// (DX, DY) relative to the current pixel receives Weight times its error.
type Tap struct {
	DX, DY int
	Weight float64
}

// Kernel is an error-diffusion pattern. Its taps only address pixels that
// come later in scan order.
type Kernel struct {
	taps []Tap
}

var (
	FloydSteinbergKernel = Kernel{taps: []Tap{
		{DX: 1, DY: 0, Weight: 7.0 / 16},
		{DX: -1, DY: 1, Weight: 3.0 / 16},
		{DX: 0, DY: 1, Weight: 5.0 / 16},
		{DX: 1, DY: 1, Weight: 1.0 / 16},
	}}

	// AtkinsonKernel spreads 6/8 of the error; the remaining 2/8 is
	// discarded.
	AtkinsonKernel = Kernel{taps: []Tap{
		{DX: 1, DY: 0, Weight: 1.0 / 8},
		{DX: 2, DY: 0, Weight: 1.0 / 8},
		{DX: -1, DY: 1, Weight: 1.0 / 8},
		{DX: 0, DY: 1, Weight: 1.0 / 8},
		{DX: 1, DY: 1, Weight: 1.0 / 8},
		{DX: 0, DY: 2, Weight: 1.0 / 8},
	}}
)

// Total is the fraction of a pixel's error that the kernel passes on.
func (k Kernel) Total() float64 {
	var sum float64
	for _, t := range k.taps {
		sum += t.Weight
	}
	return sum
}

// Diffuse quantizes g against a fixed threshold of 128 and carries each
// pixel's error into its unvisited neighbors. Shares that fall outside the
// raster are dropped.
func Diffuse(g Gray, k Kernel) *mask.Mask {
	return diffuse(g, k, nil)
}

// diffusionStats accumulates absolute error magnitudes over a pass.
type diffusionStats struct {
	quantized float64
	spread    float64
	dropped   float64
}

func diffuse(g Gray, k Kernel, st *diffusionStats) *mask.Mask {
	w, h := g.Width, g.Height
	m := mask.New(w, h)

	// buf is owned by this pass alone.
	buf := make([]float64, len(m.Pix))
	for i := range buf {
		buf[i] = float64(g.Pix[i])
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := y*w + x
			old := buf[p]

			var quant float64
			if old >= 128 {
				quant = 255
				m.Pix[p] = 1
			}
			e := old - quant

			if st != nil {
				st.quantized += math.Abs(e)
			}

			for _, t := range k.taps {
				share := e * t.Weight
				nx, ny := x+t.DX, y+t.DY
				if nx < 0 || nx >= w || ny >= h {
					if st != nil {
						st.dropped += math.Abs(share)
					}
					continue
				}
				buf[ny*w+nx] += share
				if st != nil {
					st.spread += math.Abs(share)
				}
			}
		}
	}

	return m
}
