// Package dither reduces a grayscale buffer to a binary mask.
//
// Every function reads the buffer row-major, top to bottom and left to
// right. The error-diffusion variants depend on that order and cannot be
// split across goroutines.
package dither

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/32bitkid/halftone/bayer"
	"github.com/32bitkid/halftone/mask"
)

// Gray is an 8-bit intensity buffer. Pix holds at least Width×Height
// samples, row-major.
type Gray struct {
	Width  int
	Height int
	Pix    []uint8
}

// Options holds the per-algorithm inputs.
type Options struct {
	// Threshold is the cut-off of the Threshold algorithm. It is clamped
	// to [0, 255].
	Threshold int

	// Rand is the source of the Random algorithm. When nil the global
	// math/rand source is used.
	Rand *rand.Rand
}

var ErrBadBuffer = errors.New("dither: gray buffer does not match its size")

var orderedSizes = map[Algorithm]int{
	Ordered2: 2,
	Ordered4: 4,
	Ordered8: 8,
}

// Valid reports whether Pix holds every sample of a Width×Height buffer.
func (g Gray) Valid() bool {
	if g.Width < 0 || g.Height < 0 {
		return false
	}
	if g.Height > 0 && g.Width > maxInt/g.Height {
		return false
	}
	return len(g.Pix) >= g.Width*g.Height
}

const maxInt = int(^uint(0) >> 1)

// Apply dispatches to the function implementing a.
func Apply(a Algorithm, g Gray, opts Options) (*mask.Mask, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
	}
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %d samples for %dx%d", ErrBadBuffer, len(g.Pix), g.Width, g.Height)
	}

	switch a {
	case Threshold:
		return ThresholdMask(g, opts.Threshold), nil
	case FloydSteinberg:
		return Diffuse(g, FloydSteinbergKernel), nil
	case Atkinson:
		return Diffuse(g, AtkinsonKernel), nil
	case Random:
		return RandomMask(g, opts.Rand), nil
	}

	mat, ok := bayer.ForSize(orderedSizes[a])
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
	}
	return Ordered(g, mat), nil
}

// ThresholdMask sets every pixel whose intensity is at least t.
func ThresholdMask(g Gray, t int) *mask.Mask {
	if t < 0 {
		t = 0
	} else if t > 255 {
		t = 255
	}

	m := mask.New(g.Width, g.Height)
	for i, v := range g.Pix[:len(m.Pix)] {
		if int(v) >= t {
			m.Pix[i] = 1
		}
	}
	return m
}

// RandomMask compares each pixel against a uniform draw from [0, 255).
func RandomMask(g Gray, r *rand.Rand) *mask.Mask {
	next := rand.Float64
	if r != nil {
		next = r.Float64
	}

	m := mask.New(g.Width, g.Height)
	for i, v := range g.Pix[:len(m.Pix)] {
		if float64(v) >= next()*255 {
			m.Pix[i] = 1
		}
	}
	return m
}

// Ordered sets every pixel strictly brighter than the tiled matrix
// threshold at its position.
func Ordered(g Gray, mat bayer.Matrix) *mask.Mask {
	m := mask.New(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		row := y * g.Width
		for x := 0; x < g.Width; x++ {
			if float64(g.Pix[row+x]) > mat.Threshold(x, y) {
				m.Pix[row+x] = 1
			}
		}
	}
	return m
}
