package halftone

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/32bitkid/halftone/dither"
	"github.com/32bitkid/halftone/screen"
	"github.com/32bitkid/halftone/tone"
)

// BlockSizes are the supported output scale factors.
var BlockSizes = [...]int{1, 2, 4, 8, 16, 32}

const (
	MinGamma = 0.2
	MaxGamma = 3.0
)

// Params is everything a caller controls about a pass.
type Params struct {
	Algorithm dither.Algorithm
	Palette   string
	BlockSize int

	// Brightness and Contrast are in [-100, 100].
	Brightness int
	Contrast   int
	// Gamma is in [0.2, 3.0]; values <= 0 disable the gamma step.
	Gamma  float64
	Invert bool

	// Threshold is only used by dither.Threshold, in [0, 255].
	Threshold int

	// Rand feeds dither.Random. Nil uses the global math/rand source.
	Rand *rand.Rand
}

func DefaultParams() Params {
	return Params{
		Algorithm: dither.FloydSteinberg,
		Palette:   screen.DefaultPalette,
		BlockSize: 1,
		Gamma:     1,
		Threshold: 128,
	}
}

// Normalize clamps every numeric field into its documented range and
// replaces an unknown palette with the default. Only an invalid Algorithm
// is reported as an error.
func (p Params) Normalize() (Params, error) {
	if !p.Algorithm.Valid() {
		return p, fmt.Errorf("%w: %v", dither.ErrUnknownAlgorithm, p.Algorithm)
	}

	if _, ok := screen.Lookup(p.Palette); !ok {
		p.Palette = screen.DefaultPalette
	}

	p.BlockSize = snapBlockSize(p.BlockSize)
	p.Brightness = clampInt(p.Brightness, -100, 100)
	p.Contrast = clampInt(p.Contrast, -100, 100)
	p.Threshold = clampInt(p.Threshold, 0, 255)

	switch {
	case math.IsNaN(p.Gamma) || p.Gamma <= 0:
		p.Gamma = 1
	case p.Gamma < MinGamma:
		p.Gamma = MinGamma
	case p.Gamma > MaxGamma:
		p.Gamma = MaxGamma
	}

	return p, nil
}

func (p Params) tone() tone.Params {
	return tone.Params{
		Brightness: float64(p.Brightness),
		Contrast:   float64(p.Contrast),
		Gamma:      p.Gamma,
		Invert:     p.Invert,
	}
}

// snapBlockSize rounds down to the nearest supported block size.
func snapBlockSize(size int) int {
	snapped := BlockSizes[0]
	for _, s := range BlockSizes {
		if s <= size {
			snapped = s
		}
	}
	return snapped
}

func clampInt(i, min, max int) int {
	if i < min {
		return min
	}
	if i > max {
		return max
	}
	return i
}
