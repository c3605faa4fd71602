package screen

import (
	"fmt"
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

func fromColorful(c clr.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return rgb(r, g, b)
}

func mustHex(s string) color.RGBA {
	c, err := clr.Hex(s)
	if err != nil {
		panic(fmt.Errorf("screen: bad palette color %q: %v", s, err))
	}
	return fromColorful(c)
}

// lightness returns the CIE L* of c scaled to [0, 1].
func lightness(c color.Color) float64 {
	cc, _ := clr.MakeColor(c)
	l, _, _ := cc.Lab()
	return l
}
